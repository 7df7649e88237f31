package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/jakechorley/wcr-rotation/internal/config"
	"github.com/jakechorley/wcr-rotation/pkg/clients/sheetsclient"
	"github.com/jakechorley/wcr-rotation/pkg/db"
)

// PlanPublisher writes a plan to a spreadsheet
type PlanPublisher interface {
	PublishPlan(spreadsheetID string, plan *sheetsclient.PublishedPlan) (string, error)
}

// PublishResult describes a published plan
type PublishResult struct {
	PlanID   string
	TabTitle string
}

// PublishPlan writes a stored plan to its own tab of the configured plan sheet.
// An empty planID publishes the latest plan.
func PublishPlan(
	ctx context.Context,
	store db.PlanStore,
	publisher PlanPublisher,
	cfg *config.Config,
	logger *zap.Logger,
	planID string,
) (*PublishResult, error) {
	if cfg.PlanSheetID == "" {
		return nil, fmt.Errorf("planSheetID is not configured")
	}

	detail, err := GetPlan(ctx, store, logger, planID)
	if err != nil {
		return nil, err
	}

	published := publishedPlan(detail)

	logger.Debug("Publishing plan",
		zap.String("plan_id", detail.Plan.ID),
		zap.Int("blocks", len(published.Blocks)),
		zap.String("spreadsheet_id", cfg.PlanSheetID))

	tabTitle, err := publisher.PublishPlan(cfg.PlanSheetID, published)
	if err != nil {
		return nil, fmt.Errorf("failed to publish plan: %w", err)
	}

	logger.Info("Plan published",
		zap.String("plan_id", detail.Plan.ID),
		zap.String("tab", tabTitle))

	return &PublishResult{PlanID: detail.Plan.ID, TabTitle: tabTitle}, nil
}

// publishedPlan converts a stored plan into sheet rows. Blocks are put in
// block order and minutes in the order they were stored.
func publishedPlan(detail *db.PlanDetail) *sheetsclient.PublishedPlan {
	blocks := make([]sheetsclient.PublishedBlock, len(detail.Blocks))
	for i, b := range detail.Blocks {
		blocks[i] = sheetsclient.PublishedBlock{
			Block:       b.Block,
			StartMin:    b.StartMin,
			EndMin:      b.EndMin,
			Players:     b.Players,
			TotalRating: b.TotalRating,
			Score:       b.Score,
		}
	}
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Block < blocks[j].Block
	})

	minutes := make([]sheetsclient.PublishedMinutes, len(detail.Minutes))
	for i, m := range detail.Minutes {
		minutes[i] = sheetsclient.PublishedMinutes{
			PlayerID:     m.PlayerID,
			Minutes:      m.Minutes,
			EquityTarget: m.EquityTarget,
		}
	}

	return &sheetsclient.PublishedPlan{
		PlanID:    detail.Plan.ID,
		MatchDate: detail.Plan.MatchDate,
		Opponent:  detail.Plan.Opponent,
		Venue:     detail.Plan.Venue,
		Blocks:    blocks,
		Minutes:   minutes,
	}
}
