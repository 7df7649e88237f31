package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/wcr-rotation/internal/config"
	"github.com/jakechorley/wcr-rotation/pkg/core/lineup"
	"github.com/jakechorley/wcr-rotation/pkg/db"
)

// Plan kinds used for metrics labels
const (
	KindRotation = "rotation"
	KindFixture  = "fixture"
)

// PlanOptions selects the match context for a rotation plan
type PlanOptions struct {
	// Opponent and Venue override the configured game defaults when set
	Opponent string
	Venue    string

	// Injured replaces the configured injured list when non-nil.
	// An empty, non-nil slice means nobody is injured.
	Injured []string

	// MatchDate is stored with the plan (2006-01-02). Optional.
	MatchDate string

	// DryRun skips saving the plan
	DryRun bool
}

// PlayerMinutes is one player's final minutes in a plan
type PlayerMinutes struct {
	PlayerID     string
	Minutes      float64
	EquityTarget float64
}

// PlanResult is a simulated rotation plan
type PlanResult struct {
	Plan     db.Plan
	Schedule []lineup.ScheduleEntry

	// Minutes is sorted by minutes played, most first
	Minutes []PlayerMinutes

	ValidLineupCount int

	// Saved is true when the plan was written to the store
	Saved bool
}

// PlanRotation simulates a full game rotation and saves it when a store is
// given and DryRun is off. store and recorder may be nil.
func PlanRotation(
	ctx context.Context,
	store db.PlanStore,
	engine *Engine,
	cfg *config.Config,
	recorder MetricsRecorder,
	logger *zap.Logger,
	opts PlanOptions,
) (*PlanResult, error) {
	return planRotation(ctx, store, engine, cfg, recorder, logger, opts, KindRotation)
}

func planRotation(
	ctx context.Context,
	store db.PlanStore,
	engine *Engine,
	cfg *config.Config,
	recorder MetricsRecorder,
	logger *zap.Logger,
	opts PlanOptions,
	kind string,
) (*PlanResult, error) {
	result, err := simulatePlan(engine, cfg, recorder, logger, opts, kind)
	if err != nil {
		if recorder != nil {
			recorder.RecordPlanError(kind)
		}
		return nil, err
	}

	if store == nil || opts.DryRun {
		logger.Info("Plan not saved",
			zap.String("plan_id", result.Plan.ID),
			zap.Bool("dry_run", opts.DryRun))
		return result, nil
	}

	logger.Debug("Saving plan", zap.String("plan_id", result.Plan.ID))
	if err := store.InsertPlan(ctx, planDetail(result)); err != nil {
		if recorder != nil {
			recorder.RecordPlanError(kind)
		}
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}
	result.Saved = true

	logger.Info("Plan saved", zap.String("plan_id", result.Plan.ID))

	return result, nil
}

func simulatePlan(
	engine *Engine,
	cfg *config.Config,
	recorder MetricsRecorder,
	logger *zap.Logger,
	opts PlanOptions,
	kind string,
) (*PlanResult, error) {
	venue := opts.Venue
	if venue == "" {
		venue = cfg.Game.Venue
	}
	opponent := opts.Opponent
	if opponent == "" {
		opponent = cfg.Game.Opponent
	}

	injured := cfg.Injured
	if opts.Injured != nil {
		injured = opts.Injured
	}

	scoring, err := scoringConfig(cfg, opponent, venue, true)
	if err != nil {
		return nil, err
	}

	logger.Debug("Simulating rotation",
		zap.String("opponent", opponent),
		zap.String("venue", venue),
		zap.Float64("game_minutes", cfg.Game.Minutes),
		zap.Float64("block_minutes", cfg.Game.BlockMinutes),
		zap.Strings("injured", injured))

	started := time.Now()
	outcome, err := lineup.Simulate(simulationConfig(engine, cfg, injured, scoring))
	if err != nil {
		return nil, fmt.Errorf("failed to simulate rotation: %w", err)
	}
	elapsed := time.Since(started)

	if recorder != nil {
		recorder.RecordPlan(kind, len(outcome.Schedule), outcome.ValidLineupCount, elapsed, outcome.MinutesPlayed)
	}

	plan := db.Plan{
		ID:           uuid.New().String(),
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		MatchDate:    opts.MatchDate,
		Opponent:     opponent,
		Venue:        venue,
		GameMinutes:  cfg.Game.Minutes,
		BlockMinutes: cfg.Game.BlockMinutes,
		MaxPoints:    cfg.Game.MaxPoints,
		Injured:      injured,
	}

	logger.Info("Rotation simulated",
		zap.String("plan_id", plan.ID),
		zap.Int("blocks", len(outcome.Schedule)),
		zap.Int("valid_lineups", outcome.ValidLineupCount),
		zap.Duration("elapsed", elapsed))

	return &PlanResult{
		Plan:             plan,
		Schedule:         outcome.Schedule,
		Minutes:          sortedMinutes(outcome.MinutesPlayed, outcome.EquityTarget),
		ValidLineupCount: outcome.ValidLineupCount,
	}, nil
}

// sortedMinutes orders players by minutes played, most first, then by id
func sortedMinutes(minutes, targets map[string]float64) []PlayerMinutes {
	result := make([]PlayerMinutes, 0, len(minutes))
	for p, m := range minutes {
		result = append(result, PlayerMinutes{PlayerID: p, Minutes: m, EquityTarget: targets[p]})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Minutes != result[j].Minutes {
			return result[i].Minutes > result[j].Minutes
		}
		return result[i].PlayerID < result[j].PlayerID
	})

	return result
}

// planDetail converts a simulated plan into its stored form
func planDetail(result *PlanResult) *db.PlanDetail {
	blocks := make([]db.PlanBlock, len(result.Schedule))
	for i, entry := range result.Schedule {
		blocks[i] = db.PlanBlock{
			ID:          uuid.New().String(),
			PlanID:      result.Plan.ID,
			Block:       entry.Block,
			StartMin:    entry.StartMin,
			EndMin:      entry.EndMin,
			Players:     entry.Lineup,
			TotalRating: entry.TotalRating,
			Score:       entry.Score,
		}
	}

	minutes := make([]db.PlanMinutes, len(result.Minutes))
	for i, m := range result.Minutes {
		minutes[i] = db.PlanMinutes{
			PlanID:       result.Plan.ID,
			PlayerID:     m.PlayerID,
			Minutes:      m.Minutes,
			EquityTarget: m.EquityTarget,
		}
	}

	return &db.PlanDetail{Plan: result.Plan, Blocks: blocks, Minutes: minutes}
}
