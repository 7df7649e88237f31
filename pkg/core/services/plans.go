package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/jakechorley/wcr-rotation/pkg/db"
)

// ListPlans returns every stored plan, newest first
func ListPlans(ctx context.Context, store db.PlanStore, logger *zap.Logger) ([]db.Plan, error) {
	logger.Debug("Fetching plans")
	plans, err := store.GetPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch plans: %w", err)
	}

	// RFC3339 UTC timestamps sort lexically
	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].CreatedAt > plans[j].CreatedAt
	})

	logger.Debug("Found plans", zap.Int("count", len(plans)))

	return plans, nil
}

// GetPlan returns a stored plan with its schedule and minutes.
// An empty planID selects the most recently created plan.
func GetPlan(ctx context.Context, store db.PlanStore, logger *zap.Logger, planID string) (*db.PlanDetail, error) {
	if planID == "" {
		plans, err := ListPlans(ctx, store, logger)
		if err != nil {
			return nil, err
		}
		if len(plans) == 0 {
			return nil, fmt.Errorf("no plans found")
		}

		planID = plans[0].ID
		logger.Debug("No plan ID provided, using latest plan", zap.String("plan_id", planID))
	}

	detail, err := store.GetPlan(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch plan %s: %w", planID, err)
	}

	return detail, nil
}
