package db

import "context"

// PlanStore defines the interface for rotation plan database operations
type PlanStore interface {
	GetPlans(ctx context.Context) ([]Plan, error)
	GetPlan(ctx context.Context, planID string) (*PlanDetail, error)
	InsertPlan(ctx context.Context, detail *PlanDetail) error
}

// Database defines the interface for all database operations.
// postgres.DB implements it.
type Database interface {
	PlanStore
	Close()
}
