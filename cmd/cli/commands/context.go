package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/jakechorley/wcr-rotation/internal/config"
	"github.com/jakechorley/wcr-rotation/pkg/core/model"
	"github.com/jakechorley/wcr-rotation/pkg/core/services"
	"github.com/jakechorley/wcr-rotation/pkg/db"
	"github.com/jakechorley/wcr-rotation/pkg/metrics"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg    *config.Config
	Engine *services.Engine
	Model  *model.LinearModel

	// Database is nil when no databaseURL is configured
	Database db.Database

	// Publisher is nil when no plan sheet is configured
	Publisher services.PlanPublisher

	Metrics *metrics.Manager
	Logger  *zap.Logger
	Ctx     context.Context
}

// planStore returns the database as a PlanStore, or nil when there is none
func (app *AppContext) planStore() db.PlanStore {
	if app.Database == nil {
		return nil
	}
	return app.Database
}

// recorder returns the metrics manager as a MetricsRecorder, or nil when there is none
func (app *AppContext) recorder() services.MetricsRecorder {
	if app.Metrics == nil {
		return nil
	}
	return app.Metrics
}

// requireDatabase errors when a command needs stored plans but no database is configured
func (app *AppContext) requireDatabase() error {
	if app.Database == nil {
		return errNoDatabase
	}
	return nil
}
