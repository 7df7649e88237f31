package services

import (
	"fmt"
	"time"

	"github.com/jakechorley/wcr-rotation/internal/config"
	"github.com/jakechorley/wcr-rotation/pkg/core/lineup"
	"github.com/jakechorley/wcr-rotation/pkg/core/lineup/criteria"
	"github.com/jakechorley/wcr-rotation/pkg/core/model"
)

// Engine holds the model inputs shared by the planning services
type Engine struct {
	// Roster is the ordered player list. Order decides ties between equal lineups.
	Roster  []string
	Ratings model.RatingLookup
	Model   model.ImpactModel
}

// ImpactSource lists per-player model impacts
type ImpactSource interface {
	PlayerImpacts() []model.PlayerImpact
}

// MetricsRecorder receives planning metrics
type MetricsRecorder interface {
	RecordPlan(kind string, blocks, validLineups int, duration time.Duration, minutes map[string]float64)
	RecordPlanError(kind string)
}

// LoadEngine reads the ratings file and fitted model named in cfg.
// The roster is every player the model has a column for, in column order.
func LoadEngine(cfg *config.Config) (*Engine, *model.LinearModel, error) {
	ratings, err := model.LoadRatings(cfg.RatingsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load ratings: %w", err)
	}

	linear, err := model.LoadLinearModel(cfg.ModelFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load model: %w", err)
	}

	return &Engine{
		Roster:  linear.Layout().Players,
		Ratings: ratings,
		Model:   linear,
	}, linear, nil
}

// scoringConfig builds the scoring controls for a match. An empty venue or
// opponent falls back to the configured game defaults.
func scoringConfig(cfg *config.Config, opponent, venue string, withPenalties bool) (lineup.ScoringConfig, error) {
	if opponent == "" {
		opponent = cfg.Game.Opponent
	}
	if venue == "" {
		venue = cfg.Game.Venue
	}

	isHome, err := model.VenueValue(venue)
	if err != nil {
		return lineup.ScoringConfig{}, err
	}

	sc := lineup.ScoringConfig{
		IsHome:       isHome,
		Opponent:     opponent,
		FatigueAlpha: cfg.Rotation.FatigueAlpha,
		FatigueFloor: cfg.Rotation.FatigueFloor,
	}
	if withPenalties {
		sc.Criteria = criteria.Default(cfg.Rotation.EquityLambda, cfg.Rotation.OveruseLambda)
	}

	return sc, nil
}

// simulationConfig builds the simulator input for one match
func simulationConfig(engine *Engine, cfg *config.Config, injured []string, scoring lineup.ScoringConfig) lineup.SimulationConfig {
	return lineup.SimulationConfig{
		Roster:              engine.Roster,
		Injured:             injured,
		Ratings:             engine.Ratings,
		Model:               engine.Model,
		MaxPoints:           cfg.Game.MaxPoints,
		GameMinutes:         cfg.Game.Minutes,
		BlockMinutes:        cfg.Game.BlockMinutes,
		MinMinutesPerPlayer: cfg.Rotation.MinMinutesPerPlayer,
		MaxMinutesPerPlayer: cfg.Rotation.MaxMinutesPerPlayer,
		Scoring:             scoring,
	}
}
