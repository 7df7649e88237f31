package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/wcr-rotation/internal/config"
	"github.com/jakechorley/wcr-rotation/pkg/core/lineup"
)

// BestLineupsResult is the fresh lineup ranking for the available roster
type BestLineupsResult struct {
	Best       lineup.ScoreResult
	Top        []lineup.ScoreResult
	Available  []string
	ValidCount int
}

// BestLineups ranks lineups as if every player were fresh: zero minutes
// played and no equity or overuse penalties. This is the pure performance
// view, before any rotation constraints.
func BestLineups(engine *Engine, cfg *config.Config, logger *zap.Logger, limit int) (*BestLineupsResult, error) {
	available := lineup.AvailablePlayers(engine.Roster, cfg.Injured)
	logger.Debug("Ranking fresh lineups",
		zap.Int("roster", len(engine.Roster)),
		zap.Int("available", len(available)),
		zap.Float64("max_points", cfg.Game.MaxPoints))

	if len(available) < lineup.LineupSize {
		return nil, &lineup.InsufficientRosterError{
			Available: len(available),
			Injured:   len(engine.Roster) - len(available),
		}
	}

	valid, err := lineup.EnumerateLineups(available, engine.Ratings, cfg.Game.MaxPoints)
	if err != nil {
		return nil, err
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("%w (max points %v)", lineup.ErrNoValidLineup, cfg.Game.MaxPoints)
	}

	scoring, err := scoringConfig(cfg, "", "", false)
	if err != nil {
		return nil, err
	}

	// A nil state means every player is at zero minutes
	best, err := lineup.SelectBestLineup(valid, engine.Ratings, engine.Model, nil, scoring)
	if err != nil {
		return nil, err
	}

	top, err := lineup.RankLineups(valid, engine.Ratings, engine.Model, nil, scoring, limit)
	if err != nil {
		return nil, err
	}

	logger.Info("Best lineup found",
		zap.String("lineup", best.Lineup.String()),
		zap.Float64("total_rating", best.TotalRating),
		zap.Float64("score", best.Score),
		zap.Int("valid_lineups", len(valid)))

	return &BestLineupsResult{
		Best:       *best,
		Top:        top,
		Available:  available,
		ValidCount: len(valid),
	}, nil
}
