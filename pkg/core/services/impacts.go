package services

import (
	"go.uber.org/zap"

	"github.com/jakechorley/wcr-rotation/pkg/core/model"
)

// PlayerImpacts returns the model's per-player impact estimates, highest
// first. A limit <= 0 returns every player.
func PlayerImpacts(source ImpactSource, logger *zap.Logger, limit int) []model.PlayerImpact {
	impacts := source.PlayerImpacts()
	if limit > 0 && limit < len(impacts) {
		impacts = impacts[:limit]
	}

	logger.Debug("Listed player impacts", zap.Int("count", len(impacts)))

	return impacts
}
