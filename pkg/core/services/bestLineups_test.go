package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/wcr-rotation/pkg/core/lineup"
	"github.com/jakechorley/wcr-rotation/pkg/core/model"
)

func TestBestLineups_FreshBest(t *testing.T) {
	engine := testEngine(t)
	cfg := testConfig()

	result, err := BestLineups(engine, cfg, zap.NewNop(), 5)
	require.NoError(t, err)

	assert.Equal(t, []string{"p1", "p2", "p4", "p5"}, result.Best.Lineup.Players)
	assert.Equal(t, 8.0, result.Best.TotalRating)
	// intercept + player impacts + neutral venue
	assert.InDelta(t, 0.01+0.80+0.05, result.Best.Score, 1e-9)

	require.Len(t, result.Top, 5)
	assert.Equal(t, result.Best.Lineup.Players, result.Top[0].Lineup.Players)
	for i := 1; i < len(result.Top); i++ {
		assert.GreaterOrEqual(t, result.Top[i-1].Score, result.Top[i].Score)
	}
	for _, r := range result.Top {
		assert.LessOrEqual(t, r.TotalRating, cfg.Game.MaxPoints)
	}

	assert.Len(t, result.Available, 8)
	assert.Greater(t, result.ValidCount, 5)
}

func TestBestLineups_IgnoresPenaltySettings(t *testing.T) {
	engine := testEngine(t)
	cfg := testConfig()
	cfg.Rotation.EquityLambda = 100
	cfg.Rotation.OveruseLambda = 100
	cfg.Rotation.MinMinutesPerPlayer = 8

	result, err := BestLineups(engine, cfg, zap.NewNop(), 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"p1", "p2", "p4", "p5"}, result.Best.Lineup.Players)
}

func TestBestLineups_InjuredExcluded(t *testing.T) {
	engine := testEngine(t)
	cfg := testConfig()
	cfg.Injured = []string{"p1", "not-on-roster"}

	result, err := BestLineups(engine, cfg, zap.NewNop(), 0)
	require.NoError(t, err)

	assert.NotContains(t, result.Available, "p1")
	for _, r := range result.Top {
		assert.False(t, r.Lineup.Contains("p1"))
	}
	assert.Equal(t, result.ValidCount, len(result.Top))
}

func TestBestLineups_InsufficientRoster(t *testing.T) {
	engine := testEngine(t)
	cfg := testConfig()
	cfg.Injured = []string{"p1", "p2", "p3", "p4", "p5"}

	_, err := BestLineups(engine, cfg, zap.NewNop(), 5)

	var rosterErr *lineup.InsufficientRosterError
	require.True(t, errors.As(err, &rosterErr))
	assert.Equal(t, 3, rosterErr.Available)
	assert.Equal(t, 5, rosterErr.Injured)
}

func TestBestLineups_NoValidLineup(t *testing.T) {
	engine := testEngine(t)
	cfg := testConfig()
	cfg.Game.MaxPoints = 1.0

	_, err := BestLineups(engine, cfg, zap.NewNop(), 5)
	assert.ErrorIs(t, err, lineup.ErrNoValidLineup)
}

func TestBestLineups_MissingRating(t *testing.T) {
	engine := testEngine(t)
	ratings := model.RatingMap{}
	for p, r := range testRatings {
		if p != "p8" {
			ratings[p] = r
		}
	}
	engine.Ratings = ratings

	_, err := BestLineups(engine, testConfig(), zap.NewNop(), 5)

	var missing *lineup.MissingRatingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "p8", missing.PlayerID)
}
