package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/wcr-rotation/pkg/core/lineup"
	"github.com/jakechorley/wcr-rotation/pkg/core/lineup/criteria"
	"github.com/jakechorley/wcr-rotation/pkg/core/model"
)

// squad is a 12 player roster with a realistic classification spread
var squad = []string{
	"Aaron", "Ben", "Cody", "Dan", "Eric", "Finn",
	"Gus", "Hugo", "Ivan", "Jon", "Kurt", "Liam",
}

var squadRatings = model.RatingMap{
	"Aaron": 3.5, "Ben": 3.0, "Cody": 2.5, "Dan": 2.0, "Eric": 1.5, "Finn": 1.0,
	"Gus": 0.5, "Hugo": 3.0, "Ivan": 2.0, "Jon": 1.0, "Kurt": 0.5, "Liam": 1.5,
}

func squadModel(t *testing.T) *model.LinearModel {
	t.Helper()

	cf := &model.CoefficientsFile{
		Intercept:         0.01,
		TotalRating:       0.02,
		IsHome:            0.05,
		ReferenceOpponent: "Australia",
		Players: map[string]float64{
			"Aaron": 0.30, "Ben": 0.22, "Cody": 0.15, "Dan": 0.10, "Eric": 0.08, "Finn": 0.05,
			"Gus": 0.04, "Hugo": 0.20, "Ivan": 0.02, "Jon": -0.03, "Kurt": 0.06, "Liam": 0.01,
		},
		Opponents: map[string]float64{
			"Canada": -0.04,
			"USA":    -0.10,
			"Japan":  -0.08,
		},
	}

	m, err := cf.Build()
	require.NoError(t, err)
	return m
}

func TestRotation_EndToEnd(t *testing.T) {
	gameMinutes, blockMinutes := 32.0, 1.0

	outcome, err := lineup.Simulate(lineup.SimulationConfig{
		Roster:              squad,
		Injured:             []string{"Ivan"},
		Ratings:             squadRatings,
		Model:               squadModel(t),
		MaxPoints:           8.0,
		GameMinutes:         gameMinutes,
		BlockMinutes:        blockMinutes,
		MinMinutesPerPlayer: 6,
		MaxMinutesPerPlayer: 24,
		Scoring: lineup.ScoringConfig{
			IsHome:       model.VenueHome,
			Opponent:     "USA",
			FatigueAlpha: 0.02,
			Criteria:     criteria.Default(0.5, 1.0),
		},
	})
	require.NoError(t, err)
	require.Len(t, outcome.Schedule, 32)

	assert.NotContains(t, outcome.MinutesPlayed, "Ivan")
	assert.Len(t, outcome.MinutesPlayed, 11)

	total := 0.0
	for _, minutes := range outcome.MinutesPlayed {
		total += minutes
	}
	assert.Equal(t, 4*gameMinutes, total)

	for _, entry := range outcome.Schedule {
		assert.LessOrEqual(t, entry.TotalRating, 8.0)
		assert.Len(t, entry.Lineup, lineup.LineupSize)
		assert.NotContains(t, entry.Lineup, "Ivan")
	}

	// 32 * 4 / 11 ≈ 11.6 is above the 6 minute floor
	assert.InDelta(t, 128.0/11.0, outcome.EquityTarget["Aaron"], 1e-9)

	// The first lineup can't hold the court for the whole game once equity
	// and overuse penalties outgrow its predicted advantage
	distinct := make(map[string]bool)
	for _, entry := range outcome.Schedule {
		distinct[lineup.Lineup{Players: entry.Lineup}.String()] = true
	}
	assert.Greater(t, len(distinct), 1)

	// Nobody is picked again once they are past the 24 minute cap
	for p, minutes := range outcome.MinutesPlayed {
		assert.LessOrEqual(t, minutes, 25.0, "player %s", p)
	}
}

func TestRotation_NoPenaltiesPlaysBestLineupThroughout(t *testing.T) {
	m := squadModel(t)

	valid, err := lineup.EnumerateLineups(squad, squadRatings, 8.0)
	require.NoError(t, err)

	fresh, err := lineup.SelectBestLineup(valid, squadRatings, m, nil, lineup.ScoringConfig{})
	require.NoError(t, err)

	outcome, err := lineup.Simulate(lineup.SimulationConfig{
		Roster:       squad,
		Ratings:      squadRatings,
		Model:        m,
		MaxPoints:    8.0,
		GameMinutes:  8,
		BlockMinutes: 2,
	})
	require.NoError(t, err)

	for _, entry := range outcome.Schedule {
		assert.Equal(t, fresh.Lineup.Players, entry.Lineup)
	}
	for _, p := range fresh.Lineup.Players {
		assert.Equal(t, 8.0, outcome.MinutesPlayed[p])
	}
}

func TestRotation_UnknownOpponentFailsWithModelError(t *testing.T) {
	_, err := lineup.Simulate(lineup.SimulationConfig{
		Roster:       squad,
		Ratings:      squadRatings,
		Model:        squadModel(t),
		MaxPoints:    8.0,
		GameMinutes:  32,
		BlockMinutes: 1,
		Scoring: lineup.ScoringConfig{
			Opponent: "Narnia",
		},
	})
	require.Error(t, err)

	var predictionErr *lineup.ModelPredictionError
	assert.ErrorAs(t, err, &predictionErr)
}
