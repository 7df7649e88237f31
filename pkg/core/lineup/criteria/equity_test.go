package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jakechorley/wcr-rotation/pkg/core/lineup"
)

var testLineup = lineup.Lineup{Players: []string{"a", "b", "c", "d"}, TotalRating: 8.0}

func TestEquityCriterion_Name(t *testing.T) {
	criterion := NewEquityCriterion(0.5)
	assert.Equal(t, "Equity", criterion.Name())
}

func TestEquityCriterion_Weight(t *testing.T) {
	criterion := NewEquityCriterion(0.5)
	assert.Equal(t, 0.5, criterion.Weight())
}

func TestEquityCriterion_Penalty_AtTarget(t *testing.T) {
	criterion := NewEquityCriterion(1.0)
	targets := map[string]float64{"a": 12.8, "b": 12.8, "c": 12.8, "d": 12.8}
	state := lineup.NewGameState(testLineup.Players, targets, nil)
	for p, target := range targets {
		state.MinutesPlayed[p] = target
	}

	assert.Equal(t, 0.0, criterion.Penalty(state, testLineup))
}

func TestEquityCriterion_Penalty_Symmetric(t *testing.T) {
	criterion := NewEquityCriterion(1.0)
	targets := map[string]float64{"a": 10}

	under := lineup.NewGameState(testLineup.Players, targets, nil)
	under.MinutesPlayed["a"] = 7

	over := lineup.NewGameState(testLineup.Players, targets, nil)
	over.MinutesPlayed["a"] = 13

	assert.Equal(t, 3.0, criterion.Penalty(under, testLineup))
	assert.Equal(t, criterion.Penalty(under, testLineup), criterion.Penalty(over, testLineup))
}

func TestEquityCriterion_Penalty_SumsMembersWithTargets(t *testing.T) {
	criterion := NewEquityCriterion(1.0)
	// d has no target and contributes nothing; e is not in the lineup
	targets := map[string]float64{"a": 8, "b": 8, "c": 8, "e": 8}
	state := lineup.NewGameState([]string{"a", "b", "c", "d", "e"}, targets, nil)
	state.MinutesPlayed["a"] = 2
	state.MinutesPlayed["b"] = 10
	state.MinutesPlayed["d"] = 30
	state.MinutesPlayed["e"] = 0

	// |2-8| + |10-8| + |0-8|
	assert.Equal(t, 16.0, criterion.Penalty(state, testLineup))
}
