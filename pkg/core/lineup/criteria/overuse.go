package criteria

import (
	"github.com/jakechorley/wcr-rotation/pkg/core/lineup"
)

// OveruseCriterion discourages playing anyone past their minutes cap.
//
// Penalty:
//   - Sum over lineup members of max(0, minutes played - max minutes)
//   - Members without a cap contribute nothing
//   - No penalty at or below the cap
type OveruseCriterion struct {
	weight float64
}

// NewOveruseCriterion creates a new OveruseCriterion with the given weight (overuse lambda)
func NewOveruseCriterion(weight float64) *OveruseCriterion {
	return &OveruseCriterion{
		weight: weight,
	}
}

func (c *OveruseCriterion) Name() string {
	return "Overuse"
}

func (c *OveruseCriterion) Penalty(state *lineup.GameState, l lineup.Lineup) float64 {
	penalty := 0.0
	for _, p := range l.Players {
		maxMinutes, ok := state.Cap(p)
		if !ok {
			continue
		}
		if over := state.Minutes(p) - maxMinutes; over > 0 {
			penalty += over
		}
	}
	return penalty
}

func (c *OveruseCriterion) Weight() float64 {
	return c.weight
}
