package criteria

import (
	"math"

	"github.com/jakechorley/wcr-rotation/pkg/core/lineup"
)

// EquityCriterion pulls players towards their fair share of playing time.
//
// Penalty:
//   - Sum over lineup members of |minutes played - equity target|
//   - Members without a target contribute nothing
//   - Symmetric: being 3 minutes under target costs the same as 3 minutes over,
//     so players are pulled towards their target rather than merely above it
type EquityCriterion struct {
	weight float64
}

// NewEquityCriterion creates a new EquityCriterion with the given weight (equity lambda)
func NewEquityCriterion(weight float64) *EquityCriterion {
	return &EquityCriterion{
		weight: weight,
	}
}

func (c *EquityCriterion) Name() string {
	return "Equity"
}

func (c *EquityCriterion) Penalty(state *lineup.GameState, l lineup.Lineup) float64 {
	penalty := 0.0
	for _, p := range l.Players {
		target, ok := state.Target(p)
		if !ok {
			continue
		}
		penalty += math.Abs(state.Minutes(p) - target)
	}
	return penalty
}

func (c *EquityCriterion) Weight() float64 {
	return c.weight
}
