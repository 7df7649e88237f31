package criteria

import "github.com/jakechorley/wcr-rotation/pkg/core/lineup"

// Default builds the standard penalty set used by the rotation planner
func Default(equityLambda, overuseLambda float64) []lineup.Criterion {
	return []lineup.Criterion{
		NewEquityCriterion(equityLambda),
		NewOveruseCriterion(overuseLambda),
	}
}
