package lineup

import (
	"gonum.org/v1/gonum/stat"

	"github.com/jakechorley/wcr-rotation/pkg/core/model"
)

// ScoreLineup computes the adjusted score of a lineup under a fixed state snapshot.
//
// The score is built from:
//   - base: the model's predicted goal differential per minute for the lineup
//   - fatigue: base is scaled by the mean fatigue factor of the four players
//   - criteria: each criterion's weighted penalty is subtracted
//
// ScoreLineup never modifies state.
func ScoreLineup(
	lineup Lineup,
	ratings model.RatingLookup,
	impact model.ImpactModel,
	state *GameState,
	cfg ScoringConfig,
) (float64, error) {
	totalRating := 0.0
	for _, p := range lineup.Players {
		r, ok := ratings.Rating(p)
		if !ok {
			return 0, &MissingRatingError{PlayerID: p}
		}
		totalRating += r
	}

	base, err := impact.Predict(model.FeatureContext{
		Players:     lineup.Players,
		TotalRating: totalRating,
		IsHome:      cfg.IsHome,
		Opponent:    cfg.Opponent,
	})
	if err != nil {
		return 0, &ModelPredictionError{Players: lineup.Players, Err: err}
	}

	// Fatigue degrades the team prediction uniformly by the lineup's mean factor
	floor := cfg.fatigueFloor()
	factors := make([]float64, len(lineup.Players))
	for i, p := range lineup.Players {
		factors[i] = FatigueFactor(state.Minutes(p), cfg.FatigueAlpha, floor)
	}
	score := base * stat.Mean(factors, nil)

	for _, criterion := range cfg.Criteria {
		weight := criterion.Weight()
		if weight == 0 {
			continue
		}
		score -= weight * criterion.Penalty(state, lineup)
	}

	return score, nil
}
