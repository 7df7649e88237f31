package lineup

import (
	"sort"

	"github.com/jakechorley/wcr-rotation/pkg/core/model"
)

// SelectBestLineup scores every candidate and returns the highest scoring one.
// Candidates are visited in order and a later lineup only replaces the current
// best when its score is strictly greater, so ties go to the earliest lineup.
// Returns ErrNoValidLineup if there are no candidates.
func SelectBestLineup(
	valid []Lineup,
	ratings model.RatingLookup,
	impact model.ImpactModel,
	state *GameState,
	cfg ScoringConfig,
) (*ScoreResult, error) {
	if len(valid) == 0 {
		return nil, ErrNoValidLineup
	}

	var best *ScoreResult
	for _, candidate := range valid {
		score, err := ScoreLineup(candidate, ratings, impact, state, cfg)
		if err != nil {
			return nil, err
		}

		if best == nil || score > best.Score {
			best = &ScoreResult{
				Lineup:      candidate,
				TotalRating: candidate.TotalRating,
				Score:       score,
			}
		}
	}

	return best, nil
}

// RankLineups scores every candidate and returns them by score, highest first.
// Equal scores keep candidate order. A limit <= 0 returns all candidates.
func RankLineups(
	valid []Lineup,
	ratings model.RatingLookup,
	impact model.ImpactModel,
	state *GameState,
	cfg ScoringConfig,
	limit int,
) ([]ScoreResult, error) {
	if len(valid) == 0 {
		return nil, ErrNoValidLineup
	}

	results := make([]ScoreResult, 0, len(valid))
	for _, candidate := range valid {
		score, err := ScoreLineup(candidate, ratings, impact, state, cfg)
		if err != nil {
			return nil, err
		}
		results = append(results, ScoreResult{
			Lineup:      candidate,
			TotalRating: candidate.TotalRating,
			Score:       score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if limit > 0 && limit < len(results) {
		results = results[:limit]
	}

	return results, nil
}
