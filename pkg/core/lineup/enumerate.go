package lineup

import (
	"iter"

	"github.com/jakechorley/wcr-rotation/pkg/core/model"
)

// Combinations lazily yields every k-sized combination of items.
//
// Combinations are produced in lexicographic order of item position, so
// for a given input order the sequence is deterministic. Each yielded slice
// is freshly allocated and may be retained by the caller. The sequence is
// finite and can be ranged over any number of times.
func Combinations(items []string, k int) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		n := len(items)
		if k <= 0 || k > n {
			return
		}

		// Positions of the current combination, always strictly increasing
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}

		for {
			combo := make([]string, k)
			for i, j := range idx {
				combo[i] = items[j]
			}
			if !yield(combo) {
				return
			}

			// Find the rightmost position that can still move forward
			i := k - 1
			for i >= 0 && idx[i] == n-k+i {
				i--
			}
			if i < 0 {
				return
			}

			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}

// EnumerateLineups returns every LineupSize combination of roster whose
// summed rating is <= maxPoints, in combination order.
// Returns a MissingRatingError if any roster member has no rating.
func EnumerateLineups(roster []string, ratings model.RatingLookup, maxPoints float64) ([]Lineup, error) {
	rosterRatings := make(map[string]float64, len(roster))
	for _, p := range roster {
		r, ok := ratings.Rating(p)
		if !ok {
			return nil, &MissingRatingError{PlayerID: p}
		}
		rosterRatings[p] = r
	}

	valid := make([]Lineup, 0)
	for combo := range Combinations(roster, LineupSize) {
		total := 0.0
		for _, p := range combo {
			total += rosterRatings[p]
		}

		if total <= maxPoints {
			valid = append(valid, Lineup{Players: combo, TotalRating: total})
		}
	}

	return valid, nil
}
