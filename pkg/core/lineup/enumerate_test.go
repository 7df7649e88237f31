package lineup

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/wcr-rotation/pkg/core/model"
)

func TestCombinations_Order(t *testing.T) {
	var got []string
	for combo := range Combinations([]string{"a", "b", "c", "d"}, 2) {
		got = append(got, strings.Join(combo, ""))
	}
	assert.Equal(t, []string{"ab", "ac", "ad", "bc", "bd", "cd"}, got)
}

func TestCombinations_Counts(t *testing.T) {
	tests := []struct {
		n        int
		k        int
		expected int
	}{
		{4, 4, 1},
		{5, 4, 5},
		{10, 4, 210},
		{12, 4, 495},
		{14, 4, 1001},
		{3, 4, 0},
		{4, 0, 0},
	}

	for _, tt := range tests {
		items := make([]string, tt.n)
		for i := range items {
			items[i] = string(rune('a' + i))
		}

		count := 0
		seen := make(map[string]bool)
		for combo := range Combinations(items, tt.k) {
			count++
			key := strings.Join(combo, ",")
			assert.False(t, seen[key], "combination %s emitted twice", key)
			seen[key] = true
		}
		assert.Equal(t, tt.expected, count, "C(%d,%d)", tt.n, tt.k)
	}
}

func TestCombinations_Restartable(t *testing.T) {
	seq := Combinations([]string{"a", "b", "c", "d", "e"}, 4)

	first := slices.Collect(seq)
	second := slices.Collect(seq)

	assert.Len(t, first, 5)
	assert.Equal(t, first, second)
}

func TestCombinations_StopsEarly(t *testing.T) {
	count := 0
	for range Combinations([]string{"a", "b", "c", "d", "e", "f"}, 4) {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestEnumerateLineups_AllQualify(t *testing.T) {
	roster := []string{"p1", "p2", "p3", "p4", "p5"}
	ratings := uniformRatings(roster, 1.0)

	lineups, err := EnumerateLineups(roster, ratings, 4.0)
	require.NoError(t, err)
	require.Len(t, lineups, 5)

	for _, l := range lineups {
		assert.Len(t, l.Players, LineupSize)
		assert.Equal(t, 4.0, l.TotalRating)
	}
}

func TestEnumerateLineups_ExactCap(t *testing.T) {
	roster := []string{"p1", "p2", "p3", "p4"}
	ratings := uniformRatings(roster, 2.0)

	lineups, err := EnumerateLineups(roster, ratings, 8.0)
	require.NoError(t, err)
	require.Len(t, lineups, 1)
	assert.Equal(t, roster, lineups[0].Players)
	assert.Equal(t, 8.0, lineups[0].TotalRating)
}

func TestEnumerateLineups_NoneUnderCap(t *testing.T) {
	roster := []string{"p1", "p2", "p3", "p4"}
	ratings := uniformRatings(roster, 3.0)

	lineups, err := EnumerateLineups(roster, ratings, 8.0)
	require.NoError(t, err)
	assert.Empty(t, lineups)
}

func TestEnumerateLineups_MissingRating(t *testing.T) {
	roster := []string{"p1", "p2", "p3", "p4", "ghost"}
	ratings := uniformRatings(roster[:4], 1.0)

	_, err := EnumerateLineups(roster, ratings, 8.0)
	require.Error(t, err)

	var missing *MissingRatingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "ghost", missing.PlayerID)
}

func TestEnumerateLineups_RespectsCapAndMatchesIndependentCount(t *testing.T) {
	// Realistic classification spread (0.5 - 3.5)
	ratings := model.RatingMap{
		"a": 0.5, "b": 1.0, "c": 1.5, "d": 2.0, "e": 2.5, "f": 3.0,
		"g": 3.5, "h": 0.5, "i": 1.0, "j": 2.0, "k": 3.0, "l": 1.5,
	}
	roster := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}

	for _, maxPoints := range []float64{4.0, 6.0, 7.5, 8.0, 14.0} {
		lineups, err := EnumerateLineups(roster, ratings, maxPoints)
		require.NoError(t, err)

		// Count valid combinations independently with nested loops
		expected := 0
		n := len(roster)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				for k := j + 1; k < n; k++ {
					for l := k + 1; l < n; l++ {
						total := ratings[roster[i]] + ratings[roster[j]] + ratings[roster[k]] + ratings[roster[l]]
						if total <= maxPoints {
							expected++
						}
					}
				}
			}
		}
		assert.Equal(t, expected, len(lineups), "maxPoints=%v", maxPoints)

		seen := make(map[string]bool)
		for _, l := range lineups {
			assert.LessOrEqual(t, l.TotalRating, maxPoints)

			members := make(map[string]bool)
			for _, p := range l.Players {
				assert.Contains(t, roster, p)
				members[p] = true
			}
			assert.Len(t, members, LineupSize, "lineup %s has duplicate members", l)

			key := l.String()
			assert.False(t, seen[key], "lineup %s emitted twice", key)
			seen[key] = true
		}
	}
}
