package model

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRatings(t *testing.T) {
	csv := ` player , rating ,team
Amy,3.5,CAN
Ben,0.5,CAN
,2.0,CAN
Cat,n/a,CAN
Dan,1.0
Eve,NaN,CAN
`
	ratings, err := ParseRatings(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, RatingMap{"Amy": 3.5, "Ben": 0.5, "Dan": 1.0}, ratings)

	r, ok := ratings.Rating("Amy")
	assert.True(t, ok)
	assert.Equal(t, 3.5, r)

	_, ok = ratings.Rating("Cat")
	assert.False(t, ok)

	_, ok = ratings.Rating("Eve")
	assert.False(t, ok)
}

func TestParseRatings_MissingColumns(t *testing.T) {
	_, err := ParseRatings(strings.NewReader("name,points\nAmy,3.5\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "player and rating")
}

func TestParseRatings_Empty(t *testing.T) {
	_, err := ParseRatings(strings.NewReader(""))
	assert.Error(t, err)
}

func TestParseRatings_NegativeRating(t *testing.T) {
	_, err := ParseRatings(strings.NewReader("player,rating\nAmy,-1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")
}

func TestLoadRatings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "player_data.csv")
	require.NoError(t, os.WriteFile(path, []byte("player,rating\nAmy,3.5\nBen,1.5\n"), 0644))

	ratings, err := LoadRatings(path)
	require.NoError(t, err)
	assert.Len(t, ratings, 2)

	_, err = LoadRatings(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
