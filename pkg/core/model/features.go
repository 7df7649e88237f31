package model

import "fmt"

// Names of the control columns that follow the player indicator columns
const (
	ColumnTotalRating = "total_rating"
	ColumnIsHome      = "is_home"

	opponentColumnPrefix = "opp_"
)

// FeatureLayout is the positional contract of a trained model:
// one indicator column per known player, then total_rating, then is_home,
// then one dummy column per known (non-reference) opponent.
type FeatureLayout struct {
	Players   []string
	Opponents []string

	// ReferenceOpponent is the opponent dropped from the dummy columns.
	// Supplying it as FeatureContext.Opponent leaves every dummy at zero.
	ReferenceOpponent string

	playerIndex   map[string]int
	opponentIndex map[string]int
}

// NewFeatureLayout builds a layout for the given player and opponent columns
func NewFeatureLayout(players, opponents []string, referenceOpponent string) (*FeatureLayout, error) {
	layout := &FeatureLayout{
		Players:           players,
		Opponents:         opponents,
		ReferenceOpponent: referenceOpponent,
		playerIndex:       make(map[string]int, len(players)),
		opponentIndex:     make(map[string]int, len(opponents)),
	}

	for i, p := range players {
		if _, dup := layout.playerIndex[p]; dup {
			return nil, fmt.Errorf("duplicate player column %q", p)
		}
		layout.playerIndex[p] = i
	}

	for i, o := range opponents {
		if _, dup := layout.opponentIndex[o]; dup {
			return nil, fmt.Errorf("duplicate opponent column %q", o)
		}
		layout.opponentIndex[o] = i
	}

	return layout, nil
}

// Width returns the number of columns in the feature vector
func (l *FeatureLayout) Width() int {
	return len(l.Players) + 2 + len(l.Opponents)
}

// Columns returns the column names in positional order
func (l *FeatureLayout) Columns() []string {
	cols := make([]string, 0, l.Width())
	cols = append(cols, l.Players...)
	cols = append(cols, ColumnTotalRating, ColumnIsHome)
	for _, o := range l.Opponents {
		cols = append(cols, opponentColumnPrefix+o)
	}
	return cols
}

// Vector builds the positional feature vector for a context
func (l *FeatureLayout) Vector(fc FeatureContext) ([]float64, error) {
	x := make([]float64, l.Width())

	for _, p := range fc.Players {
		idx, ok := l.playerIndex[p]
		if !ok {
			return nil, fmt.Errorf("player %q has no column in the model", p)
		}
		x[idx] = 1.0
	}

	controls := len(l.Players)
	x[controls] = fc.TotalRating
	x[controls+1] = fc.IsHome

	if fc.Opponent != "" && fc.Opponent != l.ReferenceOpponent {
		idx, ok := l.opponentIndex[fc.Opponent]
		if !ok {
			return nil, fmt.Errorf("opponent %q has no column in the model", fc.Opponent)
		}
		x[controls+2+idx] = 1.0
	}

	return x, nil
}
