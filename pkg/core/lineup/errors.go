package lineup

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoValidLineup is returned when no lineup satisfies the points cap
var ErrNoValidLineup = errors.New("no valid lineup under the points cap")

// MissingRatingError is returned when a player has no classification rating
type MissingRatingError struct {
	PlayerID string
}

func (e *MissingRatingError) Error() string {
	return fmt.Sprintf("no rating found for player %q", e.PlayerID)
}

// InsufficientRosterError is returned when fewer than LineupSize players are available
type InsufficientRosterError struct {
	Available int
	Injured   int
}

func (e *InsufficientRosterError) Error() string {
	return fmt.Sprintf("need at least %d available players to form a lineup, have %d (%d injured)",
		LineupSize, e.Available, e.Injured)
}

// ModelPredictionError wraps a failure returned by the impact model
type ModelPredictionError struct {
	Players []string
	Err     error
}

func (e *ModelPredictionError) Error() string {
	return fmt.Sprintf("impact model failed for lineup [%s]: %v", strings.Join(e.Players, ", "), e.Err)
}

func (e *ModelPredictionError) Unwrap() error {
	return e.Err
}
