package lineup

import (
	"maps"
	"strings"
)

// LineupSize is the number of players a team has on court
const LineupSize = 4

// Lineup is an unordered set of LineupSize distinct players.
// Players keeps the order produced by enumeration so output is deterministic.
type Lineup struct {
	Players     []string
	TotalRating float64
}

// String renders the lineup as a comma separated list of players
func (l Lineup) String() string {
	return strings.Join(l.Players, ", ")
}

// Contains returns true if playerID is in the lineup
func (l Lineup) Contains(playerID string) bool {
	for _, p := range l.Players {
		if p == playerID {
			return true
		}
	}
	return false
}

// GameState is the mutable state of one simulated game.
// A state belongs to exactly one simulation run and must never be shared
// between concurrent runs.
type GameState struct {
	// MinutesPlayed is the accumulated minutes per player so far
	MinutesPlayed map[string]float64

	// EquityTarget is the fair-share minutes each player should reach.
	// Fixed for the duration of a run.
	EquityTarget map[string]float64

	// MaxMinutes is the ceiling above which playing time is penalised.
	// Fixed for the duration of a run.
	MaxMinutes map[string]float64
}

// NewGameState creates a state with every player at zero minutes
func NewGameState(players []string, equityTarget, maxMinutes map[string]float64) *GameState {
	minutes := make(map[string]float64, len(players))
	for _, p := range players {
		minutes[p] = 0
	}

	if equityTarget == nil {
		equityTarget = map[string]float64{}
	}
	if maxMinutes == nil {
		maxMinutes = map[string]float64{}
	}

	return &GameState{
		MinutesPlayed: minutes,
		EquityTarget:  equityTarget,
		MaxMinutes:    maxMinutes,
	}
}

// Minutes returns the minutes played by a player (0 if unknown or state is nil)
func (s *GameState) Minutes(playerID string) float64 {
	if s == nil {
		return 0
	}
	return s.MinutesPlayed[playerID]
}

// Target returns the equity target for a player and whether one is defined
func (s *GameState) Target(playerID string) (float64, bool) {
	if s == nil {
		return 0, false
	}
	t, ok := s.EquityTarget[playerID]
	return t, ok
}

// Cap returns the max minutes for a player and whether one is defined
func (s *GameState) Cap(playerID string) (float64, bool) {
	if s == nil {
		return 0, false
	}
	m, ok := s.MaxMinutes[playerID]
	return m, ok
}

// AddMinutes credits each player with the given minutes
func (s *GameState) AddMinutes(players []string, minutes float64) {
	for _, p := range players {
		s.MinutesPlayed[p] += minutes
	}
}

// Snapshot returns a copy of the minutes played
func (s *GameState) Snapshot() map[string]float64 {
	return maps.Clone(s.MinutesPlayed)
}

// ScoringConfig holds the controls and weights used to score a lineup
type ScoringConfig struct {
	// IsHome is the venue control (0.0 away, 0.5 neutral, 1.0 home)
	IsHome float64

	// Opponent is passed to the model; empty means the reference opponent
	Opponent string

	// FatigueAlpha is the decay strength of the fatigue factor (0 disables fatigue)
	FatigueAlpha float64

	// FatigueFloor is the lowest fatigue factor. Nil uses DefaultFatigueFloor;
	// an explicit 0 lets fatigue decay without a floor.
	FatigueFloor *float64

	// Criteria are the soft penalties subtracted from the fatigue adjusted prediction
	Criteria []Criterion
}

func (c ScoringConfig) fatigueFloor() float64 {
	if c.FatigueFloor == nil {
		return DefaultFatigueFloor
	}
	return *c.FatigueFloor
}

// ScoreResult is a lineup together with its adjusted score
type ScoreResult struct {
	Lineup      Lineup
	TotalRating float64
	Score       float64
}

// ScheduleEntry records the lineup chosen for one decision block
type ScheduleEntry struct {
	// Block is the 1-based block number
	Block int

	StartMin float64

	// EndMin is clamped to the game length
	EndMin float64

	Lineup      []string
	TotalRating float64
	Score       float64
}
