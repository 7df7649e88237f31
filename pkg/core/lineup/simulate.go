package lineup

import (
	"fmt"
	"math"
	"slices"

	"github.com/jakechorley/wcr-rotation/pkg/core/model"
)

// SimulationConfig contains everything needed to simulate a game rotation
type SimulationConfig struct {
	// Roster is the ordered list of players. Order determines enumeration
	// order and therefore tie-breaking between equal lineups.
	Roster []string

	// Injured players are excluded before anything else happens
	Injured []string

	Ratings model.RatingLookup
	Model   model.ImpactModel

	// MaxPoints is the classification points cap for a lineup
	MaxPoints float64

	// GameMinutes is the length of the game, BlockMinutes the decision granularity
	GameMinutes  float64
	BlockMinutes float64

	// MinMinutesPerPlayer floors each player's equity target
	MinMinutesPerPlayer float64

	// MaxMinutesPerPlayer is each player's overuse ceiling
	MaxMinutesPerPlayer float64

	// Scoring holds the controls, fatigue settings and penalty criteria
	Scoring ScoringConfig
}

// SimulationOutcome is the result of a rotation simulation
type SimulationOutcome struct {
	// Schedule has one entry per decision block, in order
	Schedule []ScheduleEntry

	// MinutesPlayed is the final minutes credited to every available player
	MinutesPlayed map[string]float64

	// EquityTarget is the target each available player was pulled towards
	EquityTarget map[string]float64

	// Available is the roster after removing injured players
	Available []string

	// ValidLineupCount is the number of lineups under the points cap
	ValidLineupCount int
}

// Simulate plans a full game rotation by greedily picking the best lineup for
// each decision block given the minutes played so far.
//
// The game is split into ceil(GameMinutes / BlockMinutes) blocks. Lineups are
// enumerated once up front since the roster and cap don't change. After each
// block every selected player is credited with BlockMinutes. A truncated
// final block still credits the full BlockMinutes even though its EndMin is
// clamped to GameMinutes.
//
// There is no lookahead: each block is optimised independently from the
// current state, so the plan is not guaranteed to be globally optimal.
func Simulate(cfg SimulationConfig) (*SimulationOutcome, error) {
	if cfg.GameMinutes <= 0 {
		return nil, fmt.Errorf("game minutes must be positive, got %v", cfg.GameMinutes)
	}
	if cfg.BlockMinutes <= 0 {
		return nil, fmt.Errorf("block minutes must be positive, got %v", cfg.BlockMinutes)
	}

	available := AvailablePlayers(cfg.Roster, cfg.Injured)
	if len(available) < LineupSize {
		return nil, &InsufficientRosterError{
			Available: len(available),
			Injured:   len(cfg.Roster) - len(available),
		}
	}

	equityTarget := EquityTargets(available, cfg.GameMinutes, cfg.MinMinutesPerPlayer)
	maxMinutes := MaxMinutesMap(available, cfg.MaxMinutesPerPlayer)
	state := NewGameState(available, equityTarget, maxMinutes)

	valid, err := EnumerateLineups(available, cfg.Ratings, cfg.MaxPoints)
	if err != nil {
		return nil, err
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("%w (max points %v)", ErrNoValidLineup, cfg.MaxPoints)
	}

	blocks := BlockCount(cfg.GameMinutes, cfg.BlockMinutes)
	schedule := make([]ScheduleEntry, 0, blocks)

	start := 0.0
	for k := 0; k < blocks; k++ {
		best, err := SelectBestLineup(valid, cfg.Ratings, cfg.Model, state, cfg.Scoring)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", k+1, err)
		}

		state.AddMinutes(best.Lineup.Players, cfg.BlockMinutes)

		schedule = append(schedule, ScheduleEntry{
			Block:       k + 1,
			StartMin:    start,
			EndMin:      math.Min(cfg.GameMinutes, start+cfg.BlockMinutes),
			Lineup:      slices.Clone(best.Lineup.Players),
			TotalRating: best.TotalRating,
			Score:       best.Score,
		})

		start += cfg.BlockMinutes
	}

	return &SimulationOutcome{
		Schedule:         schedule,
		MinutesPlayed:    state.Snapshot(),
		EquityTarget:     equityTarget,
		Available:        available,
		ValidLineupCount: len(valid),
	}, nil
}

// BlockCount returns the number of decision blocks needed to cover a game
func BlockCount(gameMinutes, blockMinutes float64) int {
	return int(math.Ceil(gameMinutes / blockMinutes))
}

// AvailablePlayers returns roster without injured players, preserving order
func AvailablePlayers(roster, injured []string) []string {
	available := make([]string, 0, len(roster))
	for _, p := range roster {
		if !slices.Contains(injured, p) {
			available = append(available, p)
		}
	}
	return available
}

// EquityTargets gives every player an equal share of the on-court minutes,
// floored by minMinutes.
//
// Example: 32 minute game, 10 players → 32 * 4 / 10 = 12.8 minutes each.
// With minMinutes = 14 every target becomes 14.
func EquityTargets(players []string, gameMinutes, minMinutes float64) map[string]float64 {
	targets := make(map[string]float64, len(players))
	if len(players) == 0 {
		return targets
	}

	share := gameMinutes * LineupSize / float64(len(players))
	for _, p := range players {
		targets[p] = math.Max(minMinutes, share)
	}
	return targets
}

// MaxMinutesMap gives every player the same overuse ceiling
func MaxMinutesMap(players []string, maxMinutes float64) map[string]float64 {
	caps := make(map[string]float64, len(players))
	for _, p := range players {
		caps[p] = maxMinutes
	}
	return caps
}
