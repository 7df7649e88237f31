package lineup

// Criterion defines a soft penalty applied when scoring a lineup.
// The weighted penalty (Weight * Penalty) is subtracted from the fatigue
// adjusted prediction, so larger penalties make a lineup less likely to be picked.
type Criterion interface {
	// Name returns a human-readable identifier for this criterion
	Name() string

	// Penalty returns the unweighted penalty for putting lineup on court
	// given the current state. Must be >= 0 and must not modify state.
	Penalty(state *GameState, lineup Lineup) float64

	// Weight is the multiplier applied to Penalty (0 disables the criterion)
	Weight() float64
}
