package lineup

import "math"

// DefaultFatigueFloor is the lowest effectiveness a player can decay to
const DefaultFatigueFloor = 0.70

// FatigueFactor returns max(floor, exp(-alpha * minutesPlayed)).
//
// The factor never increases with minutes played and never drops below floor,
// so fatigue is sustained rather than unbounded. An alpha of 0 always returns 1.
//
// Example:
//   - alpha = 0.02, minutesPlayed = 10 → max(0.70, exp(-0.2)) ≈ 0.8187
//   - alpha = 0.02, minutesPlayed = 30 → exp(-0.6) ≈ 0.549, floored to 0.70
func FatigueFactor(minutesPlayed, alpha, floor float64) float64 {
	return math.Max(floor, math.Exp(-alpha*minutesPlayed))
}
