package model

import "fmt"

// Venue values used for the is_home control. The model treats it as a
// continuous covariate so neutral sits halfway between away and home.
const (
	VenueAway    = 0.0
	VenueNeutral = 0.5
	VenueHome    = 1.0
)

// RatingLookup maps a player identifier to their classification rating
type RatingLookup interface {
	Rating(playerID string) (float64, bool)
}

// RatingMap is an in-memory RatingLookup
type RatingMap map[string]float64

// Rating returns the rating for playerID and whether it was present
func (m RatingMap) Rating(playerID string) (float64, bool) {
	r, ok := m[playerID]
	return r, ok
}

// FeatureContext is the structured input to an impact model.
// Adapters translate it into whatever column ordering their model needs.
type FeatureContext struct {
	// Players on court (exactly 4 for a lineup)
	Players []string

	// TotalRating is the summed classification rating of Players
	TotalRating float64

	// IsHome is 0.0 away, 0.5 neutral, 1.0 home
	IsHome float64

	// Opponent identifies the opposing team. Empty means the reference
	// (average) opponent.
	Opponent string
}

// ImpactModel predicts goal differential per minute for a lineup
type ImpactModel interface {
	Predict(fc FeatureContext) (float64, error)
}

// VenueValue converts a venue name into its is_home value
func VenueValue(venue string) (float64, error) {
	switch venue {
	case "home":
		return VenueHome, nil
	case "away":
		return VenueAway, nil
	case "neutral", "":
		return VenueNeutral, nil
	default:
		return 0, fmt.Errorf("unknown venue %q (expected home, away or neutral)", venue)
	}
}
