package db

// Plan represents a stored rotation plan
type Plan struct {
	ID           string
	CreatedAt    string // RFC3339
	MatchDate    string // 2006-01-02, empty for an undated plan
	Opponent     string
	Venue        string
	GameMinutes  float64
	BlockMinutes float64
	MaxPoints    float64
	Injured      []string
}

// PlanBlock represents one decision block of a stored plan
type PlanBlock struct {
	ID          string
	PlanID      string
	Block       int
	StartMin    float64
	EndMin      float64
	Players     []string
	TotalRating float64
	Score       float64
}

// PlanMinutes represents the final minutes credited to one player in a plan
type PlanMinutes struct {
	PlanID       string
	PlayerID     string
	Minutes      float64
	EquityTarget float64
}

// PlanDetail is a plan with its blocks and minutes
type PlanDetail struct {
	Plan    Plan
	Blocks  []PlanBlock
	Minutes []PlanMinutes
}
