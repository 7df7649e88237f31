package lineup

import (
	"github.com/jakechorley/wcr-rotation/pkg/core/model"
)

// mockModel predicts the sum of per-player impacts
type mockModel struct {
	impacts map[string]float64
	err     error
	calls   []model.FeatureContext
}

func (m *mockModel) Predict(fc model.FeatureContext) (float64, error) {
	m.calls = append(m.calls, fc)
	if m.err != nil {
		return 0, m.err
	}
	sum := 0.0
	for _, p := range fc.Players {
		sum += m.impacts[p]
	}
	return sum, nil
}

// mockCriterion returns a fixed penalty per lineup member present in perPlayer
type mockCriterion struct {
	name      string
	weight    float64
	perPlayer map[string]float64
}

func (c *mockCriterion) Name() string {
	return c.name
}

func (c *mockCriterion) Penalty(state *GameState, l Lineup) float64 {
	total := 0.0
	for _, p := range l.Players {
		total += c.perPlayer[p]
	}
	return total
}

func (c *mockCriterion) Weight() float64 {
	return c.weight
}

// minutesCriterion penalises each member by their current minutes
type minutesCriterion struct {
	weight float64
}

func (c *minutesCriterion) Name() string {
	return "Minutes"
}

func (c *minutesCriterion) Penalty(state *GameState, l Lineup) float64 {
	total := 0.0
	for _, p := range l.Players {
		total += state.Minutes(p)
	}
	return total
}

func (c *minutesCriterion) Weight() float64 {
	return c.weight
}

func uniformRatings(players []string, rating float64) model.RatingMap {
	ratings := make(model.RatingMap, len(players))
	for _, p := range players {
		ratings[p] = rating
	}
	return ratings
}
