package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jakechorley/wcr-rotation/internal/config"
	"github.com/jakechorley/wcr-rotation/pkg/clients/sheetsclient"
	"github.com/jakechorley/wcr-rotation/pkg/core/model"
	"github.com/jakechorley/wcr-rotation/pkg/db"
)

// testRatings gives p1..p8 classification ratings
var testRatings = model.RatingMap{
	"p1": 3.0,
	"p2": 2.5,
	"p3": 2.0,
	"p4": 1.5,
	"p5": 1.0,
	"p6": 0.5,
	"p7": 3.5,
	"p8": 0.5,
}

// testModel builds a linear model where the fresh best lineup under 8.0
// points is p1, p2, p4, p5 (impact 0.80, rating 8.0)
func testModel(t *testing.T) *model.LinearModel {
	t.Helper()
	cf := &model.CoefficientsFile{
		Intercept:         0.01,
		TotalRating:       0,
		IsHome:            0.1,
		ReferenceOpponent: "Australia",
		Players: map[string]float64{
			"p1": 0.30,
			"p2": 0.25,
			"p3": 0.20,
			"p4": 0.15,
			"p5": 0.10,
			"p6": 0.04,
			"p7": 0.00,
			"p8": -0.05,
		},
		Opponents: map[string]float64{
			"USA":    -0.20,
			"Canada": -0.10,
		},
	}
	m, err := cf.Build()
	require.NoError(t, err)
	return m
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	m := testModel(t)
	return &Engine{
		Roster:  m.Layout().Players,
		Ratings: testRatings,
		Model:   m,
	}
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.RatingsFile = "player_data.csv"
	cfg.ModelFile = "model.yaml"
	cfg.PlanSheetID = "sheet123"
	cfg.Game.Minutes = 8
	cfg.Game.BlockMinutes = 1
	return cfg
}

// mockPlanStore is an in-memory db.PlanStore
type mockPlanStore struct {
	plans     []db.PlanDetail
	insertErr error
	getErr    error
}

func (m *mockPlanStore) GetPlans(ctx context.Context) ([]db.Plan, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	plans := make([]db.Plan, len(m.plans))
	for i, d := range m.plans {
		plans[i] = d.Plan
	}
	return plans, nil
}

func (m *mockPlanStore) GetPlan(ctx context.Context, planID string) (*db.PlanDetail, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for i := range m.plans {
		if m.plans[i].Plan.ID == planID {
			return &m.plans[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", db.ErrPlanNotFound, planID)
}

func (m *mockPlanStore) InsertPlan(ctx context.Context, detail *db.PlanDetail) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.plans = append(m.plans, *detail)
	return nil
}

// mockPublisher records the plans it was asked to publish
type mockPublisher struct {
	spreadsheetID string
	published     []*sheetsclient.PublishedPlan
	err           error
}

func (m *mockPublisher) PublishPlan(spreadsheetID string, plan *sheetsclient.PublishedPlan) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.spreadsheetID = spreadsheetID
	m.published = append(m.published, plan)
	return "tab-" + plan.PlanID, nil
}

// mockRecorder counts metrics calls by kind
type mockRecorder struct {
	plans  map[string]int
	errors map[string]int
	blocks int
}

func newMockRecorder() *mockRecorder {
	return &mockRecorder{plans: map[string]int{}, errors: map[string]int{}}
}

func (m *mockRecorder) RecordPlan(kind string, blocks, validLineups int, duration time.Duration, minutes map[string]float64) {
	m.plans[kind]++
	m.blocks += blocks
}

func (m *mockRecorder) RecordPlanError(kind string) {
	m.errors[kind]++
}

// mockImpacts is a fixed ImpactSource
type mockImpacts []model.PlayerImpact

func (m mockImpacts) PlayerImpacts() []model.PlayerImpact {
	return m
}
