package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/jakechorley/wcr-rotation/internal/config"
	"github.com/jakechorley/wcr-rotation/pkg/db"
)

// FixturePlan is the rotation plan for one fixture date
type FixturePlan struct {
	Fixture config.Fixture
	Date    time.Time
	Result  *PlanResult
}

// fixtureMatch is a single expanded fixture occurrence
type fixtureMatch struct {
	index   int
	fixture config.Fixture
	date    time.Time
}

// PlanFixtures plans a rotation for every fixture occurrence between from
// and to (inclusive), each with that fixture's opponent and venue.
// Plans come back in date order; fixtures on the same date keep config order.
func PlanFixtures(
	ctx context.Context,
	store db.PlanStore,
	engine *Engine,
	cfg *config.Config,
	recorder MetricsRecorder,
	logger *zap.Logger,
	from, to time.Time,
	dryRun bool,
) ([]FixturePlan, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("fixture window ends (%s) before it starts (%s)",
			to.Format("2006-01-02"), from.Format("2006-01-02"))
	}
	if len(cfg.Fixtures) == 0 {
		return nil, fmt.Errorf("no fixtures configured")
	}

	var matches []fixtureMatch
	for i, fixture := range cfg.Fixtures {
		dates, err := FixtureDates(fixture, from, to)
		if err != nil {
			return nil, fmt.Errorf("fixture %d (%s): %w", i, fixture.Opponent, err)
		}

		logger.Debug("Expanded fixture",
			zap.Int("index", i),
			zap.String("opponent", fixture.Opponent),
			zap.String("rrule", fixture.RRule),
			zap.Int("dates", len(dates)))

		for _, d := range dates {
			matches = append(matches, fixtureMatch{index: i, fixture: fixture, date: d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if !matches[i].date.Equal(matches[j].date) {
			return matches[i].date.Before(matches[j].date)
		}
		return matches[i].index < matches[j].index
	})

	logger.Info("Planning fixtures",
		zap.Int("fixtures", len(cfg.Fixtures)),
		zap.Int("matches", len(matches)),
		zap.String("from", from.Format("2006-01-02")),
		zap.String("to", to.Format("2006-01-02")))

	plans := make([]FixturePlan, 0, len(matches))
	for _, m := range matches {
		opts := PlanOptions{
			Opponent:  m.fixture.Opponent,
			Venue:     m.fixture.Venue,
			MatchDate: m.date.Format("2006-01-02"),
			DryRun:    dryRun,
		}

		result, err := planRotation(ctx, store, engine, cfg, recorder, logger, opts, KindFixture)
		if err != nil {
			return nil, fmt.Errorf("failed to plan %s on %s: %w", m.fixture.Opponent, opts.MatchDate, err)
		}

		plans = append(plans, FixturePlan{Fixture: m.fixture, Date: m.date, Result: result})
	}

	return plans, nil
}

// FixtureDates expands a fixture's rrule into the match dates between from
// and to inclusive. The rule is anchored at from, so DTSTART in the rule
// string is ignored.
func FixtureDates(fixture config.Fixture, from, to time.Time) ([]time.Time, error) {
	rule, err := rrule.StrToRRule(fixture.RRule)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rrule: %w", err)
	}

	rule.DTStart(from)

	return rule.Between(from, to, true), nil
}
