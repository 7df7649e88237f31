package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jakechorley/wcr-rotation/pkg/db"
)

// GetPlans retrieves all plan records, newest first
func (d *DB) GetPlans(ctx context.Context) ([]db.Plan, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, created_at, match_date, opponent, venue,
		       game_minutes, block_minutes, max_points, injured
		FROM plan
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query plans: %w", err)
	}
	defer rows.Close()

	var plans []db.Plan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating plans: %w", err)
	}

	return plans, nil
}

// GetPlan retrieves a plan with its blocks and minutes
func (d *DB) GetPlan(ctx context.Context, planID string) (*db.PlanDetail, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT id, created_at, match_date, opponent, venue,
		       game_minutes, block_minutes, max_points, injured
		FROM plan
		WHERE id = $1
	`, planID)

	plan, err := scanPlan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", db.ErrPlanNotFound, planID)
		}
		return nil, err
	}

	blocks, err := d.getPlanBlocks(ctx, planID)
	if err != nil {
		return nil, err
	}

	minutes, err := d.getPlanMinutes(ctx, planID)
	if err != nil {
		return nil, err
	}

	return &db.PlanDetail{Plan: *plan, Blocks: blocks, Minutes: minutes}, nil
}

func (d *DB) getPlanBlocks(ctx context.Context, planID string) ([]db.PlanBlock, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, plan_id, block, start_min, end_min, players, total_rating, score
		FROM plan_block
		WHERE plan_id = $1
		ORDER BY block
	`, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to query plan blocks: %w", err)
	}
	defer rows.Close()

	var blocks []db.PlanBlock
	for rows.Next() {
		var b db.PlanBlock
		if err := rows.Scan(&b.ID, &b.PlanID, &b.Block, &b.StartMin, &b.EndMin, &b.Players, &b.TotalRating, &b.Score); err != nil {
			return nil, fmt.Errorf("failed to scan plan block: %w", err)
		}
		blocks = append(blocks, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating plan blocks: %w", err)
	}

	return blocks, nil
}

func (d *DB) getPlanMinutes(ctx context.Context, planID string) ([]db.PlanMinutes, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT plan_id, player_id, minutes, equity_target
		FROM plan_minutes
		WHERE plan_id = $1
		ORDER BY minutes DESC, player_id
	`, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to query plan minutes: %w", err)
	}
	defer rows.Close()

	var minutes []db.PlanMinutes
	for rows.Next() {
		var m db.PlanMinutes
		if err := rows.Scan(&m.PlanID, &m.PlayerID, &m.Minutes, &m.EquityTarget); err != nil {
			return nil, fmt.Errorf("failed to scan plan minutes: %w", err)
		}
		minutes = append(minutes, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating plan minutes: %w", err)
	}

	return minutes, nil
}

// InsertPlan inserts a plan with its blocks and minutes in one transaction
func (d *DB) InsertPlan(ctx context.Context, detail *db.PlanDetail) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	p := detail.Plan
	var matchDate *string
	if p.MatchDate != "" {
		matchDate = &p.MatchDate
	}
	injured := p.Injured
	if injured == nil {
		injured = []string{}
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO plan (id, match_date, opponent, venue, game_minutes, block_minutes, max_points, injured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, p.ID, matchDate, p.Opponent, p.Venue, p.GameMinutes, p.BlockMinutes, p.MaxPoints, injured)
	if err != nil {
		return fmt.Errorf("failed to insert plan: %w", err)
	}

	batch := &pgx.Batch{}
	for _, b := range detail.Blocks {
		batch.Queue(`
			INSERT INTO plan_block (id, plan_id, block, start_min, end_min, players, total_rating, score)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, b.ID, p.ID, b.Block, b.StartMin, b.EndMin, b.Players, b.TotalRating, b.Score)
	}
	for _, m := range detail.Minutes {
		batch.Queue(`
			INSERT INTO plan_minutes (plan_id, player_id, minutes, equity_target)
			VALUES ($1, $2, $3, $4)
		`, p.ID, m.PlayerID, m.Minutes, m.EquityTarget)
	}

	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert plan rows: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func scanPlan(row pgx.Row) (*db.Plan, error) {
	var p db.Plan
	var createdAt time.Time
	var matchDate *time.Time
	if err := row.Scan(&p.ID, &createdAt, &matchDate, &p.Opponent, &p.Venue,
		&p.GameMinutes, &p.BlockMinutes, &p.MaxPoints, &p.Injured); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan plan: %w", err)
	}

	p.CreatedAt = createdAt.UTC().Format(time.RFC3339)
	if matchDate != nil {
		p.MatchDate = matchDate.Format("2006-01-02")
	}

	return &p, nil
}
