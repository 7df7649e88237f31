package sheetsclient

import (
	"fmt"
	"strconv"
)

// PublishedBlock is one decision block row of a published plan
type PublishedBlock struct {
	Block       int
	StartMin    float64
	EndMin      float64
	Players     []string
	TotalRating float64
	Score       float64
}

// PublishedMinutes is one player's row in the minutes table
type PublishedMinutes struct {
	PlayerID     string
	Minutes      float64
	EquityTarget float64
}

// PublishedPlan is the data written to a plan tab
type PublishedPlan struct {
	PlanID    string
	MatchDate string // 2006-01-02, may be empty
	Opponent  string
	Venue     string
	Blocks    []PublishedBlock
	Minutes   []PublishedMinutes
}

// PublishPlan writes a plan to its own tab, replacing any previous contents
// of a tab with the same title. Returns the tab title.
func (c *Client) PublishPlan(spreadsheetID string, plan *PublishedPlan) (string, error) {
	tabTitle := planTabTitle(plan)

	exists, err := c.SheetExists(spreadsheetID, tabTitle)
	if err != nil {
		return "", err
	}

	if exists {
		if err := c.ClearValues(spreadsheetID, tabTitle); err != nil {
			return "", fmt.Errorf("failed to clear tab %q: %w", tabTitle, err)
		}
	} else {
		if _, err := c.CreateSheet(spreadsheetID, tabTitle); err != nil {
			return "", fmt.Errorf("failed to create tab %q: %w", tabTitle, err)
		}
	}

	if err := c.UpdateValues(spreadsheetID, tabTitle+"!A1", buildPlanRows(plan)); err != nil {
		return "", fmt.Errorf("failed to write tab %q: %w", tabTitle, err)
	}

	return tabTitle, nil
}

// planTabTitle names a tab like "2026-06-06 vs USA (1a2b3c4d)".
// The short plan id keeps two plans for the same match apart.
func planTabTitle(plan *PublishedPlan) string {
	shortID := plan.PlanID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}

	opponent := plan.Opponent
	if opponent == "" {
		opponent = "reference"
	}

	if plan.MatchDate == "" {
		return fmt.Sprintf("vs %s (%s)", opponent, shortID)
	}
	return fmt.Sprintf("%s vs %s (%s)", plan.MatchDate, opponent, shortID)
}

// buildPlanRows lays out the schedule table, a blank row, then the minutes table
func buildPlanRows(plan *PublishedPlan) [][]interface{} {
	rows := [][]interface{}{
		{"Plan", plan.PlanID, "Venue", plan.Venue},
		{},
		{"Block", "Start", "End", "Player 1", "Player 2", "Player 3", "Player 4", "Total rating", "Score"},
	}

	for _, b := range plan.Blocks {
		row := []interface{}{b.Block, formatMinutes(b.StartMin), formatMinutes(b.EndMin)}
		for i := 0; i < 4; i++ {
			if i < len(b.Players) {
				row = append(row, b.Players[i])
			} else {
				row = append(row, "")
			}
		}
		row = append(row, b.TotalRating, b.Score)
		rows = append(rows, row)
	}

	rows = append(rows, []interface{}{}, []interface{}{"Player", "Minutes", "Target"})
	for _, m := range plan.Minutes {
		rows = append(rows, []interface{}{m.PlayerID, m.Minutes, m.EquityTarget})
	}

	return rows
}

func formatMinutes(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64)
}
