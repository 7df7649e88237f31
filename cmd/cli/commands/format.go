package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var errNoDatabase = errors.New("no databaseURL configured")

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

const dateLayout = "2006-01-02"

// formatMinutes prints whole minutes without a decimal point
func formatMinutes(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64)
}

// formatBlockRange renders a block's span, e.g. "0-1" or "30-32"
func formatBlockRange(start, end float64) string {
	return formatMinutes(start) + "-" + formatMinutes(end)
}

// formatLineup joins a lineup with commas, or a dash when empty
func formatLineup(players []string) string {
	if len(players) == 0 {
		return "—"
	}
	return strings.Join(players, ", ")
}

// minutesColor picks the color for a player's minutes against their equity
// target: green at or above target, yellow when at least half way there,
// red below that, and dim for players who never got on court.
func minutesColor(minutes, target float64) string {
	switch {
	case minutes == 0:
		return colorDim
	case minutes >= target:
		return colorGreen
	case minutes*2 >= target:
		return colorYellow
	default:
		return colorRed
	}
}

// injuredOverride returns the --injured flag value when it was given.
// Passing the flag with no names clears the configured list.
func injuredOverride(cmd *cobra.Command) ([]string, bool) {
	if !cmd.Flags().Changed("injured") {
		return nil, false
	}
	injured, _ := cmd.Flags().GetStringSlice("injured")
	if injured == nil {
		injured = []string{}
	}
	return injured, true
}

// parseDate parses a YYYY-MM-DD flag value. Empty returns fallback.
func parseDate(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", value, err)
	}
	return d, nil
}

// today returns the current date at midnight UTC
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// fixtureWindow resolves the planFixtures date window. An explicit to wins
// over weeks.
func fixtureWindow(fromValue, toValue string, weeks int, now time.Time) (time.Time, time.Time, error) {
	from, err := parseDate(fromValue, now)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if toValue != "" {
		to, err := parseDate(toValue, from)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return from, to, nil
	}

	if weeks <= 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("weeks must be positive, got %d", weeks)
	}

	return from, from.AddDate(0, 0, 7*weeks-1), nil
}
