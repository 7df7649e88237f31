package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/wcr-rotation/pkg/core/services"
)

// PlanRotationCmd creates the planRotation command
func PlanRotationCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "planRotation",
		Short: "Simulate a full game rotation and save the plan",
		Long: `Simulate a full game rotation block by block, balancing lineup strength
against fatigue, playing time equity and overuse.

The opponent and venue default to the game settings in the config file.
The plan is saved to the database unless --dry-run is set or no database is configured.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opponent, _ := cmd.Flags().GetString("opponent")
			venue, _ := cmd.Flags().GetString("venue")
			matchDate, _ := cmd.Flags().GetString("date")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			injured, _ := injuredOverride(cmd)

			if matchDate != "" {
				if _, err := parseDate(matchDate, today()); err != nil {
					return err
				}
			}

			app.Logger.Debug("planRotation command",
				zap.String("opponent", opponent),
				zap.String("venue", venue),
				zap.String("date", matchDate),
				zap.Strings("injured", injured),
				zap.Bool("dry_run", dryRun))

			result, err := services.PlanRotation(app.Ctx, app.planStore(), app.Engine, app.Cfg, app.recorder(), app.Logger,
				services.PlanOptions{
					Opponent:  opponent,
					Venue:     venue,
					Injured:   injured,
					MatchDate: matchDate,
					DryRun:    dryRun,
				})
			if err != nil {
				return fmt.Errorf("failed to plan rotation: %w", err)
			}

			printPlanResult(result)

			return nil
		},
	}

	cmd.Flags().String("opponent", "", "Opponent to plan against (defaults to config)")
	cmd.Flags().String("venue", "", "Venue: home, away or neutral (defaults to config)")
	cmd.Flags().StringSlice("injured", nil, "Injured players for this match, replacing the config list (e.g. --injured amy,ben)")
	cmd.Flags().String("date", "", "Match date to store with the plan (YYYY-MM-DD)")
	cmd.Flags().Bool("dry-run", false, "Run without saving to database")

	return cmd
}

func printPlanResult(result *services.PlanResult) {
	plan := result.Plan
	opponent := plan.Opponent
	if opponent == "" {
		opponent = "reference opponent"
	}

	fmt.Printf("\n✅ Rotation planned\n\n")
	fmt.Printf("Plan ID:  %s\n", plan.ID)
	if plan.MatchDate != "" {
		fmt.Printf("Date:     %s\n", plan.MatchDate)
	}
	fmt.Printf("Opponent: %s (%s)\n", opponent, plan.Venue)
	fmt.Printf("Blocks:   %d x %s min, %d valid lineups\n\n",
		len(result.Schedule), formatMinutes(plan.BlockMinutes), result.ValidLineupCount)

	fmt.Printf("%-6s  %-8s  %-50s  %-6s  %-8s\n", "Block", "Minutes", "Lineup", "Rating", "Score")
	fmt.Println("------  --------  --------------------------------------------------  ------  --------")
	for _, entry := range result.Schedule {
		fmt.Printf("%-6d  %-8s  %-50s  %-6.1f  %-8.4f\n",
			entry.Block, formatBlockRange(entry.StartMin, entry.EndMin), formatLineup(entry.Lineup),
			entry.TotalRating, entry.Score)
	}
	fmt.Println()

	printMinutes(result.Minutes)

	if result.Saved {
		fmt.Println("💾 Plan saved to database.")
	} else {
		fmt.Println("⚠️  Plan not saved.")
	}
	fmt.Println()
}

func printMinutes(minutes []services.PlayerMinutes) {
	fmt.Printf("⏱  Minutes played:\n\n")
	fmt.Printf("%-25s  %-8s  %-8s\n", "Player", "Minutes", "Target")
	fmt.Println("-------------------------  --------  --------")
	for _, m := range minutes {
		color := minutesColor(m.Minutes, m.EquityTarget)
		fmt.Printf("%-25s  %s%-8s%s  %-8s\n",
			m.PlayerID, color, formatMinutes(m.Minutes), colorReset, formatMinutes(m.EquityTarget))
	}
	fmt.Println()
}
