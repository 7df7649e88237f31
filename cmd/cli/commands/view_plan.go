package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/wcr-rotation/pkg/core/services"
)

// ViewPlanCmd creates the viewPlan command
func ViewPlanCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewPlan [plan_id]",
		Short: "Show a saved plan's schedule and minutes (defaults to latest plan)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireDatabase(); err != nil {
				return err
			}

			planID := ""
			if len(args) > 0 {
				planID = args[0]
			}

			app.Logger.Debug("viewPlan command", zap.String("plan_id", planID))

			detail, err := services.GetPlan(app.Ctx, app.Database, app.Logger, planID)
			if err != nil {
				return err
			}

			plan := detail.Plan
			fmt.Printf("\nPlan ID:  %s\n", plan.ID)
			fmt.Printf("Created:  %s\n", plan.CreatedAt)
			if plan.MatchDate != "" {
				fmt.Printf("Date:     %s\n", plan.MatchDate)
			}
			if plan.Opponent != "" {
				fmt.Printf("Opponent: %s (%s)\n", plan.Opponent, plan.Venue)
			} else {
				fmt.Printf("Venue:    %s\n", plan.Venue)
			}
			if len(plan.Injured) > 0 {
				fmt.Printf("Injured:  %s\n", formatLineup(plan.Injured))
			}
			fmt.Println()

			fmt.Printf("%-6s  %-8s  %-50s  %-6s  %-8s\n", "Block", "Minutes", "Lineup", "Rating", "Score")
			fmt.Println("------  --------  --------------------------------------------------  ------  --------")
			for _, b := range detail.Blocks {
				fmt.Printf("%-6d  %-8s  %-50s  %-6.1f  %-8.4f\n",
					b.Block, formatBlockRange(b.StartMin, b.EndMin), formatLineup(b.Players), b.TotalRating, b.Score)
			}
			fmt.Println()

			minutes := make([]services.PlayerMinutes, len(detail.Minutes))
			for i, m := range detail.Minutes {
				minutes[i] = services.PlayerMinutes{PlayerID: m.PlayerID, Minutes: m.Minutes, EquityTarget: m.EquityTarget}
			}
			printMinutes(minutes)

			return nil
		},
	}
}
