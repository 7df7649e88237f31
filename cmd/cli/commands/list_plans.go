package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/wcr-rotation/pkg/core/services"
)

// ListPlansCmd creates the listPlans command
func ListPlansCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listPlans",
		Short: "List saved rotation plans, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireDatabase(); err != nil {
				return err
			}

			plans, err := services.ListPlans(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\nFound %d plans:\n\n", len(plans))
			if len(plans) == 0 {
				return nil
			}

			fmt.Printf("%-36s  %-20s  %-10s  %-12s  %-8s  %-6s\n", "Plan ID", "Created", "Date", "Opponent", "Venue", "Game")
			fmt.Println("------------------------------------  --------------------  ----------  ------------  --------  ------")
			for _, p := range plans {
				matchDate := p.MatchDate
				if matchDate == "" {
					matchDate = "—"
				}
				opponent := p.Opponent
				if opponent == "" {
					opponent = "—"
				}
				fmt.Printf("%-36s  %-20s  %-10s  %-12s  %-8s  %-6s\n",
					p.ID, p.CreatedAt, matchDate, opponent, p.Venue, formatMinutes(p.GameMinutes))
			}
			fmt.Println()

			return nil
		},
	}
}
