package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/wcr-rotation/pkg/core/services"
)

// BestLineupsCmd creates the bestLineups command
func BestLineupsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bestLineups",
		Short: "Rank the best fresh lineups under the points cap",
		Long: `Rank every valid lineup of the available roster as if all players were fresh.
No fatigue, equity or overuse adjustments are applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			cfg := app.Cfg
			if injured, ok := injuredOverride(cmd); ok {
				override := *app.Cfg
				override.Injured = injured
				cfg = &override
			}

			result, err := services.BestLineups(app.Engine, cfg, app.Logger, limit)
			if err != nil {
				return err
			}

			fmt.Printf("\n🏉 Best fresh lineup (max %s points)\n\n", formatMinutes(app.Cfg.Game.MaxPoints))
			fmt.Printf("Lineup:       %s\n", result.Best.Lineup)
			fmt.Printf("Total rating: %.1f\n", result.Best.TotalRating)
			fmt.Printf("Score:        %.4f\n\n", result.Best.Score)

			fmt.Printf("%d valid lineups from %d available players. Top %d:\n\n",
				result.ValidCount, len(result.Available), len(result.Top))

			fmt.Printf("%-4s  %-50s  %-6s  %-8s\n", "#", "Lineup", "Rating", "Score")
			fmt.Println("----  --------------------------------------------------  ------  --------")
			for i, r := range result.Top {
				fmt.Printf("%-4d  %-50s  %-6.1f  %-8.4f\n", i+1, r.Lineup, r.TotalRating, r.Score)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Int("limit", 20, "Number of lineups to show (0 for all)")
	cmd.Flags().StringSlice("injured", nil, "Injured players to leave out, replacing the config list")

	return cmd
}
