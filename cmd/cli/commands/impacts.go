package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/wcr-rotation/pkg/core/services"
)

// ImpactsCmd creates the impacts command
func ImpactsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "impacts",
		Short: "List each player's fitted impact on point differential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			impacts := services.PlayerImpacts(app.Model, app.Logger, limit)

			fmt.Printf("\n📈 Player impacts (%d players):\n\n", len(impacts))
			fmt.Printf("%-4s  %-25s  %-8s\n", "#", "Player", "Impact")
			fmt.Println("----  -------------------------  --------")
			for i, impact := range impacts {
				color := colorGreen
				if impact.Impact < 0 {
					color = colorRed
				}
				fmt.Printf("%-4d  %-25s  %s%+.4f%s\n", i+1, impact.PlayerID, color, impact.Impact, colorReset)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Int("limit", 0, "Number of players to show (0 for all)")

	return cmd
}
