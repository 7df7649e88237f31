package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/wcr-rotation/pkg/core/services"
)

// PlanFixturesCmd creates the planFixtures command
func PlanFixturesCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "planFixtures",
		Short: "Plan a rotation for every configured fixture in a date window",
		Long: `Expand each fixture's recurrence rule over the date window and plan a rotation
for every match, using that fixture's opponent and venue.

The window starts at --from (default today) and runs for --weeks weeks,
or until --to when it is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fromValue, _ := cmd.Flags().GetString("from")
			toValue, _ := cmd.Flags().GetString("to")
			weeks, _ := cmd.Flags().GetInt("weeks")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			from, to, err := fixtureWindow(fromValue, toValue, weeks, today())
			if err != nil {
				return err
			}

			app.Logger.Debug("planFixtures command",
				zap.Time("from", from),
				zap.Time("to", to),
				zap.Bool("dry_run", dryRun))

			plans, err := services.PlanFixtures(app.Ctx, app.planStore(), app.Engine, app.Cfg, app.recorder(), app.Logger,
				from, to, dryRun)
			if err != nil {
				return fmt.Errorf("failed to plan fixtures: %w", err)
			}

			fmt.Printf("\n📅 Fixtures %s to %s\n\n", from.Format(dateLayout), to.Format(dateLayout))
			if len(plans) == 0 {
				fmt.Println("No fixtures fall in this window.")
				return nil
			}

			fmt.Printf("%-24s  %-12s  %-20s  %-8s  %-36s\n", "Date", "Opponent", "Venue", "Saved", "Plan ID")
			fmt.Println("------------------------  ------------  --------------------  --------  ------------------------------------")
			for _, p := range plans {
				saved := "no"
				if p.Result.Saved {
					saved = "yes"
				}
				fmt.Printf("%-24s  %-12s  %-20s  %-8s  %-36s\n",
					p.Date.Format("2006-01-02 (Monday)"), p.Result.Plan.Opponent, p.Result.Plan.Venue, saved, p.Result.Plan.ID)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("from", "", "First day of the window (YYYY-MM-DD, default today)")
	cmd.Flags().String("to", "", "Last day of the window (YYYY-MM-DD, overrides --weeks)")
	cmd.Flags().Int("weeks", 4, "Length of the window in weeks")
	cmd.Flags().Bool("dry-run", false, "Run without saving to database")

	return cmd
}
