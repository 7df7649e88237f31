package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/wcr-rotation/pkg/core/services"
)

// PublishPlanCmd creates the publishPlan command
func PublishPlanCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "publishPlan [plan_id]",
		Short: "Publish a plan to Google Sheets",
		Long:  "Publish a saved plan to its own tab of the plan sheet. If no plan_id is provided, publishes the latest plan.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireDatabase(); err != nil {
				return err
			}
			if app.Publisher == nil {
				return fmt.Errorf("no planSheetID configured")
			}

			planID := ""
			if len(args) > 0 {
				planID = args[0]
			}

			app.Logger.Debug("publishPlan command", zap.String("plan_id", planID))

			result, err := services.PublishPlan(app.Ctx, app.Database, app.Publisher, app.Cfg, app.Logger, planID)
			if err != nil {
				return err
			}

			fmt.Printf("\n✅ Plan Published Successfully\n\n")
			fmt.Printf("Plan ID:  %s\n", result.PlanID)
			fmt.Printf("Tab:      %s\n", result.TabTitle)
			fmt.Printf("Sheet ID: %s\n\n", app.Cfg.PlanSheetID)

			return nil
		},
	}
}
