package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/wcr-rotation/cmd/cli/commands"
	"github.com/jakechorley/wcr-rotation/internal/config"
	"github.com/jakechorley/wcr-rotation/pkg/clients/sheetsclient"
	"github.com/jakechorley/wcr-rotation/pkg/core/services"
	"github.com/jakechorley/wcr-rotation/pkg/metrics"
	"github.com/jakechorley/wcr-rotation/pkg/postgres"
	"github.com/jakechorley/wcr-rotation/pkg/utils/logging"
)

var (
	env string
	app = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "WCR Rotation CLI - Plan wheelchair rugby lineups and rotations",
		Long: `A CLI tool for picking wheelchair rugby lineups under the classification points cap
and simulating in-game rotations that balance strength, fatigue and playing time.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			closeApp()
		},
	}

	// Add persistent environment flag
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.BestLineupsCmd(app))
	rootCmd.AddCommand(commands.PlanRotationCmd(app))
	rootCmd.AddCommand(commands.PlanFixturesCmd(app))
	rootCmd.AddCommand(commands.ListPlansCmd(app))
	rootCmd.AddCommand(commands.ViewPlanCmd(app))
	rootCmd.AddCommand(commands.PublishPlanCmd(app))
	rootCmd.AddCommand(commands.ImpactsCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		closeApp()
		os.Exit(1)
	}
}

// initApp sets up logger, config, model, metrics and the optional database
// and sheets client
func initApp() error {
	var err error
	app.Ctx = context.Background()

	// Initialize logger
	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	// Load configuration
	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	// Load ratings and model
	app.Logger.Info("Loading ratings and model",
		zap.String("ratings_file", app.Cfg.RatingsFile),
		zap.String("model_file", app.Cfg.ModelFile))
	app.Engine, app.Model, err = services.LoadEngine(app.Cfg)
	if err != nil {
		return err
	}
	app.Logger.Debug("Model loaded successfully",
		zap.Int("players", len(app.Engine.Roster)),
		zap.Int("features", app.Model.Layout().Width()))

	app.Metrics = metrics.NewManager()

	if app.Cfg.DatabaseURL != "" {
		app.Logger.Info("Connecting to database")
		database, err := postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		app.Database = database
		app.Logger.Info("Database initialized successfully")
	} else {
		app.Logger.Warn("No databaseURL configured, plans will not be saved")
	}

	if app.Cfg.PlanSheetID != "" {
		app.Logger.Info("Initializing sheets client")
		sheetsClient, err := sheetsclient.NewClient(app.Ctx, app.Cfg.CredentialsFile)
		if err != nil {
			return fmt.Errorf("failed to create sheets client: %w", err)
		}
		app.Publisher = sheetsClient
		app.Logger.Debug("Sheets client initialized successfully")
	}

	return nil
}

// closeApp flushes metrics and logs and closes the database
func closeApp() {
	if app.Metrics != nil && app.Cfg != nil && app.Cfg.MetricsFile != "" {
		if err := app.Metrics.WriteTextfile(app.Cfg.MetricsFile); err != nil && app.Logger != nil {
			app.Logger.Warn("Failed to write metrics", zap.Error(err))
		}
		app.Metrics = nil
	}
	if app.Database != nil {
		app.Database.Close()
		app.Database = nil
	}
	if app.Logger != nil {
		app.Logger.Sync()
	}
}
