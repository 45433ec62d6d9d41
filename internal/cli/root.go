package cli

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/augurhq/augur/internal/config"
	"github.com/augurhq/augur/internal/db"
	"github.com/augurhq/augur/internal/logger"
	"github.com/augurhq/augur/internal/settings"
	"github.com/augurhq/augur/internal/upstream"
)

var (
	cfgFile       string
	cfg           *config.Config
	database      *db.DB
	settingsStore *settings.Store
	client        *upstream.Client
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "augur",
	Short: "Chat console for a prediction service",
	Long: `Augur is a chat console for an AI prediction service. It serves a web
chat page, forwards questions to the prediction service with your stored
credentials, renders the structured results, and keeps a local history of
every prediction.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip init for the init command itself
		if cmd.Name() == "init" {
			return nil
		}

		// Local .env files are optional
		_ = godotenv.Load()

		// Load configuration
		if cfgFile == "" {
			cfgFile = config.GetConfigPath()
		}

		if !config.Exists(cfgFile) {
			return fmt.Errorf("configuration file not found. Run 'augur init' to create one")
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger.SetLevel(logger.ParseLogLevel(cfg.LogLevel))

		// Initialize the local database
		database = db.New(cfg.Database.Path)
		if err := database.Connect(context.Background()); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		settingsStore = settings.NewStore(database)
		client = upstream.New(cfg.Upstream.BaseURL, cfg.Upstream.RequestsPerMinute)

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if database != nil {
			return database.Close()
		}
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.augur/config.yaml)")

	// Disable completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(migrateCmd)
}
