package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/augurhq/augur/internal/db"
)

var migrationsDir string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage database migrations",
	Long:  `Run local database migrations using golang-migrate.`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Run all pending migrations",
	Long:  `Apply all pending migrations to the local database.`,
	RunE:  runMigrateUp,
}

func init() {
	migrateUpCmd.Flags().StringVar(&migrationsDir, "dir", "", "Migrations directory (default is internal/db/migrations)")
	migrateCmd.AddCommand(migrateUpCmd)
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	fmt.Println("🔄 Running database migrations...")

	if err := db.RunMigrations(database.Handle(), migrationsDir); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Println("✅ Migrations completed successfully!")
	return nil
}
