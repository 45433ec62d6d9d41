package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/augurhq/augur/internal/config"
	"github.com/augurhq/augur/internal/db"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize augur configuration",
	Long:  `Interactive wizard to set up augur configuration including the prediction service endpoint and local storage.`,
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("🚀 Welcome to Augur - Prediction Console Setup")
	fmt.Println("==============================================")
	fmt.Println()

	// Check if config already exists
	configPath := config.GetConfigPath()
	if config.Exists(configPath) {
		fmt.Printf("Configuration file already exists at: %s\n", configPath)
		confirmed, err := promptYesNo(reader, "Do you want to overwrite it? (y/N): ")
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Setup cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()

	// Upstream configuration
	fmt.Println("\n🔮 Prediction Service")
	fmt.Println("---------------------")

	baseURL, err := promptOptional(reader, "Prediction service URL [http://localhost:8000]: ", "http://localhost:8000")
	if err != nil {
		return err
	}
	cfg.Upstream.BaseURL = baseURL

	rpm, err := promptOptional(reader, "Request rate limit per minute, 0 to disable [30]: ", "30")
	if err != nil {
		return err
	}
	limit, err := strconv.Atoi(rpm)
	if err != nil || limit < 0 {
		return fmt.Errorf("invalid rate limit: %s", rpm)
	}
	cfg.Upstream.RequestsPerMinute = limit

	// Console configuration
	fmt.Println("\n🖥️  Console Server")
	fmt.Println("------------------")

	port, err := promptOptional(reader, "Console port [8080]: ", "8080")
	if err != nil {
		return err
	}
	cfg.Server.Port = port

	dbPath, err := promptOptional(reader, "Local database path [~/.augur/augur.db]: ", "~/.augur/augur.db")
	if err != nil {
		return err
	}
	cfg.Database.Path = dbPath

	// Test local storage
	fmt.Println("\n🔌 Opening local database...")

	testDB := db.New(cfg.Database.Path)
	ctx := context.Background()
	if err := testDB.Connect(ctx); err != nil {
		fmt.Printf("❌ Failed to open database: %v\n", err)
		fmt.Println("\nPlease check the database path and try again.")
		return err
	}
	defer testDB.Close()

	if err := testDB.Ping(ctx); err != nil {
		fmt.Printf("❌ Failed to ping database: %v\n", err)
		return err
	}

	fmt.Println("✅ Local database ready!")

	// Save configuration
	fmt.Println("\n💾 Saving configuration...")
	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("✅ Configuration saved to: %s\n", configPath)

	// Summary
	fmt.Println("\n📋 Configuration Summary")
	fmt.Println("========================")
	fmt.Printf("Prediction service: %s\n", cfg.Upstream.BaseURL)
	fmt.Printf("Console port: %s\n", cfg.Server.Port)
	fmt.Printf("Database: %s\n", cfg.Database.Path)
	fmt.Println()
	fmt.Println("🎉 Setup complete! You can now use augur.")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Start the console: augur serve")
	fmt.Println("  2. Open the chat page and add your API keys in settings")
	fmt.Println("  3. Or ask from the terminal: augur predict \"your question\"")

	return nil
}
