package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/augurhq/augur/internal/api"
	"github.com/augurhq/augur/internal/monitor"
)

var (
	servePort  string
	serveHost  string
	corsOrigin string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the augur console server",
	Long: `Start the augur console HTTP server. It serves the chat page, forwards
predictions to the upstream service with your stored credentials, and keeps
the conversation history in the local database.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Port to run the console on (overrides config file)")
	serveCmd.Flags().StringVarP(&serveHost, "host", "H", "", "Host to bind the console to (overrides config file)")
	serveCmd.Flags().StringVarP(&corsOrigin, "cors-origin", "c", "", "CORS origin to allow (overrides config file, use '*' for all origins)")
}

func runServe(cmd *cobra.Command, args []string) error {
	host := cfg.Server.Host
	if serveHost != "" {
		host = serveHost
	}
	port := cfg.Server.Port
	if servePort != "" {
		port = servePort
	}

	selectedCORSOrigin := corsOrigin
	if selectedCORSOrigin == "" {
		if cfg.Server.CORSOrigin != "" {
			selectedCORSOrigin = cfg.Server.CORSOrigin
		} else {
			selectedCORSOrigin = "*"
		}
	}

	fmt.Printf("🚀 Starting Augur Console\n")
	fmt.Printf("=========================\n")
	fmt.Printf("Host: %s\n", host)
	fmt.Printf("Port: %s\n", port)
	fmt.Printf("Upstream: %s\n", cfg.Upstream.BaseURL)
	fmt.Printf("URL: http://%s:%s/\n", host, port)
	fmt.Println()

	mon := monitor.New(client, cfg.Monitor.Interval)
	if err := mon.Start(); err != nil {
		return fmt.Errorf("failed to start upstream monitor: %w", err)
	}
	defer mon.Stop()

	server := api.NewServer(database, settingsStore, client, mon, selectedCORSOrigin)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Println("\n🛑 Shutting down console...")
		mon.Stop()
		database.Close()
		os.Exit(0)
	}()

	fmt.Println("🌐 Console is running!")
	fmt.Println()
	fmt.Println("📚 Available Endpoints:")
	fmt.Println("    GET    /                        - Chat console page")
	fmt.Println("    POST   /api/v1/predict          - Run a prediction")
	fmt.Println("    GET    /api/v1/settings         - Show settings (keys masked)")
	fmt.Println("    PUT    /api/v1/settings         - Replace settings")
	fmt.Println("    POST   /api/v1/settings/reset   - Reset settings to defaults")
	fmt.Println("    GET    /api/v1/history          - List conversations")
	fmt.Println("    GET    /api/v1/history/:id      - Get conversation with messages")
	fmt.Println("    GET    /api/v1/stats            - Prediction statistics")
	fmt.Println("    GET    /api/v1/health           - Health check")
	fmt.Println()
	fmt.Println("Press Ctrl+C to stop the server")

	address := fmt.Sprintf("%s:%s", host, port)
	return server.Run(address)
}
