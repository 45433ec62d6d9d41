package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage the stored service credentials",
	Long:  `Show or reset the configuration record sent to the prediction service as request headers.`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored settings with API keys masked",
	RunE:  runSettingsShow,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the stored settings to their defaults",
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsResetCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	cfg := settingsStore.Load(context.Background())

	fmt.Println(FormatHeader("🔧 Stored Settings"))
	fmt.Println("==================")
	fmt.Println()
	fmt.Println(FormatLabelValue("Serper API key:", maskKey(cfg.Search.SerperAPIKey)))
	fmt.Println(FormatLabelValue("Jina API key:", maskKey(cfg.Search.JinaAPIKey)))
	fmt.Println(FormatLabelValue("OpenRouter API key:", maskKey(cfg.OpenRouter.OpenRouterAPIKey)))
	fmt.Println(FormatLabelValue("Search provider:", cfg.Search.SearchProvider))
	fmt.Println(FormatLabelValue("Reranker:", cfg.Search.Reranker))
	fmt.Println(FormatLabelValue("Model:", cfg.LLM.LiteLLMModelID))

	return nil
}

func runSettingsReset(cmd *cobra.Command, args []string) error {
	if _, err := settingsStore.Reset(context.Background()); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}

	fmt.Println(FormatSuccess("✅ Settings reset to defaults"))
	return nil
}

func maskKey(key string) string {
	if key == "" {
		return FormatDim("(not set)")
	}
	if len(key) <= 8 {
		return "***"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
