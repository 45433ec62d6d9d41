package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/augurhq/augur/internal/models"
	"github.com/augurhq/augur/internal/render"
)

var (
	predictDomain   string
	predictNoSearch bool
)

var predictCmd = &cobra.Command{
	Use:   "predict [question]",
	Short: "Run a one-shot prediction from the terminal",
	Long:  `Send a single question to the prediction service and print the result. The stored API keys are attached automatically.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPredict,
}

func init() {
	predictCmd.Flags().StringVarP(&predictDomain, "domain", "d", "general", "Prediction domain (general, sports, weather, election)")
	predictCmd.Flags().BoolVar(&predictNoSearch, "no-search", false, "Disable web search for this prediction")
}

func runPredict(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	question := strings.Join(args, " ")

	useSearch := !predictNoSearch
	req := &models.PredictRequest{
		Domain:    predictDomain,
		Params:    map[string]interface{}{"question": question},
		UseSearch: &useSearch,
	}

	fmt.Printf("%s🔮 %s%s\n", InfoStyle, question, Reset)
	fmt.Printf("%sAsking the prediction service...%s\n\n", DimStyle, Reset)

	headers := settingsStore.RequestHeaders(ctx)
	raw, err := client.Predict(ctx, req, headers)
	if err != nil {
		return fmt.Errorf("prediction failed: %w", err)
	}

	printResult(render.Decode(raw))
	return nil
}

func printResult(result render.PredictionResult) {
	confidence := render.DefaultConfidence
	if result.Confidence != nil {
		confidence = *result.Confidence
	}

	badge := render.ConfidenceBadge(confidence)
	badgeStyle := confidenceStyle(confidence)

	fmt.Printf("%s%s%s  %s%s (%.1f%%)%s\n",
		HeaderStyle, render.DomainLabel(result.Domain), Reset,
		badgeStyle, badge, confidence*100, Reset)

	if result.Timestamp != "" {
		fmt.Println(FormatMeta("Time: " + result.Timestamp))
	}
	fmt.Println()

	analysis := result.Analysis
	if analysis == "" {
		analysis = result.Summary
	}
	if analysis != "" {
		fmt.Println(analysis)
		fmt.Println()
	}

	if len(result.Factors) > 0 {
		fmt.Println(FormatHeader("Key Factors"))
		for _, factor := range result.Factors {
			fmt.Printf("  • %s\n", factor)
		}
		fmt.Println()
	}

	if result.Forecast != nil {
		if items := render.ForecastItems(result.Forecast); len(items) > 0 {
			fmt.Println(FormatHeader("Forecast"))
			for _, item := range items {
				fmt.Printf("  • %s\n", item)
			}
			fmt.Println()
		}
	}

	for _, warning := range result.Warnings {
		fmt.Println(FormatWarning("⚠ " + warning))
	}
}

func confidenceStyle(confidence float64) string {
	switch {
	case confidence >= 0.7:
		return SuccessStyle
	case confidence >= 0.5:
		return WarningStyle
	default:
		return ErrorStyle
	}
}
