package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestConfidenceBadgeBoundaries(t *testing.T) {
	tests := []struct {
		confidence float64
		expected   string
	}{
		{0.7, "High Confidence"},
		{0.6999, "Medium Confidence"},
		{0.5, "Medium Confidence"},
		{0.4999, "Low Confidence"},
		{1.0, "High Confidence"},
		{0.0, "Low Confidence"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ConfidenceBadge(tt.confidence), "confidence=%v", tt.confidence)
	}
}

func TestDomainLabels(t *testing.T) {
	assert.Equal(t, "General Prediction", DomainLabel(""))
	assert.Equal(t, "General Prediction", DomainLabel("general"))
	assert.Equal(t, "Sports", DomainLabel("sports"))
	assert.Equal(t, "Weather", DomainLabel("weather"))
	assert.Equal(t, "Election", DomainLabel("election"))
}

func TestDomainLabelUnknownRendersVerbatim(t *testing.T) {
	assert.Equal(t, "crypto", DomainLabel("crypto"))

	html := Render(PredictionResult{Domain: "crypto"})
	assert.Contains(t, html, ">crypto</span>")
	assert.NotContains(t, html, "General Prediction")
}

func TestRenderMinimalPayloadHasHeaderAndMetricsOnly(t *testing.T) {
	html := Render(PredictionResult{Domain: "weather"})

	assert.Contains(t, html, "prediction-header")
	assert.Contains(t, html, ">Weather</span>")
	assert.Contains(t, html, "prediction-metrics")
	assert.Contains(t, html, "Confidence: 50.0%")
	assert.Contains(t, html, "Medium Confidence")

	assert.NotContains(t, html, "prediction-analysis")
	assert.NotContains(t, html, "prediction-factors")
	assert.NotContains(t, html, "prediction-forecast")
	assert.NotContains(t, html, "prediction-warnings")
	assert.NotContains(t, html, "Time:")
}

func TestRenderSectionOrderIsFixed(t *testing.T) {
	html := Render(PredictionResult{
		Domain:     "weather",
		Analysis:   "It will rain.",
		Confidence: floatPtr(0.9),
		Factors:    []string{"cold front"},
		Warnings:   []string{"storm risk"},
		Forecast:   &Forecast{WeatherCondition: "rain"},
	})

	header := indexOf(t, html, "prediction-header")
	analysis := indexOf(t, html, "prediction-analysis")
	metrics := indexOf(t, html, "prediction-metrics")
	factors := indexOf(t, html, "prediction-factors")
	forecast := indexOf(t, html, "prediction-forecast")
	warnings := indexOf(t, html, "prediction-warnings")

	assert.True(t, header < analysis, "header before analysis")
	assert.True(t, analysis < metrics, "analysis before metrics")
	assert.True(t, metrics < factors, "metrics before factors")
	assert.True(t, factors < forecast, "factors before forecast")
	assert.True(t, forecast < warnings, "forecast before warnings")
}

func indexOf(t *testing.T, s, substr string) int {
	t.Helper()
	idx := strings.Index(s, substr)
	require.GreaterOrEqual(t, idx, 0, "expected %q in fragment", substr)
	return idx
}

func TestRenderAnalysisFallsBackToSummary(t *testing.T) {
	html := Render(PredictionResult{Summary: "Short summary."})
	assert.Contains(t, html, "prediction-analysis")
	assert.Contains(t, html, "<p>Short summary.</p>")
}

func TestRenderMetricsConfidenceFormatting(t *testing.T) {
	html := Render(PredictionResult{Confidence: floatPtr(0.725)})
	assert.Contains(t, html, "Confidence: 72.5%")
}

func TestRenderTimestampShownWhenPresent(t *testing.T) {
	html := Render(PredictionResult{Timestamp: "2026-08-23T10:30:00Z"})
	assert.Contains(t, html, "Time: ")
}

func TestRenderUnparseableTimestampShownRaw(t *testing.T) {
	html := Render(PredictionResult{Timestamp: "yesterday-ish"})
	assert.Contains(t, html, "Time: yesterday-ish")
}

func TestRenderFactorsEscaped(t *testing.T) {
	html := Render(PredictionResult{
		Factors: []string{`<script>alert("x")</script>`},
	})
	assert.Contains(t, html, "prediction-factors")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderWarningsListPreservesOrder(t *testing.T) {
	html := Render(PredictionResult{Warnings: []string{"first", "second"}})
	assert.Contains(t, html, "<li>first</li><li>second</li>")
}

func TestRenderForecastPrecipitationZeroStillShown(t *testing.T) {
	// Defined-but-falsy must render: 0 is a valid probability.
	html := Render(PredictionResult{
		Domain:   "weather",
		Forecast: &Forecast{PrecipitationProb: floatPtr(0)},
	})
	assert.Contains(t, html, "Precipitation: 0%")
}

func TestRenderForecastHumidityZeroStillShown(t *testing.T) {
	fragment := RenderForecast(&Forecast{Humidity: floatPtr(0)})
	assert.Contains(t, fragment, "Humidity: 0%")
}

func TestRenderForecastNilEmitsNothing(t *testing.T) {
	assert.Empty(t, RenderForecast(nil))
}

func TestRenderForecastFullBlock(t *testing.T) {
	fragment := RenderForecast(&Forecast{
		TemperatureRange:  &TemperatureRange{Low: 18, High: 27.5},
		PrecipitationProb: floatPtr(0.3),
		WeatherCondition:  "cloudy",
		WindSpeed:         &WindSpeed{Speed: 12},
		Humidity:          floatPtr(0.65),
	})

	assert.Contains(t, fragment, "Temperature Range: 18°C - 27.5°C")
	assert.Contains(t, fragment, "Precipitation: 30%")
	assert.Contains(t, fragment, "Condition: cloudy")
	assert.Contains(t, fragment, "Wind: 12 km/h") // unit defaults to km/h
	assert.Contains(t, fragment, "Humidity: 65%")
}

func TestDecodeTolerantOfGarbage(t *testing.T) {
	assert.NotPanics(t, func() {
		Decode([]byte("not json at all"))
		Decode([]byte(`[]`))
		Decode([]byte(`{"confidence":"very high","factors":"not a list","forecast":"oops"}`))
	})

	result := Decode([]byte(`{"confidence":"very high","factors":"not a list","forecast":"oops"}`))
	assert.Nil(t, result.Confidence)
	assert.Empty(t, result.Factors)
	assert.Nil(t, result.Forecast)
}

func TestDecodeKeyFactorsFallback(t *testing.T) {
	result := Decode([]byte(`{"key_factors":["a","b"]}`))
	assert.Equal(t, []string{"a", "b"}, result.Factors)

	// factors wins over key_factors when both are present.
	result = Decode([]byte(`{"factors":["x"],"key_factors":["a"]}`))
	assert.Equal(t, []string{"x"}, result.Factors)
}

func TestDecodeForecastDefaults(t *testing.T) {
	result := Decode([]byte(`{"forecast":{"temperature_range":{"high":20},"wind_speed":{"speed":8}}}`))
	require.NotNil(t, result.Forecast)
	require.NotNil(t, result.Forecast.TemperatureRange)
	assert.Zero(t, result.Forecast.TemperatureRange.Low)
	assert.Equal(t, 20.0, result.Forecast.TemperatureRange.High)
	require.NotNil(t, result.Forecast.WindSpeed)
	assert.Empty(t, result.Forecast.WindSpeed.Unit)
	assert.Nil(t, result.Forecast.PrecipitationProb)
	assert.Nil(t, result.Forecast.Humidity)
}

func TestDecodeFullPayload(t *testing.T) {
	result := Decode([]byte(`{
		"domain": "weather",
		"timestamp": "2026-08-23T10:30:00",
		"analysis": "Rain likely.",
		"confidence": 0.8,
		"key_factors": ["cold front"],
		"warnings": ["flooding"],
		"forecast": {"precipitation_prob": 0.9, "weather_condition": "rain"}
	}`))

	assert.Equal(t, "weather", result.Domain)
	assert.Equal(t, "Rain likely.", result.Analysis)
	require.NotNil(t, result.Confidence)
	assert.Equal(t, 0.8, *result.Confidence)
	assert.Equal(t, []string{"cold front"}, result.Factors)
	assert.Equal(t, []string{"flooding"}, result.Warnings)
	require.NotNil(t, result.Forecast)
	assert.Equal(t, "rain", result.Forecast.WeatherCondition)
}
