package render

import (
	"fmt"
	"html"
	"strings"
	"time"
)

// DefaultConfidence is assumed when the payload carries no confidence score
const DefaultConfidence = 0.5

var domainLabels = map[string]string{
	"general":  "General Prediction",
	"sports":   "Sports",
	"weather":  "Weather",
	"election": "Election",
}

// DomainLabel resolves a domain tag to its display label. Unknown domains
// render their raw identifier rather than erroring or defaulting.
func DomainLabel(domain string) string {
	if domain == "" {
		domain = "general"
	}
	if label, ok := domainLabels[domain]; ok {
		return label
	}
	return domain
}

// ConfidenceBadge maps a confidence score to its three-tier badge label.
// Bands are inclusive on their lower bound.
func ConfidenceBadge(confidence float64) string {
	switch {
	case confidence >= 0.7:
		return "High Confidence"
	case confidence >= 0.5:
		return "Medium Confidence"
	default:
		return "Low Confidence"
	}
}

func badgeClass(confidence float64) string {
	switch {
	case confidence >= 0.7:
		return "confidence-high"
	case confidence >= 0.5:
		return "confidence-medium"
	default:
		return "confidence-low"
	}
}

// Render translates a prediction result into an HTML fragment. Sections are
// emitted in a fixed order; sections whose data is absent are omitted, never
// an error.
func Render(result PredictionResult) string {
	confidence := DefaultConfidence
	if result.Confidence != nil {
		confidence = *result.Confidence
	}

	var b strings.Builder

	// Header: domain label and confidence badge, always present.
	b.WriteString(`<div class="prediction-header"><span class="prediction-domain">`)
	b.WriteString(html.EscapeString(DomainLabel(result.Domain)))
	b.WriteString(`</span><span class="confidence-badge `)
	b.WriteString(badgeClass(confidence))
	b.WriteString(`">`)
	b.WriteString(ConfidenceBadge(confidence))
	b.WriteString(`</span></div>`)

	// Analysis, falling back to the summary field.
	analysis := result.Analysis
	if analysis == "" {
		analysis = result.Summary
	}
	if analysis != "" {
		b.WriteString(`<div class="prediction-analysis">`)
		b.WriteString(FormatAnalysis(analysis))
		b.WriteString(`</div>`)
	}

	// Metrics: confidence always, timestamp when present.
	b.WriteString(`<div class="prediction-metrics"><span>Confidence: `)
	b.WriteString(fmt.Sprintf("%.1f%%", confidence*100))
	b.WriteString(`</span>`)
	if result.Timestamp != "" {
		b.WriteString(`<span>Time: `)
		b.WriteString(html.EscapeString(formatTimestamp(result.Timestamp)))
		b.WriteString(`</span>`)
	}
	b.WriteString(`</div>`)

	if len(result.Factors) > 0 {
		writeListSection(&b, "prediction-factors", "Key Factors", result.Factors)
	}

	if result.Forecast != nil {
		b.WriteString(RenderForecast(result.Forecast))
	}

	if len(result.Warnings) > 0 {
		writeListSection(&b, "prediction-warnings", "Warnings", result.Warnings)
	}

	return b.String()
}

func writeListSection(b *strings.Builder, class, title string, items []string) {
	b.WriteString(`<div class="` + class + `"><h4>` + title + `</h4><ul>`)
	for _, item := range items {
		b.WriteString(`<li>`)
		b.WriteString(html.EscapeString(item))
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul></div>`)
}

// formatTimestamp renders an ISO timestamp as local time, falling back to the
// raw string when it does not parse
func formatTimestamp(ts string) string {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.Local().Format("2006-01-02 15:04:05")
		}
	}
	return ts
}
