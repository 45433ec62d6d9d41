package render

import (
	"fmt"
	"html"
	"strconv"
	"strings"
)

// RenderForecast renders the structured forecast block. A nil forecast yields
// an empty fragment.
func RenderForecast(f *Forecast) string {
	if f == nil {
		return ""
	}

	items := ForecastItems(f)

	var b strings.Builder
	b.WriteString(`<div class="prediction-forecast"><h4>Forecast</h4><ul>`)
	for _, item := range items {
		b.WriteString(`<li>`)
		b.WriteString(html.EscapeString(item))
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul></div>`)
	return b.String()
}

// ForecastItems formats the forecast fields as display lines. Each item is
// independently optional; probability fields are gated on being present, not
// on being non-zero, since 0 is a valid probability.
func ForecastItems(f *Forecast) []string {
	var items []string

	if f.TemperatureRange != nil {
		items = append(items, fmt.Sprintf("Temperature Range: %s°C - %s°C",
			formatNumber(f.TemperatureRange.Low), formatNumber(f.TemperatureRange.High)))
	}
	if f.PrecipitationProb != nil {
		items = append(items, fmt.Sprintf("Precipitation: %.0f%%", *f.PrecipitationProb*100))
	}
	if f.WeatherCondition != "" {
		items = append(items, "Condition: "+f.WeatherCondition)
	}
	if f.WindSpeed != nil {
		unit := f.WindSpeed.Unit
		if unit == "" {
			unit = "km/h"
		}
		items = append(items, fmt.Sprintf("Wind: %s %s", formatNumber(f.WindSpeed.Speed), unit))
	}
	if f.Humidity != nil {
		items = append(items, fmt.Sprintf("Humidity: %.0f%%", *f.Humidity*100))
	}

	return items
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
