// Package render turns the loosely-typed prediction payload returned by the
// upstream service into an HTML fragment for the chat transcript. Every field
// is optional: absent or malformed fields drop their section instead of
// erroring.
package render

import (
	"encoding/json"
)

// PredictionResult is the decoded prediction payload. No field is guaranteed
// to be populated.
type PredictionResult struct {
	Domain     string
	Timestamp  string
	Analysis   string
	Summary    string
	Confidence *float64
	Factors    []string
	Warnings   []string
	Forecast   *Forecast
}

// Forecast is the optional structured weather block of a prediction
type Forecast struct {
	TemperatureRange  *TemperatureRange
	PrecipitationProb *float64
	WeatherCondition  string
	WindSpeed         *WindSpeed
	Humidity          *float64
}

// TemperatureRange holds forecast temperature bounds in °C
type TemperatureRange struct {
	Low  float64
	High float64
}

// WindSpeed holds a forecast wind speed with its unit
type WindSpeed struct {
	Speed float64
	Unit  string
}

// Decode extracts a PredictionResult from raw payload bytes. The payload
// comes from a third-party service and is never trusted to match a schema:
// fields of the wrong type are treated as absent and decoding never fails.
func Decode(data []byte) PredictionResult {
	var payload map[string]interface{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return PredictionResult{}
	}
	return fromPayload(payload)
}

func fromPayload(payload map[string]interface{}) PredictionResult {
	result := PredictionResult{
		Domain:     asString(payload["domain"]),
		Timestamp:  asString(payload["timestamp"]),
		Analysis:   asString(payload["analysis"]),
		Summary:    asString(payload["summary"]),
		Confidence: asNumber(payload["confidence"]),
		Warnings:   asStringSlice(payload["warnings"]),
	}

	// The upstream service emits key_factors; the chat payload contract says
	// factors. Accept both, preferring factors.
	result.Factors = asStringSlice(payload["factors"])
	if len(result.Factors) == 0 {
		result.Factors = asStringSlice(payload["key_factors"])
	}

	if forecast, ok := payload["forecast"].(map[string]interface{}); ok {
		result.Forecast = decodeForecast(forecast)
	}

	return result
}

func decodeForecast(payload map[string]interface{}) *Forecast {
	f := &Forecast{
		PrecipitationProb: asNumber(payload["precipitation_prob"]),
		WeatherCondition:  asString(payload["weather_condition"]),
		Humidity:          asNumber(payload["humidity"]),
	}

	if tr, ok := payload["temperature_range"].(map[string]interface{}); ok {
		f.TemperatureRange = &TemperatureRange{
			Low:  numberOrZero(tr["low"]),
			High: numberOrZero(tr["high"]),
		}
	}

	if ws, ok := payload["wind_speed"].(map[string]interface{}); ok {
		f.WindSpeed = &WindSpeed{
			Speed: numberOrZero(ws["speed"]),
			Unit:  asString(ws["unit"]),
		}
	}

	return f
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asNumber(v interface{}) *float64 {
	f, ok := v.(float64)
	if !ok {
		return nil
	}
	return &f
}

func numberOrZero(v interface{}) float64 {
	f, _ := v.(float64)
	return f
}

func asStringSlice(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
