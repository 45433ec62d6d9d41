// Package settings owns the persisted user configuration record: the search,
// LLM and OpenRouter credentials the console projects into upstream request
// headers. The record is stored as a single JSON value in durable local
// storage and is always replaced wholesale, never merged.
package settings

// Configuration is the persisted user settings record. All three groups are
// always present; individual fields may be empty.
type Configuration struct {
	Search     SearchSettings     `json:"search"`
	LLM        LLMSettings        `json:"llm"`
	OpenRouter OpenRouterSettings `json:"openrouter"`
}

// SearchSettings holds search provider credentials and preferences
type SearchSettings struct {
	SerperAPIKey   string `json:"serperApiKey"`
	JinaAPIKey     string `json:"jinaApiKey"`
	SearchProvider string `json:"searchProvider"` // serper, searxng
	Reranker       string `json:"reranker"`       // jina, none
}

// LLMSettings holds the LiteLLM model selection
type LLMSettings struct {
	LiteLLMModelID string `json:"litellmModelId"` // slash-delimited provider/model id
}

// OpenRouterSettings holds OpenRouter credentials and attribution fields
type OpenRouterSettings struct {
	OpenRouterAPIKey  string `json:"openrouterApiKey"`
	OpenRouterBaseURL string `json:"openrouterBaseUrl"`
	OpenRouterModel   string `json:"openrouterModel"`
	YourSiteURL       string `json:"yourSiteUrl"`
	YourSiteName      string `json:"yourSiteName"`
}

// Default returns a fresh default configuration. Each call returns an
// independent copy so callers can never share or mutate a common record.
func Default() *Configuration {
	return &Configuration{
		Search: SearchSettings{
			SearchProvider: "serper",
			Reranker:       "jina",
		},
		LLM: LLMSettings{
			LiteLLMModelID: "openrouter/google/gemini-2.0-flash-001",
		},
		OpenRouter: OpenRouterSettings{
			OpenRouterBaseURL: "https://openrouter.ai/api/v1",
			OpenRouterModel:   "google/gemini-2.0-flash-001",
			YourSiteName:      "Prediction AI Agent",
		},
	}
}

// Clone returns an independent copy of the configuration
func (c *Configuration) Clone() *Configuration {
	copied := *c
	return &copied
}
