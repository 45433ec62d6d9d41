package models

import (
	"time"
)

// APIResponse is the standard envelope for all console API responses
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// PredictRequest is the body accepted by the predict endpoint and forwarded upstream
type PredictRequest struct {
	Domain    string                 `json:"domain"`
	Params    map[string]interface{} `json:"params"`
	UseSearch *bool                  `json:"use_search,omitempty"`
}

// Question returns the free-text question carried in the request params, if any
func (r *PredictRequest) Question() string {
	if r.Params == nil {
		return ""
	}
	if q, ok := r.Params["question"].(string); ok {
		return q
	}
	return ""
}

// Conversation represents a chat session in the local history
type Conversation struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message represents a single entry in a conversation: a user question or a
// rendered prediction reply
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	Role           string    `json:"role"` // user, prediction
	Content        string    `json:"content"`
	Domain         string    `json:"domain,omitempty"`
	Confidence     *float64  `json:"confidence,omitempty"`
	ResultJSON     string    `json:"result_json,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// DomainStats represents aggregated prediction counts for one domain
type DomainStats struct {
	Domain        string    `json:"domain"`
	Predictions   int       `json:"predictions"`
	AvgConfidence float64   `json:"avg_confidence"`
	LastSeen      time.Time `json:"last_seen"`
}

// StatsSummary represents aggregated statistics over the local prediction history
type StatsSummary struct {
	TotalPredictions int           `json:"total_predictions"`
	ByDomain         []DomainStats `json:"by_domain"`
	GeneratedAt      time.Time     `json:"generated_at"`
}
