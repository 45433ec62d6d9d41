package settings

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/augurhq/augur/internal/logger"
)

// StorageKey is the fixed durable-storage key holding the serialized record
const StorageKey = "prediction_config"

// KV is the durable key-value storage the store persists into
type KV interface {
	GetValue(ctx context.Context, key string) (string, bool, error)
	SetValue(ctx context.Context, key, value string) error
}

// Store is the single source of truth for the user configuration record
type Store struct {
	kv KV
}

// NewStore creates a settings store backed by the given durable storage
func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Load reads the configuration record from durable storage. A missing record
// yields a fresh default; a corrupt or unreadable record is logged and
// replaced by a fresh default. Load never returns an error.
func (s *Store) Load(ctx context.Context) *Configuration {
	raw, ok, err := s.kv.GetValue(ctx, StorageKey)
	if err != nil {
		logger.Warning("Failed to read configuration, using defaults: %v", err)
		return Default()
	}
	if !ok {
		return Default()
	}

	var cfg Configuration
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		logger.Warning("Stored configuration is corrupt, using defaults: %v", err)
		return Default()
	}

	return &cfg
}

// Save serializes the full record and writes it to durable storage,
// overwriting any prior value. Write failures propagate to the caller.
func (s *Store) Save(ctx context.Context, cfg *Configuration) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := s.kv.SetValue(ctx, StorageKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist configuration: %w", err)
	}

	return nil
}

// Reset replaces the stored record with a fresh default, persists it and
// returns the new record
func (s *Store) Reset(ctx context.Context) (*Configuration, error) {
	cfg := Default()
	if err := s.Save(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RequestHeaders projects the current configuration into the header set sent
// with upstream prediction requests. The content-type marker is always
// present; credential and preference headers are included only when the
// corresponding field is non-empty. No other configuration field is ever
// exposed as a header.
func (s *Store) RequestHeaders(ctx context.Context) map[string]string {
	return HeadersFor(s.Load(ctx))
}

// HeadersFor is the pure projection from a configuration record to headers
func HeadersFor(cfg *Configuration) map[string]string {
	headers := map[string]string{
		"Content-Type": "application/json",
	}

	setIfPresent := func(name, value string) {
		if value != "" {
			headers[name] = value
		}
	}

	setIfPresent("X-Serper-Api-Key", cfg.Search.SerperAPIKey)
	setIfPresent("X-Jina-Api-Key", cfg.Search.JinaAPIKey)
	setIfPresent("X-OpenRouter-Api-Key", cfg.OpenRouter.OpenRouterAPIKey)
	setIfPresent("X-LiteLLM-Model", cfg.LLM.LiteLLMModelID)
	setIfPresent("X-Search-Provider", cfg.Search.SearchProvider)
	setIfPresent("X-Reranker", cfg.Search.Reranker)

	return headers
}
