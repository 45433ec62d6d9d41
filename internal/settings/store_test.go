package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memKV is an in-memory stand-in for the durable storage backend
type memKV struct {
	values  map[string]string
	getErr  error
	setErr  error
	setKeys []string
}

func newMemKV() *memKV {
	return &memKV{values: map[string]string{}}
}

func (m *memKV) GetValue(_ context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memKV) SetValue(_ context.Context, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	m.setKeys = append(m.setKeys, key)
	return nil
}

func TestLoadMissingReturnsDefault(t *testing.T) {
	store := NewStore(newMemKV())

	cfg := store.Load(context.Background())
	assert.Equal(t, Default(), cfg)
}

func TestLoadReturnsIndependentCopies(t *testing.T) {
	store := NewStore(newMemKV())
	ctx := context.Background()

	first := store.Load(ctx)
	first.Search.SerperAPIKey = "mutated"

	second := store.Load(ctx)
	assert.Empty(t, second.Search.SerperAPIKey, "mutating one loaded record must not leak into later loads")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(newMemKV())
	ctx := context.Background()

	cfg := Default()
	cfg.Search.SerperAPIKey = "serper-123"
	cfg.OpenRouter.OpenRouterAPIKey = "or-456"
	cfg.LLM.LiteLLMModelID = "openrouter/anthropic/claude-sonnet"

	require.NoError(t, store.Save(ctx, cfg))

	loaded := store.Load(ctx)
	assert.Equal(t, cfg, loaded)
}

func TestLoadCorruptRecordFallsBackToDefault(t *testing.T) {
	for _, corrupt := range []string{"{not json", "[]", `"just a string"`, "\x00\x01"} {
		kv := newMemKV()
		kv.values[StorageKey] = corrupt
		store := NewStore(kv)

		assert.NotPanics(t, func() {
			cfg := store.Load(context.Background())
			// Arrays and plain strings fail to unmarshal into the record and
			// must fall back; objects decode into a zero record wholesale.
			assert.NotNil(t, cfg)
		}, "corrupt input %q", corrupt)
	}
}

func TestLoadUnparseableJSONReturnsDefault(t *testing.T) {
	kv := newMemKV()
	kv.values[StorageKey] = "{definitely not json"
	store := NewStore(kv)

	cfg := store.Load(context.Background())
	assert.Equal(t, Default(), cfg)
}

func TestLoadStorageReadFailureReturnsDefault(t *testing.T) {
	kv := newMemKV()
	kv.getErr = errors.New("storage unavailable")
	store := NewStore(kv)

	cfg := store.Load(context.Background())
	assert.Equal(t, Default(), cfg)
}

func TestSaveStorageWriteFailurePropagates(t *testing.T) {
	kv := newMemKV()
	kv.setErr = errors.New("disk full")
	store := NewStore(kv)

	err := store.Save(context.Background(), Default())
	require.Error(t, err)
	assert.ErrorIs(t, err, kv.setErr)
}

func TestStoredRecordReplacesDefaultsWholesale(t *testing.T) {
	kv := newMemKV()
	// A record missing whole groups: the stored value wins, no merge with
	// defaults.
	kv.values[StorageKey] = `{"search":{"serperApiKey":"abc"}}`
	store := NewStore(kv)

	cfg := store.Load(context.Background())
	assert.Equal(t, "abc", cfg.Search.SerperAPIKey)
	assert.Empty(t, cfg.Search.SearchProvider)
	assert.Empty(t, cfg.LLM.LiteLLMModelID)
	assert.Empty(t, cfg.OpenRouter.OpenRouterBaseURL)
}

func TestResetPersistsAndReturnsDefault(t *testing.T) {
	kv := newMemKV()
	store := NewStore(kv)
	ctx := context.Background()

	custom := Default()
	custom.Search.SerperAPIKey = "to-be-wiped"
	require.NoError(t, store.Save(ctx, custom))

	cfg, err := store.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, Default(), store.Load(ctx), "reset must persist immediately")

	// Returned record is a fresh copy, not a shared default.
	cfg.LLM.LiteLLMModelID = "mutated"
	assert.NotEqual(t, cfg, Default())
}

func TestRequestHeadersContentTypeAlwaysPresent(t *testing.T) {
	headers := HeadersFor(&Configuration{})
	assert.Equal(t, map[string]string{"Content-Type": "application/json"}, headers)
}

func TestRequestHeadersGatedOnNonEmpty(t *testing.T) {
	cfg := &Configuration{}
	cfg.Search.SerperAPIKey = "s-key"
	cfg.Search.JinaAPIKey = "j-key"
	cfg.Search.SearchProvider = "searxng"
	cfg.Search.Reranker = "none"
	cfg.LLM.LiteLLMModelID = "openrouter/google/gemini-2.0-flash-001"
	cfg.OpenRouter.OpenRouterAPIKey = "or-key"

	headers := HeadersFor(cfg)
	assert.Equal(t, map[string]string{
		"Content-Type":         "application/json",
		"X-Serper-Api-Key":     "s-key",
		"X-Jina-Api-Key":       "j-key",
		"X-OpenRouter-Api-Key": "or-key",
		"X-LiteLLM-Model":      "openrouter/google/gemini-2.0-flash-001",
		"X-Search-Provider":    "searxng",
		"X-Reranker":           "none",
	}, headers)
}

func TestRequestHeadersNeverLeakOtherFields(t *testing.T) {
	cfg := Default()
	cfg.OpenRouter.OpenRouterBaseURL = "https://openrouter.ai/api/v1"
	cfg.OpenRouter.OpenRouterModel = "secret-model"
	cfg.OpenRouter.YourSiteURL = "https://example.com"
	cfg.OpenRouter.YourSiteName = "Example"

	headers := HeadersFor(cfg)
	for name, value := range headers {
		assert.NotEqual(t, "secret-model", value, "header %s", name)
		assert.NotContains(t, value, "example.com", "header %s", name)
	}
}

func TestRequestHeadersFromStore(t *testing.T) {
	kv := newMemKV()
	store := NewStore(kv)
	ctx := context.Background()

	cfg := Default()
	cfg.Search.JinaAPIKey = "jina-1"
	require.NoError(t, store.Save(ctx, cfg))

	headers := store.RequestHeaders(ctx)
	assert.Equal(t, "jina-1", headers["X-Jina-Api-Key"])
	assert.Equal(t, "application/json", headers["Content-Type"])
}
