package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bourse-labs/regchat/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		Key:     func() string { return "test-key" },
		BaseURL: server.URL,
	})
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresCredentialSource(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient(Config{Key: func() string { return "k" }})
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, client.ModelName())
}

func TestGenerate_RequestShape(t *testing.T) {
	var gotPath, gotKey, gotContentType string
	var gotBody generateRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "hello"}}}},
			},
		})
	})

	text, err := client.Generate(context.Background(), "the prompt")

	require.NoError(t, err)
	assert.Equal(t, "hello", text)
	assert.Equal(t, "/v1beta/models/"+DefaultModel+":generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "application/json", gotContentType)
	// Single turn, single part, carrying the prompt verbatim.
	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.Equal(t, "the prompt", gotBody.Contents[0].Parts[0].Text)
}

func TestGenerate_Status404(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	})

	_, err := client.Generate(context.Background(), "p")

	assert.ErrorIs(t, err, domain.ErrModelNotFound)
}

func TestGenerate_Status429(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := client.Generate(context.Background(), "p")

	assert.ErrorIs(t, err, domain.ErrRateLimited)
}

func TestGenerate_OtherStatusCarriesBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "internal upstream failure", http.StatusBadGateway)
	})

	_, err := client.Generate(context.Background(), "p")

	var upstream *domain.UpstreamStatusError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusBadGateway, upstream.StatusCode)
	assert.Contains(t, upstream.Body, "internal upstream failure")
	assert.Contains(t, err.Error(), "502")
}

func TestGenerate_NoCandidates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	})

	_, err := client.Generate(context.Background(), "p")

	assert.ErrorIs(t, err, domain.ErrNoTextInResponse)
}

func TestGenerate_EmptyParts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []any{}}},
			},
		})
	})

	_, err := client.Generate(context.Background(), "p")

	assert.ErrorIs(t, err, domain.ErrNoTextInResponse)
}

func TestListModels(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"models": []map[string]any{
				{
					"name":                       "models/gemini-2.0-flash",
					"displayName":                "Gemini 2.0 Flash",
					"supportedGenerationMethods": []string{"generateContent", "countTokens"},
				},
				{
					"name":                       "models/embedding-001",
					"displayName":                "Embedding 001",
					"supportedGenerationMethods": []string{"embedContent"},
				},
			},
		})
	})

	models, err := client.ListModels(context.Background())

	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, "models/gemini-2.0-flash", models[0].Name)
	assert.True(t, models[0].SupportsGeneration())
	assert.False(t, models[1].SupportsGeneration())
}

func TestListModels_UpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad key", http.StatusForbidden)
	})

	_, err := client.ListModels(context.Background())

	var upstream *domain.UpstreamStatusError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusForbidden, upstream.StatusCode)
}

func TestPing(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"models": []any{}})
	})

	assert.NoError(t, client.Ping(context.Background()))
}
