// Package gemini provides a Generator adapter for the Google Generative
// Language API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bourse-labs/regchat/internal/core/domain"
	"github.com/bourse-labs/regchat/internal/core/ports/driven"
	"github.com/bourse-labs/regchat/internal/logger"
)

// Ensure Client implements the interfaces.
var (
	_ driven.Generator   = (*Client)(nil)
	_ driven.ModelLister = (*Client)(nil)
)

// Default configuration values.
const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.0-flash"

	// DefaultTimeout is deliberately generous: the answer path carries the
	// whole corpus in every prompt, and slow upstream responses must not
	// be turned into failures.
	DefaultTimeout = 120 * time.Second
)

// Config holds configuration for the Gemini client.
type Config struct {
	// Key supplies the API key per request (required).
	Key driven.CredentialSource

	// BaseURL is the API base URL (default: https://generativelanguage.googleapis.com).
	BaseURL string

	// Model is the generation model to use (default: gemini-2.0-flash).
	Model string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration
}

// Client calls the Generative Language API over raw HTTP.
type Client struct {
	client  *http.Client
	baseURL string
	model   string
	key     driven.CredentialSource
}

// generateRequest is the generateContent request format.
type generateRequest struct {
	Contents []content `json:"contents"`
}

// content is a single conversation turn.
type content struct {
	Parts []part `json:"parts"`
}

// part is one piece of turn content.
type part struct {
	Text string `json:"text"`
}

// generateResponse is the generateContent response format.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// listModelsResponse is the models listing response format.
type listModelsResponse struct {
	Models []struct {
		Name                       string   `json:"name"`
		DisplayName                string   `json:"displayName"`
		Description                string   `json:"description"`
		SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
	} `json:"models"`
}

// NewClient creates a new Gemini client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Key == nil {
		return nil, fmt.Errorf("gemini: credential source is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		key:     cfg.Key,
	}, nil
}

// Generate sends the prompt as the sole content of a single-turn
// generateContent request and returns the first candidate's text.
//
// Status mapping: 404 wraps domain.ErrModelNotFound, 429 wraps
// domain.ErrRateLimited, any other non-success status becomes an
// *domain.UpstreamStatusError carrying the raw status and body. A success
// response without text wraps domain.ErrNoTextInResponse. No retries.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf(
		"%s/v1beta/models/%s:generateContent?key=%s",
		c.baseURL, c.model, url.QueryEscape(c.key()),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	logger.Debug("gemini: sending generateContent request to model %s", c.model)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			body = []byte("failed to read response body")
		}
		logger.Warn("gemini: upstream returned status %d: %s", resp.StatusCode, string(body))

		switch resp.StatusCode {
		case http.StatusNotFound:
			return "", fmt.Errorf("%w: %s", domain.ErrModelNotFound, string(body))
		case http.StatusTooManyRequests:
			return "", fmt.Errorf("%w: %s", domain.ErrRateLimited, string(body))
		default:
			return "", &domain.UpstreamStatusError{
				StatusCode: resp.StatusCode,
				Body:       string(body),
			}
		}
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	text := extractText(genResp)
	if text == "" {
		logger.Warn("gemini: success response carried no text")
		return "", fmt.Errorf("gemini: %w", domain.ErrNoTextInResponse)
	}

	return text, nil
}

// extractText pulls candidates[0].content.parts[0].text from the response.
func extractText(resp generateResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return ""
	}
	return parts[0].Text
}

// ListModels enumerates the models the configured key can access.
func (c *Client) ListModels(ctx context.Context) ([]driven.ModelInfo, error) {
	endpoint := fmt.Sprintf("%s/v1beta/models?key=%s", c.baseURL, url.QueryEscape(c.key()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, fmt.Errorf("gemini: API returned status %d (failed to read body: %w)", resp.StatusCode, readErr)
		}
		return nil, &domain.UpstreamStatusError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var listResp listModelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	models := make([]driven.ModelInfo, len(listResp.Models))
	for i, m := range listResp.Models {
		models[i] = driven.ModelInfo{
			Name:             m.Name,
			DisplayName:      m.DisplayName,
			Description:      m.Description,
			SupportedMethods: m.SupportedGenerationMethods,
		}
	}
	return models, nil
}

// Ping validates connectivity and the credential by listing models.
// This is a lightweight check that does not run inference.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.ListModels(ctx); err != nil {
		return fmt.Errorf("gemini: ping failed: %w", err)
	}
	return nil
}

// ModelName returns the generation model identifier in use.
func (c *Client) ModelName() string {
	return c.model
}
