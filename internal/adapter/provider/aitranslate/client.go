// Package aitranslate is the HTTP client for the machine-translation
// service. The response payload is opaque and untrusted: callers must run
// it through the import validator before persisting anything.
package aitranslate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/ordbog-backend/internal/config"
	"github.com/heartmarshall/ordbog-backend/internal/provider"
)

// Client fetches translated word data from the translation service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client from TranslateConfig.
func NewClient(cfg config.TranslateConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		log:        logger.With("adapter", "aitranslate"),
	}
}

// FetchTranslation requests translations for one source word.
// Returns nil, nil if the service has no translation for the word (HTTP 404).
func (c *Client) FetchTranslation(ctx context.Context, req provider.TranslationRequest) (*provider.TranslatedWordPayload, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("aitranslate: marshal request: %w", err)
	}

	c.log.DebugContext(ctx, "translation request",
		slog.String("word", req.WordText),
		slog.Int("definitions", len(req.Definitions)),
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/translate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("aitranslate: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.doWithRetry(ctx, httpReq, req.WordText, body)
	if err != nil {
		c.log.ErrorContext(ctx, "translation request failed",
			slog.String("word", req.WordText), slog.String("error", err.Error()))
		return nil, fmt.Errorf("aitranslate: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("aitranslate: unexpected status %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("aitranslate: read body: %w", err)
	}

	var payload provider.TranslatedWordPayload
	if err := json.Unmarshal(respBody, &payload); err != nil {
		return nil, fmt.Errorf("aitranslate: decode json: %w", err)
	}

	c.log.DebugContext(ctx, "translation response",
		slog.String("word", req.WordText),
		slog.String("translated", payload.EnglishWordData.Word),
		slog.Int("definitions", len(payload.EnglishWordData.Definitions)),
	)

	return &payload, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, word string, body []byte) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "aitranslate retry", slog.String("word", word), slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	// The body reader was consumed by the first attempt.
	retryReq := req.Clone(ctx)
	retryReq.Body = io.NopCloser(bytes.NewReader(body))

	return c.httpClient.Do(retryReq)
}
