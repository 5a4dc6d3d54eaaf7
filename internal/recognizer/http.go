// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recognizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pdiddy/lexiscan/internal/httputil"
	"github.com/pdiddy/lexiscan/pkg/types"
)

const defaultRecognizeTimeout = 60 * time.Second

// HTTP calls a remote NER model server. The server accepts the document
// text as JSON and returns the recognized spans; rate-limited calls are
// retried with backoff.
type HTTP struct {
	endpoint   string
	apiKey     string
	userAgent  string
	maxRetries int
	client     *http.Client
}

// NewHTTP creates the remote-model recognizer.
func NewHTTP(cfg types.RecognizerConfig) (*HTTP, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("recognizer endpoint not configured")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultRecognizeTimeout
	}

	return &HTTP{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		userAgent:  cfg.UserAgent,
		maxRetries: cfg.MaxRetries,
		client:     &http.Client{Timeout: timeout},
	}, nil
}

// recognizeRequest is the model server's input document.
type recognizeRequest struct {
	Text string `json:"text"`
}

// recognizeResponse is the model server's span list.
type recognizeResponse struct {
	Entities []types.EntitySpan `json:"entities"`
}

// Recognize posts the document text to the model server and decodes the
// spans. A non-200 status is a recognizer failure, surfaced to the caller
// with the server's message.
func (h *HTTP) Recognize(ctx context.Context, fullText string) ([]types.EntitySpan, error) {
	body, err := json.Marshal(recognizeRequest{Text: fullText})
	if err != nil {
		return nil, fmt.Errorf("encoding recognize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building recognize request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if h.userAgent != "" {
		req.Header.Set("User-Agent", h.userAgent)
	}
	if h.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+h.apiKey)
	}

	resp, err := httputil.DoWithRetry(ctx, h.client, req, h.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("calling model server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("model server returned %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	var decoded recognizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding model server response: %w", err)
	}

	return decoded.Entities, nil
}
