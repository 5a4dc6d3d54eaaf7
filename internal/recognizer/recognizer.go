// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package recognizer supplies entity spans to the extraction engine. The
// recognition model itself lives behind the Recognizer interface: a remote
// model server, a regex baseline, or nothing at all. Implementations are
// constructed once at startup and passed by reference into each extraction;
// the engine never depends on how or when they were initialized.
package recognizer

import (
	"context"
	"fmt"

	"github.com/pdiddy/lexiscan/pkg/types"
)

// Recognizer produces entity spans for a document's full text.
type Recognizer interface {
	// Recognize returns entity mentions in document order. An empty result
	// is valid: the engine's own regex party sources still run.
	Recognize(ctx context.Context, fullText string) ([]types.EntitySpan, error)
}

// Null is the no-model recognizer: it returns no spans.
type Null struct{}

// Recognize returns an empty span list.
func (Null) Recognize(context.Context, string) ([]types.EntitySpan, error) {
	return nil, nil
}

// New builds a recognizer from configuration.
func New(cfg types.RecognizerConfig) (Recognizer, error) {
	switch cfg.Backend {
	case types.RecognizerHTTP:
		return NewHTTP(cfg)
	case types.RecognizerPattern:
		return NewPattern(), nil
	case types.RecognizerNone, "":
		return Null{}, nil
	default:
		return nil, fmt.Errorf("unknown recognizer backend %q", cfg.Backend)
	}
}
