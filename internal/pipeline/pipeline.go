// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline composes text extraction, sentence segmentation, entity
// recognition, and the extraction engine into a single document run. The
// server, the folder watcher, and the CLI all go through it.
package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdiddy/lexiscan/internal/engine"
	"github.com/pdiddy/lexiscan/internal/pdftext"
	"github.com/pdiddy/lexiscan/internal/recognizer"
	"github.com/pdiddy/lexiscan/internal/segment"
	"github.com/pdiddy/lexiscan/pkg/types"
)

// Pipeline holds the per-process collaborators. Build it once at startup
// and share it across requests; both fields are safe for concurrent use.
type Pipeline struct {
	Extractor  pdftext.Extractor
	Recognizer recognizer.Recognizer
}

// New builds a pipeline from configuration.
func New(cfg types.PipelineConfig) (*Pipeline, error) {
	ext, err := pdftext.NewHybrid(cfg.PDFText)
	if err != nil {
		return nil, fmt.Errorf("building text extractor: %w", err)
	}

	rec, err := recognizer.New(cfg.Recognizer)
	if err != nil {
		return nil, fmt.Errorf("building recognizer: %w", err)
	}

	return &Pipeline{Extractor: ext, Recognizer: rec}, nil
}

// RunFile extracts text from the PDF at path and runs the full pipeline.
// The returned record has no ID or timestamp; the store assigns those on
// save. A document with no extractable text returns engine.ErrNoContent.
func (p *Pipeline) RunFile(ctx context.Context, path string) (*types.DocumentRecord, error) {
	text, err := p.Extractor.Text(path)
	if err != nil {
		return nil, fmt.Errorf("extracting text from %s: %w", path, err)
	}

	rec, err := p.RunText(ctx, text, nil)
	if err != nil {
		return nil, err
	}
	rec.Filename = filepath.Base(path)
	return rec, nil
}

// RunText runs segmentation, recognition, and extraction over already
// extracted text. When spans is nil the configured recognizer supplies
// them; pass a non-nil (possibly empty) slice to skip recognition.
func (p *Pipeline) RunText(ctx context.Context, fullText string, spans []types.EntitySpan) (*types.DocumentRecord, error) {
	if strings.TrimSpace(fullText) == "" {
		return nil, engine.ErrNoContent
	}

	if spans == nil {
		recognized, err := p.Recognizer.Recognize(ctx, fullText)
		if err != nil {
			return nil, fmt.Errorf("recognizing entities: %w", err)
		}
		spans = recognized
	}

	resp, err := engine.Extract(fullText, segment.Split(fullText), spans)
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256([]byte(fullText))
	return &types.DocumentRecord{
		SHA256:     hex.EncodeToString(sum[:]),
		TextLength: len(fullText),
		Response:   resp,
	}, nil
}
