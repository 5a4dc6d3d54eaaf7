// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext implements PDF text extraction with pluggable backends
// and an OCR fallback for scanned documents. Native extraction reads the
// embedded text layer; when that yields nothing, the document is rendered
// to page images and run through tesseract.
package pdftext

import (
	"fmt"
	"strings"

	"github.com/pdiddy/lexiscan/pkg/types"
)

// Extractor produces the plain text of a PDF file. Different backends
// (native text layer, pdftotext, OCR) implement this interface.
type Extractor interface {
	// Text reads the PDF at path and returns its concatenated text.
	Text(path string) (string, error)
}

// Hybrid chains a primary extractor with an optional OCR fallback: the
// fallback runs only when the primary produces blank text, which is the
// signature of a scanned document. A blank result from both stages is
// returned as-is; deciding that blank text is an error belongs to the
// caller.
type Hybrid struct {
	primary  Extractor
	fallback Extractor
}

// NewHybrid builds the extraction chain for the given configuration.
func NewHybrid(cfg types.PDFTextConfig) (*Hybrid, error) {
	var primary Extractor
	switch cfg.Backend {
	case types.BackendNative, "":
		primary = &NativeExtractor{}
	case types.BackendPdftotext:
		primary = NewPdftotextExtractor()
	default:
		return nil, fmt.Errorf("unknown pdftext backend %q", cfg.Backend)
	}

	h := &Hybrid{primary: primary}
	if cfg.OCREnabled {
		h.fallback = NewOCRExtractor(cfg.OCRDPI)
	}
	return h, nil
}

// Text runs the extraction chain over one PDF.
func (h *Hybrid) Text(path string) (string, error) {
	text, err := h.primary.Text(path)
	if err == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}

	if h.fallback == nil {
		if err != nil {
			return "", err
		}
		return text, nil
	}

	ocrText, ocrErr := h.fallback.Text(path)
	if ocrErr != nil {
		if err != nil {
			return "", fmt.Errorf("native extraction failed (%v); OCR fallback: %w", err, ocrErr)
		}
		return "", fmt.Errorf("OCR fallback: %w", ocrErr)
	}
	return ocrText, nil
}
