// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"errors"
	"strings"
	"testing"

	"github.com/pdiddy/lexiscan/pkg/types"
)

// fakeExtractor returns canned text or a canned error.
type fakeExtractor struct {
	text  string
	err   error
	calls int
}

func (f *fakeExtractor) Text(string) (string, error) {
	f.calls++
	return f.text, f.err
}

func TestHybridPrimarySucceeds(t *testing.T) {
	primary := &fakeExtractor{text: "embedded text layer"}
	ocr := &fakeExtractor{text: "ocr text"}
	h := &Hybrid{primary: primary, fallback: ocr}

	got, err := h.Text("doc.pdf")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "embedded text layer" {
		t.Errorf("text = %q, want primary output", got)
	}
	if ocr.calls != 0 {
		t.Errorf("OCR ran %d times, want 0", ocr.calls)
	}
}

func TestHybridFallsBackOnBlankText(t *testing.T) {
	primary := &fakeExtractor{text: "  \n "}
	ocr := &fakeExtractor{text: "scanned content"}
	h := &Hybrid{primary: primary, fallback: ocr}

	got, err := h.Text("scan.pdf")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "scanned content" {
		t.Errorf("text = %q, want OCR output", got)
	}
}

func TestHybridFallsBackOnPrimaryError(t *testing.T) {
	primary := &fakeExtractor{err: errors.New("corrupt xref table")}
	ocr := &fakeExtractor{text: "scanned content"}
	h := &Hybrid{primary: primary, fallback: ocr}

	got, err := h.Text("scan.pdf")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "scanned content" {
		t.Errorf("text = %q, want OCR output", got)
	}
}

func TestHybridNoFallbackPropagates(t *testing.T) {
	primary := &fakeExtractor{err: errors.New("corrupt xref table")}
	h := &Hybrid{primary: primary}

	if _, err := h.Text("doc.pdf"); err == nil {
		t.Fatal("want error when primary fails and no fallback is configured")
	}
}

func TestHybridBothStagesBlank(t *testing.T) {
	primary := &fakeExtractor{text: ""}
	ocr := &fakeExtractor{text: "   "}
	h := &Hybrid{primary: primary, fallback: ocr}

	got, err := h.Text("blank.pdf")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if strings.TrimSpace(got) != "" {
		t.Errorf("text = %q, want blank (no-content decision is the caller's)", got)
	}
}

func TestHybridOCRErrorWrapsBoth(t *testing.T) {
	primary := &fakeExtractor{err: errors.New("corrupt xref table")}
	ocr := &fakeExtractor{err: errors.New("tesseract not found")}
	h := &Hybrid{primary: primary, fallback: ocr}

	_, err := h.Text("doc.pdf")
	if err == nil {
		t.Fatal("want error")
	}
	for _, want := range []string{"corrupt xref table", "tesseract not found"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing cause %q", err, want)
		}
	}
}

func TestNewHybridConfig(t *testing.T) {
	h, err := NewHybrid(types.PDFTextConfig{Backend: types.BackendNative, OCREnabled: true})
	if err != nil {
		t.Fatalf("NewHybrid: %v", err)
	}
	if h.fallback == nil {
		t.Error("fallback = nil, want OCR extractor when enabled")
	}

	h, err = NewHybrid(types.PDFTextConfig{})
	if err != nil {
		t.Fatalf("NewHybrid defaults: %v", err)
	}
	if h.fallback != nil {
		t.Error("fallback configured without OCREnabled")
	}

	if _, err := NewHybrid(types.PDFTextConfig{Backend: "ghostscript"}); err == nil {
		t.Error("want error for unknown backend")
	}
}
