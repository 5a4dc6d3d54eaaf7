// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const defaultOCRDPI = 200

// runner abstracts command execution for testing.
type runner interface {
	LookPath(file string) (string, error)
	Output(name string, args ...string) ([]byte, error)
	Run(name string, args ...string) error
}

// osRunner is the production runner backed by os/exec.
type osRunner struct{}

func (o *osRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osRunner) Output(name string, args ...string) ([]byte, error) {
	var out bytes.Buffer
	var stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %v: %s", name, err, strings.TrimSpace(stderr.String()))
	}
	return out.Bytes(), nil
}

func (o *osRunner) Run(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// PdftotextExtractor shells out to the poppler pdftotext tool.
type PdftotextExtractor struct {
	exec runner
}

// NewPdftotextExtractor creates the pdftotext-backed extractor.
func NewPdftotextExtractor() *PdftotextExtractor {
	return &PdftotextExtractor{exec: &osRunner{}}
}

// Text runs pdftotext with stdout output.
func (p *PdftotextExtractor) Text(path string) (string, error) {
	if _, err := p.exec.LookPath("pdftotext"); err != nil {
		return "", fmt.Errorf("pdftotext not found on PATH: %w", err)
	}
	out, err := p.exec.Output("pdftotext", path, "-")
	if err != nil {
		return "", fmt.Errorf("extracting text from %s: %w", path, err)
	}
	return string(out), nil
}

// OCRExtractor renders PDF pages to images with pdftoppm and recognizes
// them with tesseract. Both tools must be on PATH.
type OCRExtractor struct {
	dpi  int
	exec runner
}

// NewOCRExtractor creates the OCR fallback extractor. A non-positive dpi
// selects the default render resolution.
func NewOCRExtractor(dpi int) *OCRExtractor {
	if dpi <= 0 {
		dpi = defaultOCRDPI
	}
	return &OCRExtractor{dpi: dpi, exec: &osRunner{}}
}

// Text renders every page at the configured resolution and concatenates
// the per-page OCR output with newlines.
func (o *OCRExtractor) Text(path string) (string, error) {
	for _, bin := range []string{"pdftoppm", "tesseract"} {
		if _, err := o.exec.LookPath(bin); err != nil {
			return "", fmt.Errorf("%s not found on PATH: %w", bin, err)
		}
	}

	tmpDir, err := os.MkdirTemp("", "lexiscan-ocr-")
	if err != nil {
		return "", fmt.Errorf("creating OCR work directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	if err := o.exec.Run("pdftoppm", "-r", strconv.Itoa(o.dpi), "-png", path, prefix); err != nil {
		return "", fmt.Errorf("rendering %s for OCR: %w", path, err)
	}

	images, err := filepath.Glob(prefix + "*.png")
	if err != nil {
		return "", fmt.Errorf("listing rendered pages: %w", err)
	}
	sort.Strings(images)

	var pages []string
	for _, img := range images {
		// --oem 3 --psm 6: default engine, uniform block of text.
		out, err := o.exec.Output("tesseract", img, "stdout", "--oem", "3", "--psm", "6")
		if err != nil {
			return "", fmt.Errorf("recognizing %s: %w", filepath.Base(img), err)
		}
		pages = append(pages, string(out))
	}

	return strings.Join(pages, "\n"), nil
}
