// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"fmt"
	"strings"

	"github.com/dslipak/pdf"
)

// NativeExtractor reads the embedded text layer of a PDF directly, without
// external tools. Scanned documents have no text layer and come back blank.
type NativeExtractor struct{}

// Text extracts the plain text of every page, joined with newlines. Pages
// whose content streams cannot be decoded are skipped rather than failing
// the document.
func (n *NativeExtractor) Text(path string) (string, error) {
	r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", path, err)
	}

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		if text != "" {
			pages = append(pages, text)
		}
	}

	return strings.Join(pages, "\n"), nil
}
