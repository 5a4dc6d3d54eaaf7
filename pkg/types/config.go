// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "lexiscan/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// PDFTextBackend identifies the PDF text extraction tool.
type PDFTextBackend string

const (
	BackendNative    PDFTextBackend = "native"
	BackendPdftotext PDFTextBackend = "pdftotext"
)

// PDFTextConfig holds settings for the PDF text extraction stage.
type PDFTextConfig struct {
	// Backend selects the primary extraction tool: native or pdftotext.
	Backend PDFTextBackend `json:"backend" yaml:"backend"`

	// OCREnabled controls whether scanned documents fall back to OCR when
	// the primary backend yields no text.
	OCREnabled bool `json:"ocr_enabled" yaml:"ocr_enabled"`

	// OCRDPI is the render resolution for OCR page images (default 200).
	OCRDPI int `json:"ocr_dpi" yaml:"ocr_dpi"`
}

// RecognizerBackend identifies the entity recognition source.
type RecognizerBackend string

const (
	RecognizerHTTP    RecognizerBackend = "http"
	RecognizerPattern RecognizerBackend = "pattern"
	RecognizerNone    RecognizerBackend = "none"
)

// RecognizerConfig holds settings for the entity recognition collaborator.
type RecognizerConfig struct {
	HTTPConfig `yaml:",inline"`

	// Backend selects the span source: http, pattern, or none.
	Backend RecognizerBackend `json:"backend" yaml:"backend"`

	// Endpoint is the model server URL for the http backend.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`

	// APIKey authenticates against the model server, when required.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts for rate-limited calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// StoreConfig holds settings for the extraction archive.
type StoreConfig struct {
	// Path is the SQLite database file (default "lexiscan.db").
	Path string `json:"path" yaml:"path"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ServerConfig holds settings for the HTTP adapter.
type ServerConfig struct {
	// Addr is the listen address (default ":8000").
	Addr string `json:"addr" yaml:"addr"`

	// MaxUploadBytes caps the accepted PDF upload size (default 32 MiB).
	MaxUploadBytes int64 `json:"max_upload_bytes" yaml:"max_upload_bytes"`
}

// WatchConfig holds settings for the folder watcher adapter.
type WatchConfig struct {
	// Dir is the directory scanned for incoming PDFs.
	Dir string `json:"dir" yaml:"dir"`

	// RescanInterval is the periodic full-rescan interval backing up the
	// filesystem notifications (default 5s).
	RescanInterval time.Duration `json:"rescan_interval" yaml:"rescan_interval"`

	// ResultsDir receives the YAML result sidecars. Empty means alongside
	// the source PDFs.
	ResultsDir string `json:"results_dir,omitempty" yaml:"results_dir,omitempty"`
}

// PipelineConfig groups all component configurations.
type PipelineConfig struct {
	PDFText    PDFTextConfig    `json:"pdftext" yaml:"pdftext"`
	Recognizer RecognizerConfig `json:"recognizer" yaml:"recognizer"`
	Store      StoreConfig      `json:"store" yaml:"store"`
	Server     ServerConfig     `json:"server" yaml:"server"`
	Watch      WatchConfig      `json:"watch" yaml:"watch"`
}
