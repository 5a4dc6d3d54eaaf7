// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/lexiscan/pkg/types"
)

func init() {
	viper.SetDefault("pdftext.backend", string(types.BackendNative))
	viper.SetDefault("pdftext.ocr_enabled", true)
	viper.SetDefault("pdftext.ocr_dpi", 200)

	viper.SetDefault("recognizer.backend", string(types.RecognizerPattern))
	viper.SetDefault("recognizer.timeout", 60*time.Second)
	viper.SetDefault("recognizer.user_agent", "lexiscan/"+version)
	viper.SetDefault("recognizer.max_retries", 3)

	viper.SetDefault("store.path", "lexiscan.db")
	viper.SetDefault("store.max_results", 20)

	viper.SetDefault("server.addr", ":8000")
	viper.SetDefault("server.max_upload_bytes", int64(32<<20))

	viper.SetDefault("watch.rescan_interval", 5*time.Second)
}

// pipelineConfig resolves the full configuration from viper, with the
// recognizer API key falling back to the ner-api-key secret file.
func pipelineConfig() types.PipelineConfig {
	cfg := types.PipelineConfig{
		PDFText: types.PDFTextConfig{
			Backend:    types.PDFTextBackend(viper.GetString("pdftext.backend")),
			OCREnabled: viper.GetBool("pdftext.ocr_enabled"),
			OCRDPI:     viper.GetInt("pdftext.ocr_dpi"),
		},
		Recognizer: types.RecognizerConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("recognizer.timeout"),
				UserAgent: viper.GetString("recognizer.user_agent"),
			},
			Backend:    types.RecognizerBackend(viper.GetString("recognizer.backend")),
			Endpoint:   viper.GetString("recognizer.endpoint"),
			APIKey:     viper.GetString("recognizer.api_key"),
			MaxRetries: viper.GetInt("recognizer.max_retries"),
		},
		Store: types.StoreConfig{
			Path:       viper.GetString("store.path"),
			MaxResults: viper.GetInt("store.max_results"),
		},
		Server: types.ServerConfig{
			Addr:           viper.GetString("server.addr"),
			MaxUploadBytes: viper.GetInt64("server.max_upload_bytes"),
		},
		Watch: types.WatchConfig{
			Dir:            viper.GetString("watch.dir"),
			RescanInterval: viper.GetDuration("watch.rescan_interval"),
			ResultsDir:     viper.GetString("watch.results_dir"),
		},
	}

	cfg.Recognizer.APIKey = secretDefault("ner-api-key", cfg.Recognizer.APIKey)

	return cfg
}
