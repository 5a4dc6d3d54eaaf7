// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/lexiscan/internal/pipeline"
	"github.com/pdiddy/lexiscan/internal/server"
	"github.com/pdiddy/lexiscan/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the extraction pipeline over HTTP",
	Long: `Serve exposes the extraction pipeline as an HTTP service: POST /extract
accepts a multipart PDF upload, POST /extract/text accepts pre-extracted
text, and GET /extractions queries the archive. The service runs until
interrupted and shuts down gracefully.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8000)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		viper.Set("server.addr", addr)
	}

	cfg := pipelineConfig()

	pipe, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	st, err := store.NewStore(cfg.Store)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stderr, "listening on %s\n", cfg.Server.Addr)
	return server.New(cfg.Server, pipe, st).Run(ctx)
}
