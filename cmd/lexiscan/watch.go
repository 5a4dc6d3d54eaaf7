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
	"github.com/pdiddy/lexiscan/internal/store"
	"github.com/pdiddy/lexiscan/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Process PDFs dropped into a directory",
	Long: `Watch monitors a directory and runs the extraction pipeline over every
new PDF exactly once. Results go to the archive store and to a YAML
sidecar next to each document (or under --results-dir). Files already in
the directory are processed on startup; a periodic rescan backs up the
filesystem notifications.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().String("results-dir", "", "directory for YAML result sidecars")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		viper.Set("watch.dir", args[0])
	}
	if resultsDir, _ := cmd.Flags().GetString("results-dir"); resultsDir != "" {
		viper.Set("watch.results_dir", resultsDir)
	}

	cfg := pipelineConfig()
	if cfg.Watch.Dir == "" {
		return fmt.Errorf("a directory argument or watch.dir config is required")
	}

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

	fmt.Fprintf(os.Stderr, "watching %s\n", cfg.Watch.Dir)
	return watch.New(cfg.Watch, pipe, st, os.Stdout).Run(ctx)
}
