// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package watch processes PDFs dropped into a directory. Filesystem
// notifications pick up new files immediately; a periodic rescan catches
// anything the notifications missed.
package watch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/lexiscan/internal/engine"
	"github.com/pdiddy/lexiscan/internal/pipeline"
	"github.com/pdiddy/lexiscan/internal/store"
	"github.com/pdiddy/lexiscan/pkg/types"
)

const defaultRescanInterval = 5 * time.Second

// Watcher processes each new PDF in a directory exactly once: pipeline run,
// archive save, YAML sidecar. Failures are reported per file and the loop
// continues.
type Watcher struct {
	cfg   types.WatchConfig
	pipe  *pipeline.Pipeline
	store *store.Store
	out   io.Writer
	seen  map[string]bool
}

// New builds a Watcher. Progress and per-file errors are written to out.
func New(cfg types.WatchConfig, pipe *pipeline.Pipeline, st *store.Store, out io.Writer) *Watcher {
	if cfg.RescanInterval <= 0 {
		cfg.RescanInterval = defaultRescanInterval
	}
	if cfg.ResultsDir == "" {
		cfg.ResultsDir = cfg.Dir
	}
	return &Watcher{
		cfg:   cfg,
		pipe:  pipe,
		store: st,
		out:   out,
		seen:  make(map[string]bool),
	}
}

// Run watches until the context is cancelled. Files already in the
// directory are processed before the first notification arrives.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.cfg.Dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.cfg.Dir, err)
	}

	w.scan(ctx)

	ticker := time.NewTicker(w.cfg.RescanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename) {
				if isPDF(ev.Name) {
					w.process(ctx, ev.Name)
				}
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(w.out, "warning: watch error: %v\n", err)

		case <-ticker.C:
			w.scan(ctx)
		}
	}
}

// Scan processes every unseen PDF currently in the directory. Run calls it
// on startup and on each rescan tick; it is exported for one-shot use.
func (w *Watcher) Scan(ctx context.Context) {
	w.scan(ctx)
}

func (w *Watcher) scan(ctx context.Context) {
	entries, err := os.ReadDir(w.cfg.Dir)
	if err != nil {
		fmt.Fprintf(w.out, "warning: reading %s: %v\n", w.cfg.Dir, err)
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || !isPDF(entry.Name()) {
			continue
		}
		select {
		case <-ctx.Done():
			return
		default:
		}
		w.process(ctx, filepath.Join(w.cfg.Dir, entry.Name()))
	}
}

func (w *Watcher) process(ctx context.Context, path string) {
	if w.seen[path] {
		return
	}
	w.seen[path] = true

	name := filepath.Base(path)

	rec, err := w.pipe.RunFile(ctx, path)
	if err != nil {
		fmt.Fprintf(w.out, "failed  %s: %v\n", name, err)
		return
	}

	if err := w.store.Save(ctx, rec); err != nil {
		fmt.Fprintf(w.out, "failed  %s: archiving: %v\n", name, err)
		return
	}

	if warning := engine.CheckDateOrder(rec.Response.Dates); warning != "" {
		fmt.Fprintf(w.out, "warning %s: %s\n", name, warning)
	}

	if err := w.writeSidecar(name, rec); err != nil {
		fmt.Fprintf(w.out, "warning %s: %v\n", name, err)
	}

	fmt.Fprintf(w.out, "processed %s (%d parties, %d dates)\n",
		name, len(rec.Response.Parties), len(rec.Response.Dates))
}

func (w *Watcher) writeSidecar(name string, rec *types.DocumentRecord) error {
	if err := os.MkdirAll(w.cfg.ResultsDir, 0o755); err != nil {
		return fmt.Errorf("creating results directory: %w", err)
	}

	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	out := filepath.Join(w.cfg.ResultsDir, strings.TrimSuffix(name, filepath.Ext(name))+".yaml")
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}

func isPDF(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}
