// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the extraction pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/lexiscan/internal/pipeline"
	"github.com/pdiddy/lexiscan/internal/store"
	"github.com/pdiddy/lexiscan/pkg/types"
)

const shutdownGrace = 10 * time.Second

// Server runs the HTTP adapter around a pipeline and a store.
type Server struct {
	cfg  types.ServerConfig
	http *http.Server
}

// New builds a Server. The gin engine runs in release mode; request
// logging stays on via gin's default logger middleware.
func New(cfg types.ServerConfig, pipe *pipeline.Pipeline, st *store.Store) *Server {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	if cfg.MaxUploadBytes > 0 {
		r.MaxMultipartMemory = cfg.MaxUploadBytes
	}

	registerRoutes(r, NewHandler(pipe, st))

	return &Server{
		cfg:  cfg,
		http: &http.Server{Addr: cfg.Addr, Handler: r},
	}
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving on %s: %w", s.cfg.Addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
