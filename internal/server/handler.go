// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/lexiscan/internal/engine"
	"github.com/pdiddy/lexiscan/internal/pipeline"
	"github.com/pdiddy/lexiscan/internal/store"
	"github.com/pdiddy/lexiscan/pkg/types"
)

// Handler serves the extraction endpoints. The pipeline is shared across
// requests; the store archives every successful extraction.
type Handler struct {
	pipe  *pipeline.Pipeline
	store *store.Store
}

// NewHandler builds a Handler around a pipeline and an archive store.
func NewHandler(pipe *pipeline.Pipeline, st *store.Store) *Handler {
	return &Handler{pipe: pipe, store: st}
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// textRequest is the body for POST /extract/text: pre-extracted document
// text plus optional entity spans from an external recognition run.
type textRequest struct {
	FullText    string             `json:"full_text"`
	EntitySpans []types.EntitySpan `json:"entity_spans"`
}

// Extract handles POST /extract: a multipart PDF upload under the "file"
// field, run through the full pipeline. The response body is the
// extraction result; the archive ID travels in the X-Document-ID header.
func (h *Handler) Extract(c *gin.Context) {
	upload, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, "missing multipart file field 'file'")
		return
	}

	tmp, err := os.CreateTemp("", "lexiscan-upload-*.pdf")
	if err != nil {
		fail(c, http.StatusInternalServerError, fmt.Sprintf("staging upload: %v", err))
		return
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveUploadedFile(upload, tmpPath); err != nil {
		fail(c, http.StatusInternalServerError, fmt.Sprintf("staging upload: %v", err))
		return
	}

	rec, err := h.pipe.RunFile(c.Request.Context(), tmpPath)
	if err != nil {
		writePipelineError(c, err)
		return
	}
	rec.Filename = filepath.Base(upload.Filename)

	h.finish(c, rec)
}

// ExtractText handles POST /extract/text for callers that already have the
// document text. A non-null entity_spans list bypasses the recognizer.
func (h *Handler) ExtractText(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, fmt.Sprintf("decoding request: %v", err))
		return
	}

	rec, err := h.pipe.RunText(c.Request.Context(), req.FullText, req.EntitySpans)
	if err != nil {
		writePipelineError(c, err)
		return
	}

	h.finish(c, rec)
}

func (h *Handler) finish(c *gin.Context, rec *types.DocumentRecord) {
	if err := h.store.Save(c.Request.Context(), rec); err != nil {
		fail(c, http.StatusInternalServerError, fmt.Sprintf("archiving result: %v", err))
		return
	}

	c.Header("X-Document-ID", rec.ID)
	c.JSON(http.StatusOK, rec.Response)
}

// ListExtractions handles GET /extractions with optional ?limit= and
// ?party= filters.
func (h *Handler) ListExtractions(c *gin.Context) {
	if party := c.Query("party"); party != "" {
		records, err := h.store.FindByParty(c.Request.Context(), party)
		if err != nil {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusOK, records)
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fail(c, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	records, err := h.store.List(c.Request.Context(), limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	if records == nil {
		records = []*types.DocumentRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// GetExtraction handles GET /extractions/:id.
func (h *Handler) GetExtraction(c *gin.Context) {
	rec, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, err.Error())
		return
	}
	c.JSON(http.StatusOK, rec)
}

// writePipelineError maps pipeline failures to HTTP statuses: a document
// with no extractable text is a client error, everything else is a fault.
func writePipelineError(c *gin.Context, err error) {
	if errors.Is(err, engine.ErrNoContent) {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	fail(c, http.StatusInternalServerError, err.Error())
}
