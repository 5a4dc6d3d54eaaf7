// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import "github.com/gin-gonic/gin"

// registerRoutes wires the extraction endpoints onto the engine.
func registerRoutes(r *gin.Engine, h *Handler) {
	r.GET("/", h.Health)
	r.POST("/extract", h.Extract)
	r.POST("/extract/text", h.ExtractText)

	extractions := r.Group("/extractions")
	{
		extractions.GET("", h.ListExtractions)
		extractions.GET("/:id", h.GetExtraction)
	}
}
