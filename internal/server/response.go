// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import "github.com/gin-gonic/gin"

// errorBody is the JSON envelope for failed requests. Successful
// extraction responses are returned bare, not wrapped.
type errorBody struct {
	Error string `json:"error"`
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, errorBody{Error: msg})
}
