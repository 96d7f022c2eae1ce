package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/unisched/campus-api/pkg/errors"
)

// ErrorEnvelope wraps a typed error for the wire.
type ErrorEnvelope struct {
	Error *appErrors.Error `json:"error"`
}

// JSON writes the payload as-is. List endpoints pass a page envelope, single
// resource endpoints pass the DTO directly.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error normalises err into the common error envelope. Untyped errors are
// reported as a generic internal failure so storage detail stays server-side.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, ErrorEnvelope{Error: appErr})
}
