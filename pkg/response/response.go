package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/smart-timetable/dashboard-api/pkg/errors"
)

// SourceHeader tells consumers which backend served a read: remote, local,
// or cache (stale last-known-good copy).
const SourceHeader = "X-Data-Source"

// Envelope is the wire contract shared with the scheduling service.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// JSON sends a success envelope with the given status and payload.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, Envelope{Success: true, Data: data})
}

// OK responds with HTTP 200 and a data payload.
func OK(c *gin.Context, data interface{}) {
	JSON(c, http.StatusOK, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Success responds with a bare success envelope, the shape the scheduling
// service uses for deletes and publishes.
func Success(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(http.StatusOK, Envelope{Success: true})
}

// WithMessage responds with a payload and an informational message.
func WithMessage(c *gin.Context, data interface{}, message string) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Message: message})
}

// Error sends a failure envelope carrying the error message and its HTTP
// status.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, Envelope{Error: appErr.Message})
}

// WithSource records which backend satisfied the read.
func WithSource(c *gin.Context, source string) {
	if source != "" {
		c.Header(SourceHeader, source)
	}
}
