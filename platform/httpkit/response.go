// Package httpkit provides HTTP response utilities.
// This is part of the platform layer and contains no business logic.
package httpkit

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AckResponse is the standard acknowledgment body returned to webhook callers.
type AckResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// JSON sends a JSON response with the given status code.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK sends a 200 OK response with the given payload.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Ack sends a 200 OK acknowledgment with the given message.
func Ack(c *gin.Context, message string) {
	c.JSON(http.StatusOK, AckResponse{OK: true, Message: message})
}
