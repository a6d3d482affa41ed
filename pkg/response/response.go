package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/suraksha-health/training-portal-api/pkg/errors"
)

// ErrorEnvelope is the failure contract shared by every endpoint. The error
// string is surfaced to clients verbatim.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
}

// MessageEnvelope is the success contract for mutation endpoints. Mutations
// deliberately return no row payload: clients refetch the collection instead
// of patching local state.
type MessageEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// OK sends a success payload. The payload struct carries its own success flag
// and collection key so the wire shape matches the documented contract.
func OK(c *gin.Context, payload interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, payload)
}

// Message sends a plain success acknowledgement.
func Message(c *gin.Context, message string) {
	OK(c, MessageEnvelope{Success: true, Message: message})
}

// Created sends a 201 acknowledgement.
func Created(c *gin.Context, message string) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusCreated, MessageEnvelope{Success: true, Message: message})
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, ErrorEnvelope{Success: false, Error: appErr.Message, Code: appErr.Code})
}
