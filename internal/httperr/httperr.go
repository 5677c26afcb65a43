package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CodeValidation = "validation_failed"
	CodeInternal   = "internal_error"

	internalMessage = "Internal server error"
)

type HTTPError struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Code    string   `json:"code,omitempty"`
	Details []string `json:"details,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Success: false,
		Error:   message,
		Code:    code,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

// Internal never exposes the underlying cause.
func Internal(c *gin.Context) {
	Write(c, http.StatusInternalServerError, CodeInternal, internalMessage)
}

func Unauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, HTTPError{
		Success: false,
		Error:   message,
		Code:    code,
	})
}

func ValidationFailed(c *gin.Context, details []string) {
	c.JSON(http.StatusBadRequest, HTTPError{
		Success: false,
		Error:   "Validation failed",
		Code:    CodeValidation,
		Details: details,
	})
}
