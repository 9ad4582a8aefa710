package utils

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// APIError is the standardized failure carried by the response envelope.
type APIError struct {
	StatusCode int    // HTTP status code, not part of the body
	Code       string // Application-specific error code
	Message    string
	Details    string
}

// NewAPIError creates a new APIError instance
func NewAPIError(statusCode int, code string, message string, details string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
		Details:    details,
	}
}

func (e *APIError) Error() string {
	return e.Message
}

// RespondWithError sends the failure envelope {success:false, error, code}.
func RespondWithError(c *gin.Context, err *APIError) {
	body := gin.H{
		"success": false,
		"error":   err.Message,
	}
	if err.Code != "" {
		body["code"] = err.Code
	}
	if gin.IsDebugging() && err.Details != "" {
		body["details"] = err.Details
	}
	c.JSON(err.StatusCode, body)
	c.Abort() // Abort further processing if it's a middleware or critical error
}

// RespondWithData sends the success envelope. Extra keys (count, message, ...) are merged in.
func RespondWithData(c *gin.Context, status int, data interface{}, extra ...gin.H) {
	body := gin.H{
		"success": true,
		"data":    data,
	}
	for _, e := range extra {
		for k, v := range e {
			body[k] = v
		}
	}
	c.JSON(status, body)
}

// Common Error Constants
const (
	ErrCodeBadRequest          = "BAD_REQUEST"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeConflict            = "CONFLICT"
	ErrCodeTooManyRequests     = "TOO_MANY_REQUESTS"
	ErrCodeInternalServerError = "INTERNAL_SERVER_ERROR"
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
)

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// RespondValidationFailed returns a standard validation error.
func RespondValidationFailed(c *gin.Context, message, details string) {
	RespondWithError(c, NewAPIError(http.StatusBadRequest, ErrCodeValidationFailed, message, details))
}
