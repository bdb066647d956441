package response

import (
	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON response. Exactly one of Message/Error
// is set depending on Success; Details carries per-field validation messages.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Success: true,
		Message: message,
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, details interface{}) {
	c.JSON(code, Response{
		Success: false,
		Error:   message,
		Details: details,
	})
}
