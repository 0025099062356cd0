package response

import (
	"portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON response
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Details   interface{} `json:"details,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error sends an error response. details is omitted when nil.
func Error(c *gin.Context, code int, message string, details interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Error:     message,
		Details:   details,
		RequestID: requestID(c),
	})
}

func requestID(c *gin.Context) string {
	return c.GetString(string(domain.KeyRequestID))
}
