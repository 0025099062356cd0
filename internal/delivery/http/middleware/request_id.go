package middleware

import (
	"portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxRequestIDLength = 128

// RequestID reuses a sane incoming X-Request-ID or generates a new UUID,
// stores it in the context and echoes it in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(domain.RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength || !printableASCII(id) {
			id = uuid.NewString()
		}

		c.Set(string(domain.KeyRequestID), id)
		c.Header(domain.RequestIDHeader, id)
		c.Next()
	}
}

func printableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x21 || s[i] > 0x7e {
			return false
		}
	}
	return true
}
