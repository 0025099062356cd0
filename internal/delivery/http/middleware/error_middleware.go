package middleware

import (
	"errors"
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// GenericErrorMessage is sent for any error that is not an *apperror.AppError.
const GenericErrorMessage = "An unexpected error occurred. Please try again later."

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		reqID := c.GetString(string(domain.KeyRequestID))

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				// The cause stays server-side; only Message reaches the client.
				logger.Log.Error("request failed",
					"request_id", reqID,
					"path", c.FullPath(),
					"status", appErr.Code,
					"error", appErr.Err,
				)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		logger.Log.Error("internal server error",
			"request_id", reqID,
			"path", c.FullPath(),
			"error", err,
		)
		response.Error(c, http.StatusInternalServerError, GenericErrorMessage, nil)
	}
}
