package middleware

import (
	"errors"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

// errorPayload is the machine-readable part of an error response
type errorPayload struct {
	Field   string                 `json:"field,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			var payload interface{}
			if appErr.Field != "" || appErr.Details != nil {
				payload = errorPayload{Field: appErr.Field, Details: appErr.Details}
			}
			if appErr.Err != nil {
				logger.Log.Error("Request failed", "error", appErr.Err, "path", c.FullPath())
			}
			response.Error(c, appErr.Code, appErr.Message, payload)
			return
		}

		// Never expose internal error details to clients. Log server-side
		// and send a generic message.
		logger.Log.Error("Unhandled error", "error", err, "path", c.FullPath())
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
