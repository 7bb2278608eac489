package middleware

import (
	"errors"
	"net/http"

	"go-jobmarket-backend/internal/delivery/http/response"
	"go-jobmarket-backend/pkg/apperror"
	"go-jobmarket-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler maps errors pushed with c.Error to the JSON envelope. Typed
// AppErrors keep their status and message; anything else is logged server-side
// and surfaced as a generic 500 so internals are never leaked.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Err != nil {
					logger.Log.Error("request failed",
						"status", appErr.Code,
						"path", c.FullPath(),
						"error", appErr.Err)
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				logger.Log.Error("unhandled error", "path", c.FullPath(), "error", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
