package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"menuboard/internal/apperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error a handler attached with c.Error.
// Errors that are not *apperr.Error become a generic 500.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			c.JSON(appErr.Status, appErr)
			return
		}

		if logger != nil {
			logger.Error("unhandled request error",
				"path", c.FullPath(),
				"error", err,
			)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
