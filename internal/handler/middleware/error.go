package middleware

import (
	"log/slog"
	"net/http"

	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/handler/httperr"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// AbortWithError writes the envelope immediately, so the log pass
		// must run before the written guard below or server-side causes
		// would never reach the logs.
		logServerErrors(c)

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

// logServerErrors logs every 5xx cause on the context with a trimmed stack,
// regardless of whether the response has already been rendered.
func logServerErrors(c *gin.Context) {
	for _, err := range c.Errors {
		if !err.IsType(gin.ErrorTypePublic) {
			continue
		}
		resp, ok := err.Meta.(httperr.Response)
		if !ok || resp.Status < http.StatusInternalServerError {
			continue
		}
		slog.Error("request failed",
			"request_id", GetRequestID(c),
			"path", c.Request.URL.Path,
			"error", err.Err.Error(),
			"stack", errs.ExtractStackLines(err.Err, 5))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				resp := httperr.Response{
					Status: http.StatusInternalServerError,
					Error:  httperr.ErrorMessage{Message: "Internal server error"},
				}
				c.JSON(http.StatusInternalServerError, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}
