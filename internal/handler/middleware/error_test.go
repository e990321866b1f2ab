//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/handler/httperr"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/handler/middleware"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestErrorHandlerLogsServerErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("aborted 500 is logged with its cause and stack", func(t *testing.T) {
		logs := captureLogs(t)

		engine := gin.New()
		engine.Use(middleware.ErrorHandler())
		engine.GET("/boom", func(c *gin.Context) {
			cause := errs.New("sequence allocation failed")
			httperr.AbortWithError(c, http.StatusInternalServerError, cause, "Internal server error", nil)
		})

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, logs.String(), "request failed")
		assert.Contains(t, logs.String(), "sequence allocation failed")
		assert.Contains(t, logs.String(), "stack=")
	})

	t.Run("client errors stay out of the error log", func(t *testing.T) {
		logs := captureLogs(t)

		engine := gin.New()
		engine.Use(middleware.ErrorHandler())
		engine.GET("/missing", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusNotFound, errs.New("booking not found"), "Booking not found", nil)
		})

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.NotContains(t, logs.String(), "request failed")
	})
}
