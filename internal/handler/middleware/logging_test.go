//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"

	"courtmate-gateway/internal/handler/middleware"
	"courtmate-gateway/internal/pkg/config"
	"courtmate-gateway/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddleware_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	logger := middleware.NewLogger(config.LogConfig{Level: "error", TimeZone: "UTC", TimeFormat: "2006-01-02 15:04:05.000"})
	router := gin.New()
	router.Use(logger.LoggingMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("caller id is echoed", func(t *testing.T) {
		req := nethttptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-123")
		w := nethttptest.NewRecorder()
		router.ServeHTTP(w, req)

		httptest.AssertHeaders(t, w, map[string]string{middleware.RequestIDHeader: "req-123"})
		assert.Equal(t, "req-123", w.Body.String())
	})

	t.Run("missing or oversized id is replaced", func(t *testing.T) {
		for _, sent := range []string{"", strings.Repeat("x", 129)} {
			req := nethttptest.NewRequest(http.MethodGet, "/ping", nil)
			if sent != "" {
				req.Header.Set(middleware.RequestIDHeader, sent)
			}
			w := nethttptest.NewRecorder()
			router.ServeHTTP(w, req)

			got := w.Header().Get(middleware.RequestIDHeader)
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
			assert.Equal(t, got, w.Body.String())
		}
	})
}
