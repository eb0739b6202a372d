//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"courtmate-gateway/internal/handler/httperr"
	"courtmate-gateway/internal/handler/middleware"
	"courtmate-gateway/internal/pkg/errs"
	"courtmate-gateway/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	router.GET("/auth-error", func(c *gin.Context) {
		_ = c.Error(errs.Mark(errs.New("token rejected"), errs.ErrAuth))
	})
	router.GET("/no-content", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	router.GET("/silent", func(_ *gin.Context) {})
	router.GET("/panic", func(_ *gin.Context) {
		panic("boom")
	})

	t.Run("bare c.Error is classified into the envelope", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/auth-error", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, httperr.MsgUnauthorized)
	})

	t.Run("status without body is kept", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/no-content", nil, "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("handler that wrote nothing gets a 500", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/silent", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, httperr.MsgInternal)
	})

	t.Run("panic is recovered into the envelope", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, httperr.MsgInternal)
	})
}
