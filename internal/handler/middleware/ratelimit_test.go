//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"courtmate-gateway/internal/handler/middleware"
	"courtmate-gateway/internal/pkg/clock"
	"courtmate-gateway/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	rl := middleware.NewRateLimiter(config.RateLimitConfig{RPS: 1, Burst: 2}, clk)

	router := gin.New()
	router.POST("/login", rl.Limit(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	do := func(ip string) int {
		req := nethttptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = ip + ":1234"
		rec := nethttptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, do("10.0.0.1"))
	assert.Equal(t, http.StatusNoContent, do("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1"))

	// buckets are per client
	assert.Equal(t, http.StatusNoContent, do("10.0.0.2"))

	clk.Add(time.Second)
	assert.Equal(t, http.StatusNoContent, do("10.0.0.1"))
}
