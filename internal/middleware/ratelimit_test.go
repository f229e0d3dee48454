package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func limitedRouter(rl *RateLimiter) *gin.Engine {
	r := gin.New()
	r.POST("/login", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func post(r *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	r := limitedRouter(NewRateLimiter(2))

	assert.Equal(t, http.StatusOK, post(r))
	assert.Equal(t, http.StatusOK, post(r))
	assert.Equal(t, http.StatusTooManyRequests, post(r))
}

func TestRateLimiterClampsZeroRate(t *testing.T) {
	// A zero rate from misconfiguration must not panic at construction.
	r := limitedRouter(NewRateLimiter(0))

	assert.Equal(t, http.StatusOK, post(r))
	assert.Equal(t, http.StatusTooManyRequests, post(r))
}
