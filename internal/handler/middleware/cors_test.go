//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/KingCastle/Javan/internal/handler/middleware"
	"github.com/KingCastle/Javan/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCORSRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(config.CORSConfig{
		AllowOrigins:  []string{"https://javan.co.uk"},
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        time.Hour,
	}))
	r.POST("/api/bookings", func(c *gin.Context) {
		c.Header("X-Request-ID", "req-1")
		c.Status(http.StatusCreated)
	})
	return r
}

func TestCORS_PreflightAllowsIdempotencyKey(t *testing.T) {
	r := newCORSRouter()

	req := nethttptest.NewRequest(http.MethodOptions, "/api/bookings", nil)
	req.Header.Set("Origin", "https://javan.co.uk")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Idempotency-Key")
	w := nethttptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	allowed := strings.ToLower(w.Header().Get("Access-Control-Allow-Headers"))
	assert.Contains(t, allowed, "idempotency-key")
	assert.Contains(t, allowed, "authorization")
}

func TestCORS_ExposesRequestID(t *testing.T) {
	r := newCORSRouter()

	req := nethttptest.NewRequest(http.MethodPost, "/api/bookings", nil)
	req.Header.Set("Origin", "https://javan.co.uk")
	w := nethttptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, strings.ToLower(w.Header().Get("Access-Control-Expose-Headers")), "x-request-id")
}

func TestCORS_RejectsUnknownOrigin(t *testing.T) {
	r := newCORSRouter()

	req := nethttptest.NewRequest(http.MethodOptions, "/api/bookings", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := nethttptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
