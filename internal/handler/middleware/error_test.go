//go:build unit

package middleware_test

import (
	"encoding/json"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"github.com/KingCastle/Javan/internal/handler/httperr"
	"github.com/KingCastle/Javan/internal/handler/middleware"
	"github.com/KingCastle/Javan/internal/pkg/config"
	"github.com/KingCastle/Javan/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSoldOut = errs.New("sold out")

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()

	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	r.Use(middleware.ErrorHandler())

	rules := []httperr.Rule{{Target: errSoldOut, Status: http.StatusConflict, Message: "Not enough seats remaining"}}
	r.GET("/mapped", func(c *gin.Context) {
		httperr.AbortWithMapped(c, errs.Wrap(errSoldOut, "book"), rules)
	})
	r.GET("/unmapped", func(c *gin.Context) {
		httperr.AbortWithMapped(c, errs.New("boom"), rules)
	})
	r.GET("/recorded", func(c *gin.Context) {
		_ = c.Error(errs.New("recorded only"))
	})
	r.GET("/panic", func(*gin.Context) {
		panic("kaboom")
	})
	return r
}

type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	RequestID string `json:"request_id"`
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantMsg    string
	}{
		{name: "マーク付きエラーは対応するステータス", path: "/mapped", wantStatus: http.StatusConflict, wantMsg: "Not enough seats remaining"},
		{name: "未対応エラーは500", path: "/unmapped", wantStatus: http.StatusInternalServerError, wantMsg: "Internal server error"},
		{name: "本文なしのエラーは500", path: "/recorded", wantStatus: http.StatusInternalServerError, wantMsg: "Internal server error"},
		{name: "パニックは500", path: "/panic", wantStatus: http.StatusInternalServerError, wantMsg: "Internal server error"},
	}

	r := newErrorRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := nethttptest.NewRecorder()
			r.ServeHTTP(w, nethttptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			var body errorBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
			assert.Equal(t, tt.wantMsg, body.Error.Message)
			assert.NotEmpty(t, body.RequestID)
			assert.Equal(t, w.Header().Get("X-Request-ID"), body.RequestID)
		})
	}
}

func TestAbortWithError_NilPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(nethttptest.NewRecorder())

	assert.Panics(t, func() {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "bad", nil)
	})
}
