package httperr

import (
	"log/slog"
	"net/http"

	"github.com/KingCastle/Javan/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key the request logger stores the id under.
const RequestIDKey = "request_id"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	RequestID string `json:"request_id,omitempty"`
	Detail    any    `json:"detail,omitempty"`
}

func NewResponse(c *gin.Context, status int, msg string, detail any) Response {
	resp := Response{Status: status, RequestID: c.GetString(RequestIDKey), Detail: detail}
	resp.Error.Message = msg
	return resp
}

// Rule maps an error mark to the status and public message returned for it.
type Rule struct {
	Target  error
	Status  int
	Message string
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(c, status, msg, detail)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"request_id", resp.RequestID,
			"status", status,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12))
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithMapped responds with the first rule whose target err is marked
// with, or 500 when none match.
func AbortWithMapped(c *gin.Context, err error, rules []Rule) {
	for _, r := range rules {
		if errs.Is(err, r.Target) {
			AbortWithError(c, r.Status, err, r.Message, nil)
			return
		}
	}
	AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
