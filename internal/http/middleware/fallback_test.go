package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-api-envelope/internal/http/respond"
	"github.com/tbourn/go-api-envelope/result"
)

func fallbackEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(RequestID())
	r.Use(mw...)
	r.Use(ProtocolFallback())
	r.GET("/gateway", func(c *gin.Context) { c.Status(http.StatusBadGateway) })
	r.GET("/plain-ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/forbidden", func(c *gin.Context) { c.Status(http.StatusForbidden) })
	r.GET("/written", func(c *gin.Context) { c.String(http.StatusAccepted, "accepted") })
	return r
}

func TestProtocolFallback(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"unmatched route", http.MethodGet, "/nope", 404, "P404", "Not Found"},
		{"wrong method", http.MethodPost, "/gateway", 405, "P405", "Method Not Allowed"},
		{"bare unhandled status", http.MethodGet, "/gateway", 502, "P502", "Bad Gateway"},
		{"403 is outside the default handled set", http.MethodGet, "/forbidden", 403, "P403", "Forbidden"},
	}
	r := fallbackEngine()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tc.method, tc.path, nil)
			req.Header.Set(respond.TraceIDHeader, "fb-1")
			r.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d", w.Code, tc.wantStatus)
			}
			env := decodeEnvelope(t, w)
			if env.Status != result.LabelProtocol || env.TraceID != "fb-1" || env.Error == nil ||
				env.Error.Code != tc.wantCode || env.Error.Message != tc.wantMsg {
				t.Fatalf("envelope = %+v error=%+v", env, env.Error)
			}
		})
	}
}

func TestProtocolFallback_LeavesHandledAndWrittenAlone(t *testing.T) {
	r := fallbackEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/plain-ok", nil))
	if w.Code != http.StatusOK || w.Body.Len() != 0 {
		t.Fatalf("handled status must pass through: %d %q", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/written", nil))
	if w.Code != http.StatusAccepted || w.Body.String() != "accepted" {
		t.Fatalf("written response must not be replaced: %d %q", w.Code, w.Body.String())
	}
}

func TestProtocolFallback_FollowsMapper(t *testing.T) {
	// With 403 as the authorization status, 403 is handled and passes through.
	r := fallbackEngine(respond.WithMapper(result.StatusMapper{AuthorizationStatus: http.StatusForbidden}))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/forbidden", nil))
	if w.Code != http.StatusForbidden || w.Body.Len() != 0 {
		t.Fatalf("got %d %q", w.Code, w.Body.String())
	}
}
