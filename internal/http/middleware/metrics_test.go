package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_CountersAndPathFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Metrics(), ProtocolFallback())
	r.GET("/accounts/:id", func(c *gin.Context) { c.String(http.StatusOK, "hello") })

	baseRoute := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/accounts/:id", "200"))
	base404 := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/no-such-route", "404"))

	for _, p := range []string{"/accounts/a1", "/accounts/a2", "/no-such-route"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	if got := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/accounts/:id", "200")); got != baseRoute+2 {
		t.Fatalf("route counter = %v; want %v", got, baseRoute+2)
	}
	if got := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/no-such-route", "404")); got != base404+1 {
		t.Fatalf("404 counter = %v; want %v", got, base404+1)
	}
	if n := testutil.CollectAndCount(httpLat); n == 0 {
		t.Fatalf("expected latency observations")
	}
	if n := testutil.CollectAndCount(httpRespSize); n == 0 {
		t.Fatalf("expected response size observations")
	}
	if inFlight := testutil.ToFloat64(httpInflight); inFlight != 0 {
		t.Fatalf("in-flight gauge should return to 0, got %v", inFlight)
	}
}
