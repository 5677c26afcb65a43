package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCounters(t *testing.T) {
	m := New()

	m.IncCreated()
	m.IncCreated()
	m.IncRejected("slot_full")
	m.IncEmail(EmailFailed)

	if got := testutil.ToFloat64(m.created); got != 2 {
		t.Errorf("created = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.rejected.WithLabelValues("slot_full")); got != 1 {
		t.Errorf("rejected{slot_full} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.emails.WithLabelValues(EmailFailed)); got != 1 {
		t.Errorf("emails{failed} = %v, want 1", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.IncCreated()
	m.IncRejected("time_conflict")
	m.IncEmail(EmailSent)
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/reservations/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/reservations/abc", nil))

	got := testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/api/reservations/:id", "200"))
	if got != 1 {
		t.Errorf("http_requests_total = %v, want 1", got)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "table_reservations_http_requests_total") {
		t.Error("metrics output missing http_requests_total")
	}
}
