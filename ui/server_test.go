package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dhamidi/combi/calc"
	"github.com/dhamidi/combi/format"
	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := NewServer(calc.ModeString, prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return s
}

func intPtr(n int) *int { return &n }

func TestEval(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		body     string
		status   int
		expected format.Record
	}{
		{`{"expr": "2*3+7"}`, http.StatusOK, format.Record{Expr: "2*3+7", Value: intPtr(13)}},
		{`{"expr": "2*3-7))"}`, http.StatusUnprocessableEntity, format.Record{
			Expr:   "2*3-7))",
			Error:  `Unparsed input remains at 5 ("... ))")`,
			Offset: intPtr(5),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/eval", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			s.ServeHTTP(rec, req)

			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			var got format.Record
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("response (-want +got):\n%s", diff)
			}
		})
	}

	if got := testutil.ToFloat64(s.evaluations.WithLabelValues("success")); got != 1 {
		t.Errorf("success count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(s.evaluations.WithLabelValues("failure")); got != 1 {
		t.Errorf("failure count = %v, want 1", got)
	}
}

func TestEvalBadRequest(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest("POST", "/eval", strings.NewReader("{")))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestIndex(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "2*3 = 6") {
		t.Errorf("GET / does not list the samples:\n%s", rec.Body.String())
	}

	form := url.Values{"expr": {"2*(3+7)"}}
	req := httptest.NewRequest("POST", "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	// html/template escapes "+" as "&#43;".
	if !strings.Contains(rec.Body.String(), "<pre>2*(3&#43;7) = 20</pre>") {
		t.Errorf("POST / missing result:\n%s", rec.Body.String())
	}
}

func TestMetrics(t *testing.T) {
	s := newTestServer(t)
	s.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/eval", strings.NewReader(`{"expr":"1"}`)))

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if !strings.Contains(rec.Body.String(), `combi_evaluations_total{outcome="success"} 1`) {
		t.Errorf("metrics output missing counter:\n%s", rec.Body.String())
	}
}
