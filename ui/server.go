// Package ui serves a small web front end for evaluating expressions.
package ui

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/dhamidi/combi/calc"
	"github.com/dhamidi/combi/format"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("combi.ui")

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>combi</title></head>
<body>
<h1>combi</h1>
<form method="post" action="/">
<input name="expr" value="{{.Expr}}" autofocus>
<button type="submit">Evaluate</button>
</form>
{{with .Result}}<pre>{{.}}</pre>{{end}}
<h2>Samples</h2>
<ul>
{{range .Samples}}<li><code>{{.}}</code></li>
{{end}}</ul>
</body>
</html>
`))

type indexData struct {
	Expr    string
	Result  string
	Samples []calc.Evaluation
}

type evalRequest struct {
	Expr string `json:"expr"`
}

type Server struct {
	mux         *http.ServeMux
	mode        calc.Mode
	evaluations *prometheus.CounterVec
}

// NewServer creates a server evaluating in mode. Metrics are registered
// with reg and served from /metrics.
func NewServer(mode calc.Mode, reg *prometheus.Registry) (*Server, error) {
	s := &Server{
		mux:  http.NewServeMux(),
		mode: mode,
		evaluations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "combi_evaluations_total",
			Help: "Expressions evaluated, by outcome.",
		}, []string{"outcome"}),
	}

	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /eval", s.handleEval)
	s.mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) evaluate(expr string) calc.Evaluation {
	ev := calc.Evaluate(expr, s.mode)
	outcome := "success"
	if !ev.OK() {
		outcome = "failure"
	}
	s.evaluations.WithLabelValues(outcome).Inc()
	log.Debugf("%s", ev)
	return ev
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := indexData{}
	if r.Method == http.MethodPost {
		data.Expr = r.FormValue("expr")
		data.Result = s.evaluate(data.Expr).String()
	}
	for _, expr := range calc.Samples {
		data.Samples = append(data.Samples, calc.Evaluate(expr, s.mode))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		log.Errorf("render index: %s", err)
	}
}

func (s *Server) handleEval(w http.ResponseWriter, r *http.Request) {
	var req evalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
		return
	}

	ev := s.evaluate(req.Expr)
	status := http.StatusOK
	if !ev.OK() {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, format.NewRecord(ev))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("write response: %s", err)
	}
}
