package health

import (
	"encoding/json"
	"net/http"
	"strings"
)

// LivenessHandler always answers OK while the process runs.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, Report{Ready: true})
	}
}

// ReadinessHandler answers 200 when every source is ready and 503 otherwise.
func ReadinessHandler(sources Sources, opts ...Option) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, Check(r.Context(), sources, opts...))
	}
}

func respond(w http.ResponseWriter, r *http.Request, report Report) {
	status, text := http.StatusOK, "OK"
	if !report.Ready {
		status, text = http.StatusServiceUnavailable, "Service Unavailable"
	}

	if r.URL.Query().Get("format") == "json" || strings.Contains(r.Header.Get("Accept"), "application/json") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(report)
		return
	}

	w.WriteHeader(status)
	_, _ = w.Write([]byte(text))
}
