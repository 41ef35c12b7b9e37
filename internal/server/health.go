package server

import (
	"net/http"
	"time"
)

// GET /api/v1/health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	type check struct {
		Status string `json:"status"`
		Error  string `json:"error,omitempty"`
	}
	checks := map[string]check{}
	healthy := true

	probe := func(name string, hc HealthChecker) {
		if hc == nil {
			return
		}
		if err := hc.Ping(r.Context()); err != nil {
			checks[name] = check{Status: "down", Error: err.Error()}
			healthy = false
			return
		}
		checks[name] = check{Status: "up"}
	}
	probe("database", s.db)
	probe("cache", s.cache)

	status := http.StatusOK
	overall := "ok"
	if !healthy {
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}
	writeJSON(w, status, envelope{Data: map[string]any{
		"status": overall,
		"time":   time.Now().UTC().Format(time.RFC3339),
		"checks": checks,
	}})
}
