package httpapi

import (
	"net/http"
	"time"

	"tomato-monitor/internal/utils"
)

type healthchecker interface {
	handleHealthz(w http.ResponseWriter, r *http.Request)
}

type healthcheckerImpl struct {
	started time.Time
}

func NewHealthchecker() healthchecker {
	return &healthcheckerImpl{started: time.Now()}
}

func (h *healthcheckerImpl) handleHealthz(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"status":         "ok",
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
	})
}

func registerHealthcheck(mux *http.ServeMux) {
	healthchecker := NewHealthchecker()
	mux.HandleFunc("GET /healthz", healthchecker.handleHealthz)
}
