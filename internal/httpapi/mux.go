package httpapi

import (
	"net/http"

	"tomato-monitor/internal/metrics"
)

func NewMux(m *metrics.Metrics) *http.ServeMux {
	mux := http.NewServeMux()
	registerHealthcheck(mux)
	mux.Handle("GET /metrics", m.Handler())
	return mux
}
