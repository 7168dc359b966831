package httpapi

import (
	"net/http"
	"time"

	"tomato-monitor/internal/config"
	"tomato-monitor/internal/metrics"
)

// Wrap applies the middleware chain. Metrics must wrap the mux directly to
// see the matched route pattern.
func Wrap(cfg config.Config, mux *http.ServeMux, m *metrics.Metrics) http.Handler {
	var h http.Handler = recoverer(mux)
	h = m.Middleware(h)
	h = cors(cfg.CORSAllowedOrigins)(h)
	h = requestLogger(h)
	return requestID(h)
}

func NewServer(cfg config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
