package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tomato-monitor/internal/modules/sensors/types"
)

// unmatchedRoute labels requests that no mux pattern claimed.
const unmatchedRoute = "unmatched"

type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	readingsTotal     *prometheus.CounterVec
	generationErrors  prometheus.Counter
	alertsTotal       *prometheus.CounterVec
	lastReading       *prometheus.GaugeVec
}

// New builds collectors on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total count of HTTP requests processed by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		readingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sensor_readings_generated_total",
			Help: "Synthetic readings produced, by kind (current, historical).",
		}, []string{"kind"}),
		generationErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sensor_generation_errors_total",
			Help: "Historical series requests rejected for invalid parameters.",
		}),
		alertsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sensor_alerts_total",
			Help: "Alerts raised on assessed readings, by field and level.",
		}, []string{"field", "level"}),
		lastReading: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "sensor_last_reading",
			Help: "Most recent current reading, by field.",
		}, []string{"field"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpDuration,
		m.readingsTotal,
		m.generationErrors,
		m.alertsTotal,
		m.lastReading,
	)

	return m
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// Middleware records request count and latency. It labels by the ServeMux
// pattern, so it must wrap the mux itself.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(recorder, r)

		if m == nil {
			return
		}
		route := r.Pattern
		if route == "" {
			route = unmatchedRoute
		}
		m.httpRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(recorder.status)).Inc()
		m.httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) CurrentGenerated(r types.Reading) {
	if m == nil {
		return
	}
	m.readingsTotal.WithLabelValues("current").Inc()
	m.lastReading.WithLabelValues("temperature").Set(r.Temperature)
	m.lastReading.WithLabelValues("humidity").Set(r.Humidity)
	m.lastReading.WithLabelValues("light").Set(float64(r.Light))
	m.lastReading.WithLabelValues("soil_moisture").Set(r.SoilMoisture)
	m.lastReading.WithLabelValues("co2").Set(float64(r.CO2))
}

func (m *Metrics) HistoricalGenerated(n int) {
	if m == nil {
		return
	}
	m.readingsTotal.WithLabelValues("historical").Add(float64(n))
}

func (m *Metrics) GenerationFailed() {
	if m == nil {
		return
	}
	m.generationErrors.Inc()
}

func (m *Metrics) AlertsRaised(alerts []types.Alert) {
	if m == nil {
		return
	}
	for _, a := range alerts {
		m.alertsTotal.WithLabelValues(a.Field, string(a.Level)).Inc()
	}
}
