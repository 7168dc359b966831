package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tomato-monitor/internal/modules/sensors/types"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("scrape status = %d; want %d", rec.Code, http.StatusOK)
	}
	b, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatalf("read scrape: %v", err)
	}
	return string(b)
}

func assertContains(t *testing.T, body string, lines ...string) {
	t.Helper()
	for _, l := range lines {
		if !strings.Contains(body, l) {
			t.Errorf("metrics output missing %q", l)
		}
	}
}

func TestMiddleware(t *testing.T) {
	m := New()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/current-data", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET /api/historical-data", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	h := m.Middleware(mux)

	for _, path := range []string{"/api/current-data", "/api/current-data", "/api/historical-data?interval=0", "/nope"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	body := scrape(t, m)
	assertContains(t, body,
		`http_requests_total{method="GET",route="GET /api/current-data",status="200"} 2`,
		`http_requests_total{method="GET",route="GET /api/historical-data",status="400"} 1`,
		`http_requests_total{method="GET",route="unmatched",status="404"} 1`,
		`http_request_duration_seconds_count{route="GET /api/current-data"} 2`,
	)
}

func TestDomainCounters(t *testing.T) {
	m := New()

	m.CurrentGenerated(types.Reading{Temperature: 24.5, Humidity: 61.2, Light: 4800, SoilMoisture: 66.1, CO2: 812})
	m.HistoricalGenerated(48)
	m.GenerationFailed()
	m.AlertsRaised([]types.Alert{{Field: "temperature", Level: types.AlertDanger}})

	body := scrape(t, m)
	assertContains(t, body,
		`sensor_readings_generated_total{kind="current"} 1`,
		`sensor_readings_generated_total{kind="historical"} 48`,
		`sensor_generation_errors_total 1`,
		`sensor_alerts_total{field="temperature",level="danger"} 1`,
		`sensor_last_reading{field="temperature"} 24.5`,
		`sensor_last_reading{field="co2"} 812`,
		`go_goroutines`,
	)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics

	m.CurrentGenerated(types.Reading{})
	m.HistoricalGenerated(1)
	m.GenerationFailed()
	m.AlertsRaised([]types.Alert{{Field: "humidity", Level: types.AlertWarning}})

	rec := httptest.NewRecorder()
	m.Middleware(http.NotFoundHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d; want %d", rec.Code, http.StatusNotFound)
	}
}

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.GenerationFailed()

	if strings.Contains(scrape(t, b), "sensor_generation_errors_total 1") {
		t.Error("counter leaked between registries")
	}
}
