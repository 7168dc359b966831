package controller

import (
	"net/http"

	"tomato-monitor/internal/metrics"
	"tomato-monitor/internal/modules/sensors/types"
)

// ReadingGenerator produces synthetic readings.
type ReadingGenerator interface {
	Current() types.Reading
	Historical(hours, intervalMinutes int) ([]types.Reading, error)
}

type SensorController interface {
	RegisterRoutes(mux *http.ServeMux)
}

type sensorControllerImpl struct {
	generator ReadingGenerator
	metrics   *metrics.Metrics
}

// NewSensorController wires the JSON API. m may be nil.
func NewSensorController(generator ReadingGenerator, m *metrics.Metrics) SensorController {
	return &sensorControllerImpl{generator: generator, metrics: m}
}

func (c *sensorControllerImpl) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/current-data", c.handleCurrent)
	mux.HandleFunc("GET /api/historical-data", c.handleHistorical)
	mux.HandleFunc("GET /api/alerts", c.handleAlerts)
}
