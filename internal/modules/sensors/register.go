package sensors

import (
	"net/http"

	"tomato-monitor/internal/metrics"
	"tomato-monitor/internal/modules/sensors/controller"
	"tomato-monitor/internal/modules/sensors/generator"
)

func RegisterFeature(mux *http.ServeMux, gen *generator.Generator, m *metrics.Metrics) {
	sensorController := controller.NewSensorController(gen, m)
	sensorController.RegisterRoutes(mux)
}
