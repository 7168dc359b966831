package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"tomato-monitor/internal/httpapi"
	"tomato-monitor/internal/modules/sensors/generator"
	"tomato-monitor/internal/modules/sensors/types"
	"tomato-monitor/internal/utils"
)

func (c *sensorControllerImpl) handleCurrent(w http.ResponseWriter, r *http.Request) {
	reading := c.generator.Current()
	c.metrics.CurrentGenerated(reading)
	utils.WriteJSON(w, http.StatusOK, reading)
}

func (c *sensorControllerImpl) handleHistorical(w http.ResponseWriter, r *http.Request) {
	hours, interval, err := parseHistoricalQuery(r)
	if err != nil {
		c.metrics.GenerationFailed()
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	readings, err := c.generator.Historical(hours, interval)
	if err != nil {
		c.metrics.GenerationFailed()
		if errors.Is(err, generator.ErrInvalidParameter) {
			utils.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("historical data generation failed", "hours", hours, "interval", interval, "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to generate historical data")
		return
	}
	if readings == nil {
		readings = []types.Reading{}
	}

	c.metrics.HistoricalGenerated(len(readings))
	utils.WriteJSON(w, http.StatusOK, readings)
}

func (c *sensorControllerImpl) handleAlerts(w http.ResponseWriter, r *http.Request) {
	reading := c.generator.Current()
	alerts := generator.Assess(reading)

	c.metrics.CurrentGenerated(reading)
	c.metrics.AlertsRaised(alerts)
	if len(alerts) > 0 {
		slog.Warn("sensor alerts raised", "count", len(alerts), "request_id", httpapi.RequestIDFromContext(r.Context()))
	}

	utils.WriteJSON(w, http.StatusOK, types.Assessment{Reading: reading, Alerts: alerts})
}
