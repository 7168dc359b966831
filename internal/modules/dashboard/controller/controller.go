package controller

import (
	"bytes"
	"io/fs"
	"log/slog"
	"net/http"

	"tomato-monitor/internal/modules/dashboard/views"
	"tomato-monitor/internal/modules/sensors/generator"
	"tomato-monitor/internal/modules/sensors/types"
	"tomato-monitor/internal/utils"
)

const (
	pageTitle       = "Tomato Greenhouse Monitor"
	refreshSeconds  = 5
	historyHours    = 24
	historyInterval = 30
)

// CurrentReader supplies the reading shown when the page first loads.
type CurrentReader interface {
	Current() types.Reading
}

type DashboardController interface {
	RegisterRoutes(mux *http.ServeMux)
}

type dashboardControllerImpl struct {
	reader CurrentReader
	assets fs.FS
}

func NewDashboardController(reader CurrentReader, assets fs.FS) DashboardController {
	return &dashboardControllerImpl{reader: reader, assets: assets}
}

func (c *dashboardControllerImpl) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", c.handleDashboard)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(c.assets)))
}

func (c *dashboardControllerImpl) handleDashboard(w http.ResponseWriter, r *http.Request) {
	reading := c.reader.Current()
	data := &views.DashboardData{
		Title:           pageTitle,
		Reading:         reading,
		Alerts:          generator.Assess(reading),
		RefreshSeconds:  refreshSeconds,
		HistoryHours:    historyHours,
		HistoryInterval: historyInterval,
	}

	var buf bytes.Buffer
	if err := views.RenderDashboard(&buf, data); err != nil {
		slog.Error("dashboard template render failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to render page")
		return
	}
	utils.WriteHTML(w, http.StatusOK, buf.Bytes())
}
