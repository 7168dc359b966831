package dashboard

import (
	"io/fs"
	"net/http"

	"tomato-monitor/internal/modules/dashboard/controller"
	"tomato-monitor/internal/modules/sensors/generator"
)

func RegisterFeature(mux *http.ServeMux, gen *generator.Generator, assets fs.FS) {
	dashboardController := controller.NewDashboardController(gen, assets)
	dashboardController.RegisterRoutes(mux)
}
