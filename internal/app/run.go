package app

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"tomato-monitor/internal/config"
	"tomato-monitor/internal/httpapi"
	"tomato-monitor/internal/metrics"
	"tomato-monitor/internal/modules/dashboard"
	"tomato-monitor/internal/modules/dashboard/static"
	dashboardviews "tomato-monitor/internal/modules/dashboard/views"
	"tomato-monitor/internal/modules/sensors"
	"tomato-monitor/internal/modules/sensors/generator"
)

// NewHandler assembles every route and the middleware chain. Both the HTTP
// server and the invocation adapter serve through it.
func NewHandler(cfg config.Config) (http.Handler, error) {
	if err := dashboardviews.LoadTemplates(); err != nil {
		return nil, err
	}

	assets, err := staticAssets(cfg)
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	gen := generator.New(generator.WithMaxPoints(cfg.HistoryMaxPoints))

	mux := httpapi.NewMux(m)
	sensors.RegisterFeature(mux, gen, m)
	dashboard.RegisterFeature(mux, gen, assets)

	return httpapi.Wrap(cfg, mux, m), nil
}

func staticAssets(cfg config.Config) (fs.FS, error) {
	if cfg.StaticDir == "" {
		return static.FS, nil
	}
	info, err := os.Stat(cfg.StaticDir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: cfg.StaticDir, Err: errors.New("not a directory")}
	}
	return os.DirFS(cfg.StaticDir), nil
}

func Run(ctx context.Context, cfg config.Config) error {
	slog.Info("config loaded",
		"appEnv", cfg.AppEnv,
		"logLevel", cfg.LogLevel.String(),
		"httpAddr", cfg.HTTPAddr,
		"staticDir", cfg.StaticDir,
		"corsAllowedOrigins", cfg.CORSAllowedOrigins,
		"historyMaxPoints", cfg.HistoryMaxPoints,
	)

	handler, err := NewHandler(cfg)
	if err != nil {
		return err
	}
	srv := httpapi.NewServer(cfg, handler)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http listening", "addr", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	slog.Info("http shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	err = <-errCh
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return ctx.Err()
}
