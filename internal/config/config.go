package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultPort      = "10000"
	defaultMaxPoints = 7 * 24 * 60
)

type Config struct {
	AppEnv   string
	LogLevel slog.Level
	HTTPAddr string

	// StaticDir, when non-empty, is an absolute path served at /static/ in place
	// of the embedded dashboard assets.
	StaticDir string

	CORSAllowedOrigins []string

	// HistoryMaxPoints caps the number of readings a single historical query may produce.
	HistoryMaxPoints int
}

func LoadFromEnv() (Config, error) {
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	switch appEnv {
	case "dev", "prod":
	default:
		return Config{}, fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", appEnv)
	}

	logLevelStr := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	level, err := parseLogLevel(logLevelStr)
	if err != nil {
		return Config{}, err
	}

	httpAddr, err := resolveHTTPAddr()
	if err != nil {
		return Config{}, err
	}

	staticDir := strings.TrimSpace(os.Getenv("STATIC_DIR"))
	if staticDir != "" {
		staticDir, err = filepath.Abs(staticDir)
		if err != nil {
			return Config{}, fmt.Errorf("STATIC_DIR %q: %w", staticDir, err)
		}
	}

	origins := parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	maxPointsStr := strings.TrimSpace(os.Getenv("HISTORY_MAX_POINTS"))
	maxPoints := defaultMaxPoints
	if maxPointsStr != "" {
		maxPoints, err = strconv.Atoi(maxPointsStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid HISTORY_MAX_POINTS %q: %w", maxPointsStr, err)
		}
		if maxPoints <= 0 {
			return Config{}, fmt.Errorf("invalid HISTORY_MAX_POINTS %q (must be > 0)", maxPointsStr)
		}
	}

	return Config{
		AppEnv:             appEnv,
		LogLevel:           level,
		HTTPAddr:           httpAddr,
		StaticDir:          staticDir,
		CORSAllowedOrigins: origins,
		HistoryMaxPoints:   maxPoints,
	}, nil
}

// resolveHTTPAddr prefers HTTP_ADDR, then the PORT convention of hosted platforms.
func resolveHTTPAddr() (string, error) {
	if addr := strings.TrimSpace(os.Getenv("HTTP_ADDR")); addr != "" {
		return addr, nil
	}

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = defaultPort
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return "", fmt.Errorf("invalid PORT %q (expected 0-65535)", port)
	}
	return ":" + port, nil
}

func parseOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
