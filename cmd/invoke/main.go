// Command invoke runs a single serverless-style event through the HTTP
// handler and prints the response, e.g.
//
//	echo '{"httpMethod":"GET","path":"/api/current-data"}' | invoke
//	invoke event.json
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"tomato-monitor/internal/adapter"
	"tomato-monitor/internal/app"
	"tomato-monitor/internal/config"
	"tomato-monitor/internal/logging"
)

const appName = "tomato-monitor-invoke"

var version = "dev"

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	// stdout carries the response document
	slog.SetDefault(logging.NewWithWriter(os.Stderr, cfg, version, appName))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		slog.Error("invoke failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, args []string, stdin io.Reader, stdout io.Writer) error {
	in := stdin
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var ev adapter.Event
	if err := json.NewDecoder(in).Decode(&ev); err != nil {
		return fmt.Errorf("decode event: %w", err)
	}

	handler, err := app.NewHandler(cfg)
	if err != nil {
		return err
	}

	resp := adapter.Handle(ctx, handler, ev)

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
