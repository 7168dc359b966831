package utils

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type captureHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *captureHandler) WithGroup(string) slog.Handler      { return h }

func captureLogs(t *testing.T) *captureHandler {
	t.Helper()
	h := &captureHandler{}
	prev := slog.Default()
	slog.SetDefault(slog.New(h))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return h
}

type failingWriter struct {
	header http.Header
	status int
}

func (f *failingWriter) Header() http.Header {
	if f.header == nil {
		f.header = http.Header{}
	}
	return f.header
}

func (f *failingWriter) WriteHeader(status int) { f.status = status }

func (f *failingWriter) Write([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestWriteJSON(t *testing.T) {
	t.Run("sets content-type and status", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteJSON(w, http.StatusOK, map[string]string{"key": "value"})

		if got := w.Header().Get("Content-Type"); got != "application/json; charset=utf-8" {
			t.Errorf("Content-Type = %q; want application/json; charset=utf-8", got)
		}
		if w.Code != http.StatusOK {
			t.Errorf("Code = %d; want %d", w.Code, http.StatusOK)
		}
	})

	t.Run("encodes slices as JSON arrays", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteJSON(w, http.StatusOK, []int{1, 2, 3})

		var got []int
		if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
			t.Fatalf("body is not valid JSON: %v", err)
		}
		if len(got) != 3 || got[2] != 3 {
			t.Errorf("body = %v; want [1 2 3]", got)
		}
	})

	t.Run("logs encode failures", func(t *testing.T) {
		logs := captureLogs(t)
		w := &failingWriter{}

		WriteJSON(w, http.StatusOK, map[string]string{"a": "b"})

		if w.status != http.StatusOK {
			t.Errorf("status = %d; want %d", w.status, http.StatusOK)
		}
		if len(logs.records) != 1 || logs.records[0].Message != "failed to write JSON" {
			t.Errorf("logged %d records; want one \"failed to write JSON\"", len(logs.records))
		}
	})
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()
	status := http.StatusBadRequest
	msg := "invalid 'hours' (expected integer)"
	WriteError(w, status, msg)

	if w.Code != status {
		t.Errorf("Code = %d; want %d", w.Code, status)
	}

	var got map[string]any
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("body is not valid JSON: %v", err)
	}
	if got["error"] != http.StatusText(status) {
		t.Errorf("error = %q; want %q", got["error"], http.StatusText(status))
	}
	if got["message"] != msg {
		t.Errorf("message = %q; want %q", got["message"], msg)
	}
}

func TestWriteHTML(t *testing.T) {
	t.Run("writes body with html content type", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteHTML(w, http.StatusOK, []byte("<!doctype html><p>ok</p>"))

		if got := w.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
			t.Errorf("Content-Type = %q; want text/html; charset=utf-8", got)
		}
		if w.Body.String() != "<!doctype html><p>ok</p>" {
			t.Errorf("body = %q", w.Body.String())
		}
	})

	t.Run("logs write failures", func(t *testing.T) {
		logs := captureLogs(t)
		WriteHTML(&failingWriter{}, http.StatusOK, []byte("x"))

		if len(logs.records) != 1 || logs.records[0].Message != "failed to write HTML" {
			t.Errorf("logged %d records; want one \"failed to write HTML\"", len(logs.records))
		}
	})
}
