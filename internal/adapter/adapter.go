package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// Event is a serverless HTTP invocation in the API-gateway proxy shape.
type Event struct {
	HTTPMethod            string            `json:"httpMethod"`
	Path                  string            `json:"path"`
	Headers               map[string]string `json:"headers"`
	QueryStringParameters map[string]string `json:"queryStringParameters"`
	Body                  string            `json:"body"`
}

type Response struct {
	StatusCode      int               `json:"statusCode"`
	Headers         map[string]string `json:"headers"`
	Body            string            `json:"body"`
	IsBase64Encoded bool              `json:"isBase64Encoded"`
}

// recorder buffers a handler's output in memory.
type recorder struct {
	header      http.Header
	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func newRecorder() *recorder {
	return &recorder{header: http.Header{}, status: http.StatusOK}
}

func (r *recorder) Header() http.Header { return r.header }

func (r *recorder) WriteHeader(status int) {
	if r.wroteHeader {
		return
	}
	r.status = status
	r.wroteHeader = true
}

func (r *recorder) Write(b []byte) (int, error) {
	r.WriteHeader(http.StatusOK)
	return r.body.Write(b)
}

// Handle replays ev against h and returns what h wrote. It never fails: a
// malformed event or a panicking handler becomes a 500 with {"error": msg}.
func Handle(ctx context.Context, h http.Handler, ev Event) (resp Response) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("invocation panicked", "panic", rec, "method", ev.HTTPMethod, "path", ev.Path)
			resp = errorResponse(fmt.Sprint(rec))
		}
	}()

	req, err := buildRequest(ctx, ev)
	if err != nil {
		slog.Error("invocation rejected", "error", err)
		return errorResponse(err.Error())
	}

	rec := newRecorder()
	h.ServeHTTP(rec, req)

	return Response{
		StatusCode:      rec.status,
		Headers:         flattenHeaders(rec.header),
		Body:            rec.body.String(),
		IsBase64Encoded: false,
	}
}

func buildRequest(ctx context.Context, ev Event) (*http.Request, error) {
	method := ev.HTTPMethod
	if method == "" {
		method = http.MethodGet
	}
	path := ev.Path
	if path == "" {
		path = "/"
	}

	u, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", path, err)
	}
	if len(ev.QueryStringParameters) > 0 {
		q := u.Query()
		for k, v := range ev.QueryStringParameters {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), strings.NewReader(ev.Body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for k, v := range ev.Headers {
		req.Header.Set(k, v)
	}
	if host := req.Header.Get("Host"); host != "" {
		req.Host = host
	}
	req.RequestURI = u.RequestURI()
	req.RemoteAddr = "0.0.0.0:0"

	return req, nil
}

func flattenHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, vs := range h {
		out[k] = strings.Join(vs, ", ")
	}
	return out
}

func errorResponse(msg string) Response {
	body, err := json.Marshal(map[string]string{"error": msg})
	if err != nil {
		body = []byte(`{"error":"internal error"}`)
	}
	return Response{
		StatusCode: http.StatusInternalServerError,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}
