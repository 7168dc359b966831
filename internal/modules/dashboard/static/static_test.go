package static

import (
	"io/fs"
	"strings"
	"testing"
)

func TestFS(t *testing.T) {
	for _, name := range []string{"main.js", "style.css"} {
		if _, err := fs.Stat(FS, name); err != nil {
			t.Errorf("Stat(%q) = %v; want embedded", name, err)
		}
	}
}

func TestMainScript(t *testing.T) {
	b, err := fs.ReadFile(FS, "main.js")
	if err != nil {
		t.Fatalf("ReadFile(main.js) = %v", err)
	}
	script := string(b)

	tests := []struct {
		name string
		want string
	}{
		{name: "toggles connection status", want: "getElementById('connection-status')"},
		{name: "reports connected", want: "'Connected'"},
		{name: "reports disconnected", want: "'Disconnected'"},
		{name: "ticks clock", want: "getElementById('clock')"},
		{name: "restores empty alerts message", want: "'All readings within range.'"},
		{name: "polls alerts", want: "fetch('/api/alerts')"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(script, tt.want) {
				t.Errorf("main.js missing %q", tt.want)
			}
		})
	}
}
