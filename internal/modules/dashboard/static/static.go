package static

import "embed"

// FS holds the dashboard script and stylesheet served under /static/.
//
//go:embed *.js *.css
var FS embed.FS
