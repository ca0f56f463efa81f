// Package static embeds the stylesheet, icon and manifest served under
// /static.
package static

import "embed"

// FS exposes web static assets for HTTP serving.
//
//go:embed *.css *.svg *.webmanifest
var FS embed.FS
