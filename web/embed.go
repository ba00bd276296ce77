// Package web embeds the static assets for the upload page.
package web

import "embed"

//go:embed index.html
var Files embed.FS
