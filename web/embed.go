// Package web embeds the page templates, static assets and installer scripts.
package web

import "embed"

//go:embed templates static scripts
var FS embed.FS
