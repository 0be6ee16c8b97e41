// Package web holds the embedded HTML templates for the dashboard page.
package web

import "embed"

//go:embed templates/*.tmpl
var Templates embed.FS
