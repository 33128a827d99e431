// Package templates embeds the HTML templates served by the web layer.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
