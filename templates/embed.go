// Package templates embeds the html/template page set.
package templates

import "embed"

//go:embed *.tmpl
var FS embed.FS
