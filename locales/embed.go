// Package locales embeds the UI message catalogs.
package locales

import "embed"

//go:embed *.json
var FS embed.FS
