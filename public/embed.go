// Package public embeds the static assets served under /assets/.
package public

import (
	"embed"
	"io/fs"
)

//go:embed assets
var embedded embed.FS

// AssetsFS returns the embedded assets rooted at assets/.
func AssetsFS() (fs.FS, error) {
	return fs.Sub(embedded, "assets")
}
