// ABOUTME: Embeds HTML templates and static assets into the binary
// ABOUTME: Provides templateFS and staticFS for runtime loading

package webadmin

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html templates/partials/*.html
var templateFS embed.FS

//go:embed static
var staticRoot embed.FS

// staticFS is rooted at static/ so the file server maps /static/app.css
// to static/app.css without the embed prefix.
var staticFS = func() fs.FS {
	sub, err := fs.Sub(staticRoot, "static")
	if err != nil {
		panic(err)
	}
	return sub
}()
