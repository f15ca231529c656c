package templates

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/contrib/renders/multitemplate"
	"github.com/gin-gonic/gin/render"
)

// IndexTemplate is the name of the landing page template.
const IndexTemplate = "index.html"

const layoutTemplate = "layout.html"

//go:embed layout.html index.html
var pages embed.FS

// NewRenderer returns the renderer used by the Gin engine for HTML pages.
//
// Each page is parsed together with the shared layout, which renders the
// page's "content" block.
func NewRenderer() render.HTMLRender {
	r := multitemplate.New()

	for _, page := range []string{IndexTemplate} {
		r.Add(
			page,
			template.Must(
				template.New(layoutTemplate).ParseFS(pages, layoutTemplate, page),
			),
		)
	}

	return r
}
