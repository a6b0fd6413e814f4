// Package templates holds the HTML pages and a gin renderer for them.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin/render"
)

//go:embed layouts/*.html pages/*.html
var files embed.FS

// Renderer keeps one template set per page, each combined with the layouts.
type Renderer struct {
	pages map[string]*template.Template
}

var _ render.HTMLRender = (*Renderer)(nil)

// Funcs are the helpers available to every page. mediaURL turns a stored
// image reference into a link.
func Funcs(mediaURL func(string) string) template.FuncMap {
	return template.FuncMap{
		"mediaURL": mediaURL,
		"formatDate": func(t time.Time) string {
			return t.Format("02 Jan 2006")
		},
		"year": func() int { return time.Now().Year() },
	}
}

// New parses every page with the shared layouts.
func New(mediaURL func(string) string) (*Renderer, error) {
	layouts, err := template.New("layouts").Funcs(Funcs(mediaURL)).ParseFS(files, "layouts/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	pageFiles, err := fs.Glob(files, "pages/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pageFiles))}
	for _, file := range pageFiles {
		set, err := layouts.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := set.ParseFS(files, file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		r.pages[strings.TrimPrefix(file, "pages/")] = set
	}
	return r, nil
}

func (r *Renderer) Instance(name string, data any) render.Render {
	set, ok := r.pages[path.Base(name)]
	if !ok {
		panic(fmt.Sprintf("templates: unknown page %q", name))
	}
	return render.HTML{Template: set, Name: "base", Data: data}
}
