package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"sharehub/internal/model"
	"sharehub/internal/upload"
)

//go:embed templates static
var assets embed.FS

var sharedTemplates = []string{"templates/layout.html", "templates/partials/*.html"}

// Renderer executes one template set per page, each composed with the shared
// layout and partials.
type Renderer struct {
	pages map[string]*template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	files, err := fs.Glob(assets, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no page templates found")
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), path.Ext(file))
		patterns := append(append([]string{}, sharedTemplates...), file)
		t, err := template.New(name).Funcs(funcs()).ParseFS(assets, patterns...)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render implements echo.Renderer. name is the page template without extension.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// Static returns the embedded stylesheet directory.
func Static() fs.FS {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"categoryLabel":  model.CategoryLabel,
		"conditionLabel": model.ConditionLabel,
		"formatBytes":    upload.FormatBytes,
		"pictureURL": func(p model.Picture) template.URL {
			return template.URL(p.DataURL())
		},
		"add": func(a, b int) int { return a + b },
		"year": func() int { return time.Now().Year() },
	}
}
