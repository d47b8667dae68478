// Package view renders the HTML pages.
//
// Templates are embedded in the binary and parsed once at startup. Every page
// is executed through the shared "layout" template, with the sprig function
// map available.
package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/Masterminds/sprig/v3"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

//go:embed templates/*.html
var files embed.FS

const layoutFile = "templates/layout.html"

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	templates map[Template]*template.Template
}

// NewRenderer parses every page together with the layout.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{
		templates: make(map[Template]*template.Template, len(Templates())),
	}

	for _, name := range Templates() {
		tmpl, err := template.New(string(name)).
			Funcs(sprig.FuncMap()).
			ParseFS(files, layoutFile, "templates/"+string(name)+".html")
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse page template %s", name)
		}
		r.templates[name] = tmpl
	}

	return r, nil
}

// Render executes the named page. name must be one of the Template values.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	tmpl, ok := r.templates[Template(name)]
	if !ok {
		return errors.Errorf("unknown page template %q", name)
	}

	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		return errors.Wrapf(err, "failed to execute page template %s", name)
	}

	return nil
}
