// Package render maps board state to the menu HTML page.
package render

import (
	"embed"
	"html/template"
	"io"

	"github.com/saffronlabs/menuboard/internal/menu"
)

//go:embed templates/*.html
var content embed.FS

// Renderer renders the menu as a standalone HTML page.
type Renderer struct {
	tmpl *template.Template
}

// New creates a Renderer with the embedded page templates.
func New() *Renderer {
	tmpl := template.Must(
		template.New("page.html").
			Funcs(funcMap()).
			ParseFS(content, "templates/*.html"),
	)
	return &Renderer{tmpl: tmpl}
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		// Image sources are data URIs built server-side from generated
		// bytes; html/template would otherwise reject the data: scheme.
		"safeURL": func(s string) template.URL { return template.URL(s) },
	}
}

// PageData is the template data for the menu page.
type PageData struct {
	Title     string
	Cards     []menu.Card
	PageError string
	// Live includes the polling script that patches cards in place as
	// generation results arrive. Off for generated static files.
	Live bool
}

// RenderPage writes the menu page to w.
func (r *Renderer) RenderPage(w io.Writer, data PageData) error {
	if data.Title == "" {
		data.Title = "Today's Menu"
	}
	return r.tmpl.ExecuteTemplate(w, "page.html", data)
}
