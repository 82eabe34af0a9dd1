package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer renders the site's HTML pages from embedded templates.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// PageData is the data every page template receives.
type PageData struct {
	Flash *Flash
	Year  int
}

// Render writes the named page. The flash, if any, is popped off the
// request so it shows exactly once.
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, name string) error {
	data := PageData{
		Flash: PopFlash(w, r),
		Year:  time.Now().Year(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return rd.templates.ExecuteTemplate(w, name, data)
}
