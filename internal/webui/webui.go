// Package webui serves the browser dashboard: server-rendered views over
// the same pipeline the JSON API exposes, plus a spew-based debug dump of
// the raw datasets.
package webui

import (
	"embed"
	"html/template"
	"net/http"

	"kickboard.kickmetrics.org/internal/app"
)

//go:embed templates/*.html
var templateFS embed.FS

type WebUI struct {
	*app.Application
	templates *template.Template
}

// NewWebUI creates the dashboard handler set with its templates parsed.
func NewWebUI(app *app.Application) *WebUI {
	return &WebUI{
		Application: app,
		templates:   template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

func (ui *WebUI) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := ui.templates.ExecuteTemplate(w, name, data); err != nil {
		ui.Logger.Error("failed to render template", "template", name, "error", err)
	}
}

// errorPage is the data for the shared error view.
type errorPage struct {
	Title   string
	Message string
	Hint    string
}

func (ui *WebUI) renderError(w http.ResponseWriter, status int, page errorPage) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := ui.templates.ExecuteTemplate(w, "error.html", page); err != nil {
		ui.Logger.Error("failed to render error template", "error", err)
	}
}
