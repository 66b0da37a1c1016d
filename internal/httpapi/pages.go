package httpapi

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var pages = template.Must(template.ParseFS(templatesFS, "templates/*.tmpl"))

// Messages shown inline on the index page.
const (
	msgEmptyPrompt      = "Please enter a question."
	msgModelUnavailable = "AI model is not available. Please check that the model file is in the model/ folder."
)

// IndexView feeds the "index" template.
type IndexView struct {
	Prompt       string
	Response     string
	ErrorMessage string
}

// ErrorView feeds the "error" template.
type ErrorView struct {
	Code  int
	Error string
}

// render executes a template into a buffer first so a failing template
// never leaves a half-written page behind.
func render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		logger().Error().Err(err).Str("template", name).Msg("render failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func renderError(w http.ResponseWriter, status int, msg string) {
	render(w, status, "error", ErrorView{Code: status, Error: msg})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	renderError(w, http.StatusNotFound, "Page not found")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	renderError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
