package http

import (
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
)

// WebHandler serves the embedded upload page
type WebHandler struct {
	tmpl   *template.Template
	logger *slog.Logger
}

// pageData feeds the index template
type pageData struct {
	Title string
}

// NewWebHandler parses the embedded page template
func NewWebHandler(files fs.FS, logger *slog.Logger) (*WebHandler, error) {
	tmpl, err := template.ParseFS(files, "index.html")
	if err != nil {
		return nil, err
	}
	return &WebHandler{
		tmpl:   tmpl,
		logger: logger.With(slog.String("handler", "web")),
	}, nil
}

// Index handles GET / and serves the upload page
func (h *WebHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, pageData{Title: "GST PRO"}); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render index page",
			slog.String("error", err.Error()))
	}
}
