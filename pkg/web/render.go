package web

import (
	"bytes"
	"html/template"
	"net/http"
)

// viewData is the single model every template receives.
type viewData struct {
	Title        string
	Lookup       string
	Entries      []string
	Body         template.HTML
	Form         map[string]string
	Errors       map[string]string
	InvalidTitle bool
	RequestID    string
}

// render executes the named page into a buffer first so template failures
// become a clean 500 instead of a half-written page.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data viewData) {
	tmpl, ok := s.pages[name]
	if !ok {
		s.log(r).Error("unknown template", "name", name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if data.Form == nil {
		data.Form = map[string]string{}
	}
	if data.Errors == nil {
		data.Errors = map[string]string{}
	}
	data.RequestID = RequestID(r.Context())

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		s.log(r).Error("failed to render template", "name", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.log(r).Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	s.render(w, r, http.StatusInternalServerError, "error", viewData{})
}
