// Package web serves the encyclopedia over HTTP.
//
// Handlers are stateless: everything a request needs is read from the entry
// service, the request itself, or the client's cookies.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/aretw0/encyclopedia/pkg/core"
	"github.com/aretw0/encyclopedia/pkg/markdown"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Prefix is the path every wiki route lives under.
const Prefix = "/wiki"

// pageNames lists the templates rendered inside the layout.
var pageNames = []string{"index", "page", "search_results", "new_page", "edit_page", "not_found", "error"}

// Options configures a Server.
type Options struct {
	Logger   *slog.Logger
	Renderer *markdown.Renderer
}

// Server holds the handlers and their collaborators.
type Server struct {
	svc      *core.Service
	renderer *markdown.Renderer
	logger   *slog.Logger
	pages    map[string]*template.Template
}

// New parses the templates and builds a Server around svc.
func New(svc *core.Service, opts Options) (*Server, error) {
	if svc == nil {
		return nil, fmt.Errorf("web: entry service is required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Renderer == nil {
		opts.Renderer = markdown.New(markdown.Options{})
	}

	pages, err := parsePages()
	if err != nil {
		return nil, err
	}

	return &Server{
		svc:      svc,
		renderer: opts.Renderer,
		logger:   opts.Logger,
		pages:    pages,
	}, nil
}

// Handler returns the routed handler wrapped in request id and access log middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	mux.HandleFunc("GET "+Prefix+"/{$}", s.handleIndex)
	mux.HandleFunc("GET "+Prefix+"/not_found", s.handleNotFound)
	mux.HandleFunc("POST "+Prefix+"/search_results", s.handleSearch)
	mux.HandleFunc("GET "+Prefix+"/random_page", s.handleRandom)
	mux.HandleFunc("GET "+Prefix+"/new_page", s.handleNewPageForm)
	mux.HandleFunc("POST "+Prefix+"/new_page", s.handleNewPage)
	mux.HandleFunc("GET "+Prefix+"/edit_page/{entry}", s.handleEditForm)
	mux.HandleFunc("POST "+Prefix+"/edit_page/{entry}", s.handleEdit)
	mux.HandleFunc("GET "+Prefix+"/{title}", s.handlePage)

	return s.withRequestID(s.withAccessLog(mux))
}

// wikiURL builds a route under Prefix. An empty name yields the index.
func wikiURL(name string) string {
	return Prefix + "/" + name
}

// entryURL is the page route for title.
func entryURL(title string) string {
	return Prefix + "/" + url.PathEscape(title)
}

// editURL is the edit route for title.
func editURL(title string) string {
	return Prefix + "/edit_page/" + url.PathEscape(title)
}

var templateFuncs = template.FuncMap{
	"wikiURL":  wikiURL,
	"entryURL": entryURL,
	"editURL":  editURL,
}

func parsePages() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(templateFuncs).ParseFS(templatesFS,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("web: parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return pages, nil
}
