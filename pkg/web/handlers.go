package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/aretw0/introspection"

	"github.com/aretw0/encyclopedia/pkg/core"
	"github.com/aretw0/encyclopedia/pkg/forms"
)

// RandomCookie holds the last title served by the random route for a client.
const RandomCookie = "encyclopedia_last_random"

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, wikiURL(""), http.StatusFound)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	titles, err := s.svc.ListEntries(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "index", viewData{Entries: titles})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, "not_found", viewData{})
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	title := r.PathValue("title")

	entry, err := s.svc.GetEntry(r.Context(), title)
	if err != nil {
		if isMissing(err) {
			s.redirectNotFound(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}

	body, err := s.renderer.HTML(entry.Content)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "page", viewData{Title: entry.Title, Body: body})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	form := forms.SearchFromRequest(r)
	if err := form.Validate(); err != nil {
		s.log(r).Debug("invalid search form", "errors", forms.Errors(err))
		s.redirectNotFound(w, r)
		return
	}

	exact, err := s.svc.Exists(r.Context(), form.Lookup)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	if exact {
		http.Redirect(w, r, entryURL(form.Lookup), http.StatusSeeOther)
		return
	}

	matches, err := s.svc.FindMatches(r.Context(), form.Lookup)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	if len(matches) == 0 {
		s.redirectNotFound(w, r)
		return
	}
	s.render(w, r, http.StatusOK, "search_results", viewData{Lookup: form.Lookup, Entries: matches})
}

func (s *Server) handleRandom(w http.ResponseWriter, r *http.Request) {
	last := lastRandom(r)

	title, err := s.svc.PickRandomEntry(r.Context(), last)
	if err != nil {
		if errors.Is(err, core.ErrEmptyStore) {
			s.redirectNotFound(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     RandomCookie,
		Value:    url.QueryEscape(title),
		Path:     Prefix,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, entryURL(title), http.StatusFound)
}

func (s *Server) handleNewPageForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "new_page", viewData{})
}

func (s *Server) handleNewPage(w http.ResponseWriter, r *http.Request) {
	form := forms.NewPageFromRequest(r)
	data := viewData{
		Form: map[string]string{
			forms.FieldTitle:   form.Title,
			forms.FieldContent: form.Content,
		},
	}

	if err := form.Validate(); err != nil {
		data.Errors = forms.Errors(err)
		s.render(w, r, http.StatusOK, "new_page", data)
		return
	}

	available, err := s.svc.TitleIsAvailable(r.Context(), form.Title)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	if !available {
		data.InvalidTitle = true
		s.render(w, r, http.StatusOK, "new_page", data)
		return
	}

	if err := s.svc.SaveEntry(r.Context(), form.Title, form.Content); err != nil {
		if errors.Is(err, core.ErrInvalidTitle) || errors.Is(err, core.ErrEmptyTitle) {
			data.Errors = map[string]string{forms.FieldTitle: "title cannot be used as an entry name"}
			s.render(w, r, http.StatusOK, "new_page", data)
			return
		}
		s.serverError(w, r, err)
		return
	}
	s.log(r).Info("entry created", "title", form.Title)
	http.Redirect(w, r, wikiURL(""), http.StatusSeeOther)
}

func (s *Server) handleEditForm(w http.ResponseWriter, r *http.Request) {
	title := r.PathValue("entry")

	entry, err := s.svc.GetEntry(r.Context(), title)
	if err != nil {
		if isMissing(err) {
			s.redirectNotFound(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}

	s.render(w, r, http.StatusOK, "edit_page", viewData{
		Title: entry.Title,
		Form:  map[string]string{forms.FieldEditedPage: entry.Content},
	})
}

// handleEdit overwrites the entry. It does not require the entry to exist and
// skips the title availability check, so it can write any title.
func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) {
	title := r.PathValue("entry")
	form := forms.EditPageFromRequest(r)

	if err := form.Validate(); err != nil {
		s.render(w, r, http.StatusUnprocessableEntity, "edit_page", viewData{
			Title:  title,
			Form:   map[string]string{forms.FieldEditedPage: form.Content},
			Errors: forms.Errors(err),
		})
		return
	}

	if err := s.svc.SaveEntry(r.Context(), title, form.Content); err != nil {
		if errors.Is(err, core.ErrInvalidTitle) || errors.Is(err, core.ErrEmptyTitle) {
			s.redirectNotFound(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}
	s.log(r).Info("entry updated", "title", title)
	http.Redirect(w, r, entryURL(title), http.StatusSeeOther)
}

type healthResponse struct {
	Status     string `json:"status"`
	Service    any    `json:"service"`
	Repository any    `json:"repository,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Service: s.svc.State()}
	if intro, ok := s.svc.Repository().(introspection.Introspectable); ok {
		resp.Repository = intro.State()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log(r).Error("failed to encode health response", "error", err)
	}
}

func (s *Server) redirectNotFound(w http.ResponseWriter, r *http.Request) {
	code := http.StatusFound
	if r.Method == http.MethodPost {
		code = http.StatusSeeOther
	}
	http.Redirect(w, r, wikiURL("not_found"), code)
}

// lastRandom reads the previous random pick from the client's cookie.
func lastRandom(r *http.Request) string {
	c, err := r.Cookie(RandomCookie)
	if err != nil {
		return ""
	}
	title, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}
	return title
}

func isMissing(err error) bool {
	return errors.Is(err, core.ErrNotFound) ||
		errors.Is(err, core.ErrInvalidTitle) ||
		errors.Is(err, core.ErrEmptyTitle)
}
