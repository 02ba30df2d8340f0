package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mybible-cli/mybible-cli/pkg/catalog"
	"github.com/mybible-cli/mybible-cli/pkg/library"
	"github.com/mybible-cli/mybible-cli/pkg/reference"
	"github.com/mybible-cli/mybible-cli/pkg/render"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps resolution and lookup failures to client errors.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, catalog.ErrModuleNotFound):
		status = http.StatusNotFound
	case errors.Is(err, reference.ErrInvalidReference), errors.Is(err, reference.ErrMalformedFragment):
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) handleModules(w http.ResponseWriter, r *http.Request) {
	modules, err := s.Library.Catalog().List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, modules)
}

// moduleAndReference reads the module and reference query parameters and
// opens the module. It writes the error response itself.
func (s *Server) moduleAndReference(w http.ResponseWriter, r *http.Request) (*library.Module, string, bool) {
	q := r.URL.Query()
	name, ref := q.Get("module"), q.Get("reference")
	if name == "" || ref == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "module and reference are required"})
		return nil, "", false
	}
	m, err := s.module(r.Context(), name)
	if err != nil {
		writeError(w, err)
		return nil, "", false
	}
	return m, ref, true
}

type resolvedRange struct {
	Start  reference.Position `json:"start"`
	End    reference.Position `json:"end"`
	Verses int                `json:"verses"`
}

func resolvedRanges(m *library.Module, ranges []reference.VerseRange) []resolvedRange {
	counts := m.Count(ranges)
	out := make([]resolvedRange, len(ranges))
	for i, rg := range ranges {
		out[i] = resolvedRange{Start: rg.Start, End: rg.End, Verses: counts[i]}
	}
	return out
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	m, ref, ok := s.moduleAndReference(w, r)
	if !ok {
		return
	}
	ranges, err := m.Resolve(ref)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resolvedRanges(m, ranges))
}

type verseLine struct {
	Book    reference.BookID `json:"book"`
	Chapter int              `json:"chapter"`
	Verse   int              `json:"verse"`
	Text    string           `json:"text"`
	Line    string           `json:"line"`
}

type versesResponse struct {
	Module string          `json:"module"`
	Format string          `json:"format"`
	Ranges []resolvedRange `json:"ranges"`
	Verses []verseLine     `json:"verses"`
}

func (s *Server) handleVerses(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = s.DefaultFormat
	}
	// No terminal on the other end: colour placeholders render plain.
	f, err := render.Compile(format, render.Palette{})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	m, ref, ok := s.moduleAndReference(w, r)
	if !ok {
		return
	}
	ranges, verses, err := m.Read(r.Context(), ref)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := versesResponse{
		Module: m.Name,
		Format: format,
		Ranges: resolvedRanges(m, ranges),
		Verses: make([]verseLine, len(verses)),
	}
	for i, v := range verses {
		resp.Verses[i] = verseLine{
			Book:    v.Book,
			Chapter: v.Chapter,
			Verse:   v.Verse,
			Text:    render.Flat(v.Text),
			Line:    f.Verse(v, m.Books, m.Name),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
