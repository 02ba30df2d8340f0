package server

import (
	"context"
	"embed"
	"io/fs"
	"net/http"
	"strings"
	"sync"

	"github.com/mybible-cli/mybible-cli/internal/utils"
	"github.com/mybible-cli/mybible-cli/pkg/library"
)

//go:embed web
var WebFS embed.FS

// Server serves the modules of one library over a small JSON API plus a
// single page viewer. Opened modules are kept until Close.
type Server struct {
	Library       *library.Library
	DefaultFormat string
	Username      string
	Password      string

	mu      sync.Mutex
	modules map[string]*library.Module
}

func New(lib *library.Library, defaultFormat, user, pass string) *Server {
	return &Server{
		Library:       lib,
		DefaultFormat: defaultFormat,
		Username:      user,
		Password:      pass,
		modules:       make(map[string]*library.Module),
	}
}

// Handler returns the routes of the server.
func (s *Server) Handler() (http.Handler, error) {
	mux := http.NewServeMux()

	// API Group
	mux.HandleFunc("GET /api/modules", s.basicAuth(s.handleModules))
	mux.HandleFunc("GET /api/resolve", s.basicAuth(s.handleResolve))
	mux.HandleFunc("GET /api/verses", s.basicAuth(s.handleVerses))

	// Static Files
	webRoot, err := fs.Sub(WebFS, "web")
	if err != nil {
		return nil, err
	}
	fileServer := http.FileServer(http.FS(webRoot))
	mux.Handle("/", s.basicAuthMiddlewareForStatic(fileServer))
	return mux, nil
}

func (s *Server) Start(addr string) error {
	h, err := s.Handler()
	if err != nil {
		return err
	}
	utils.Log.Infof("Starting server on %s", addr)
	return http.ListenAndServe(addr, h)
}

// module returns the open module called name, opening it on first use.
func (s *Server) module(ctx context.Context, name string) (*library.Module, error) {
	key := strings.ToLower(name)
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.modules[key]; ok {
		return m, nil
	}
	m, err := s.Library.Open(ctx, name, library.OpenOptions{})
	if err != nil {
		return nil, err
	}
	s.modules[key] = m
	return m, nil
}

// Close releases every opened module.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var first error
	for key, m := range s.modules {
		if err := m.Close(); err != nil && first == nil {
			first = err
		}
		delete(s.modules, key)
	}
	return first
}

func (s *Server) authorized(r *http.Request) bool {
	if s.Username == "" && s.Password == "" {
		return true
	}
	user, pass, ok := r.BasicAuth()
	return ok && user == s.Username && pass == s.Password
}

func (s *Server) basicAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.authorized(r) {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func (s *Server) basicAuthMiddlewareForStatic(next http.Handler) http.Handler {
	return s.basicAuth(next.ServeHTTP)
}
