// Package iconifytest provides an in-memory Iconify API for tests.
//
//	srv := iconifytest.NewServer()
//	defer srv.Close()
//	srv.AddIcon("lucide", "home", `<svg viewBox="0 0 24 24"><path d="M0"/></svg>`)
//
//	client, _ := iconify.NewClient(iconify.Options{BaseURL: srv.URL})
package iconifytest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/relaxicons/relaxicons/pkg/cache"
)

// Server is a fake Iconify API backed by httptest.
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	collections map[string]*collection
	failures    map[string]failure
	requests    map[string]int
}

type collection struct {
	title string
	icons map[string]string
	order []string
}

type failure struct {
	status    int
	remaining int
}

// NewServer starts an empty registry.
func NewServer() *Server {
	s := &Server{
		collections: make(map[string]*collection),
		failures:    make(map[string]failure),
		requests:    make(map[string]int),
	}

	r := chi.NewRouter()
	r.Use(s.count, s.inject)
	r.Get("/collections", s.handleCollections)
	r.Get("/collection", s.handleCollection)
	r.Get("/{prefix}/{file}", s.handleIcon)
	s.Server = httptest.NewServer(r)
	return s
}

// AddIcon registers an icon, creating its collection on first use.
func (s *Server) AddIcon(prefix, name, svg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, ok := s.collections[prefix]
	if !ok {
		col = &collection{title: prefix, icons: make(map[string]string)}
		s.collections[prefix] = col
	}
	if _, exists := col.icons[name]; !exists {
		col.order = append(col.order, name)
	}
	col.icons[name] = svg
}

// SetTitle sets the display title of a collection.
func (s *Server) SetTitle(prefix, title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if col, ok := s.collections[prefix]; ok {
		col.title = title
	}
}

// FailNext makes the next n requests to path answer with status.
func (s *Server) FailNext(path string, status, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[path] = failure{status: status, remaining: n}
}

// Requests returns how many requests hit path.
func (s *Server) Requests(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[path]
}

// TotalRequests returns how many requests the server has seen.
func (s *Server) TotalRequests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.requests {
		total += n
	}
	return total
}

func (s *Server) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests[r.URL.Path]++
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) inject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		f, ok := s.failures[r.URL.Path]
		fail := ok && f.remaining > 0
		if fail {
			f.remaining--
			if f.remaining == 0 {
				delete(s.failures, r.URL.Path)
			} else {
				s.failures[r.URL.Path] = f
			}
		}
		s.mu.Unlock()

		if fail {
			w.WriteHeader(f.status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleCollections(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make(map[string]any, len(s.collections))
	for prefix, col := range s.collections {
		out[prefix] = map[string]any{"name": col.title, "total": len(col.icons)}
	}
	s.mu.Unlock()

	writeJSON(w, r, out)
}

func (s *Server) handleCollection(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")

	s.mu.Lock()
	col, ok := s.collections[prefix]
	var names []string
	if ok {
		names = slices.Clone(col.order)
	}
	s.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, r, map[string]any{
		"prefix":        prefix,
		"total":         len(names),
		"uncategorized": names,
	})
}

func (s *Server) handleIcon(w http.ResponseWriter, r *http.Request) {
	prefix := chi.URLParam(r, "prefix")
	file := chi.URLParam(r, "file")
	name, ok := strings.CutSuffix(file, ".svg")
	if !ok {
		http.NotFound(w, r)
		return
	}

	s.mu.Lock()
	var svg string
	found := false
	if col, exists := s.collections[prefix]; exists {
		svg, found = col.icons[name]
	}
	s.mu.Unlock()

	if !found {
		http.NotFound(w, r)
		return
	}
	serve(w, r, "image/svg+xml", []byte(svg))
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	serve(w, r, "application/json", data)
}

// serve writes body with a content-hash ETag and honours If-None-Match.
func serve(w http.ResponseWriter, r *http.Request, contentType string, body []byte) {
	etag := fmt.Sprintf("%q", cache.Hash(body)[:16])
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Write(body)
}
