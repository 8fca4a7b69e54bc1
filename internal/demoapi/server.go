// Package demoapi serves an in-memory training diary that speaks the same
// HTTP API pacer consumes. It backs `pacer demo` and end-to-end tests.
package demoapi

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/mux"

	"github.com/five82/pacer/internal/api"
	"github.com/five82/pacer/internal/diary"
)

// Server is an http.Handler backed by an in-memory diary.
type Server struct {
	router *mux.Router
	token  string

	mu     sync.RWMutex
	days   map[string]map[string]any
	fields []fieldSpec
	stats  []api.Component
}

type fieldSpec struct {
	Section string
	Key     string
	Label   string
	Units   string
	Kind    string
}

// Option configures a Server.
type Option func(*Server)

// WithToken requires Authorization: Bearer <token> on every request.
func WithToken(token string) Option {
	return func(s *Server) {
		s.token = strings.TrimSpace(token)
	}
}

// WithStatistics replaces the statistics payload.
func WithStatistics(stats []api.Component) Option {
	return func(s *Server) {
		s.stats = stats
	}
}

// New builds a Server seeded with sample data.
func New(opts ...Option) *Server {
	s := &Server{
		days:   make(map[string]map[string]any),
		fields: defaultFields(),
		stats:  defaultStatistics(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests, s.requireToken)
	r.HandleFunc("/api/diary/{date}", s.getDiary).Methods(http.MethodGet)
	r.HandleFunc("/api/diary/{date}", s.patchDiary).Methods(http.MethodPatch)
	r.HandleFunc("/api/statistics", s.getStatistics).Methods(http.MethodGet)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "no such endpoint")
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Set stores a value directly, bypassing validation.
func (s *Server) Set(date, key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	day, ok := s.days[date]
	if !ok {
		day = make(map[string]any)
		s.days[date] = day
	}
	day[key] = value
}

// Value returns a stored value.
func (s *Server) Value(date, key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.days[date][key]
	return v, ok
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("demo api %s %s request=%s", r.Method, r.URL.Path, r.Header.Get("X-Request-ID"))
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.token != "" && r.Header.Get("Authorization") != "Bearer "+s.token {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) getDiary(w http.ResponseWriter, r *http.Request) {
	date, err := diary.Parse(mux.Vars(r)["date"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if date.Schedule == diary.Day {
		writeJSON(w, http.StatusOK, s.dayRecords(date.String()))
		return
	}
	writeJSON(w, http.StatusOK, s.summaryRecords(date))
}

func (s *Server) patchDiary(w http.ResponseWriter, r *http.Request) {
	date, err := diary.Parse(mux.Vars(r)["date"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if date.Schedule != diary.Day {
		writeError(w, http.StatusBadRequest, "only day pages can be edited")
		return
	}

	var body map[string]string
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "decode request: "+err.Error())
		return
	}
	if len(body) == 0 {
		writeError(w, http.StatusBadRequest, "empty write")
		return
	}

	stored := make(map[string]any, len(body))
	for key, raw := range body {
		spec, ok := s.spec(key)
		if !ok {
			writeError(w, http.StatusUnprocessableEntity, "unknown field "+key)
			return
		}
		value, err := normalize(spec, raw)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, spec.Label+": "+err.Error())
			return
		}
		stored[key] = value
	}
	for key, value := range stored {
		s.Set(date.String(), key, value)
	}
	writeJSON(w, http.StatusOK, stored)
}

func (s *Server) getStatistics(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := s.stats
	if stats == nil {
		stats = []api.Component{}
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) spec(key string) (fieldSpec, bool) {
	for _, f := range s.fields {
		if f.Key == key {
			return f, true
		}
	}
	return fieldSpec{}, false
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("demo api: encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]string{"message": message})
}
