// internal/httpserver/server.go
//
// HTTP wiring for the solver service.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/api", "/health", "/debug/words".
//   - Solver endpoints (optional auth): POST /init, POST /guess,
//     POST /reset, GET/DELETE /session/{id}.
//   - Auth + stats endpoints: /auth/*, /stats/me.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Optional auth decorates requests with user context when a valid
//     token is present; solver routes still run for guests, auth only
//     enables per-user solve statistics.

package httpserver

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/calebcoatney/wordle-bot/internal/dict"
	"github.com/calebcoatney/wordle-bot/internal/freq"
	"github.com/calebcoatney/wordle-bot/internal/session"
)

// Server bundles router, session registry, dictionary provider, corpus,
// and DB handle.
type Server struct {
	r        *chi.Mux
	registry *session.Registry
	provider *dict.Provider
	corpus   *freq.Corpus
	db       *sql.DB
}

// New constructs a Server, installs middleware, and registers routes.
func New(reg *session.Registry, provider *dict.Provider, corpus *freq.Corpus, db *sql.DB) *Server {
	s := &Server{r: chi.NewRouter(), registry: reg, provider: provider, corpus: corpus, db: db}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(30 * time.Second)) // bound handler time, large-pool scoring included
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", s.handleInfo)
	s.r.Get("/api", s.handleInfo)
	s.r.Get("/health", s.handleHealth)
	s.r.Get("/debug/words", s.handleDebugWords)

	// Solver endpoints — OPTIONAL AUTH (guests can solve)
	s.r.Group(func(r chi.Router) {
		r.Use(s.withOptionalAuth())
		r.Post("/init", s.handleInit)
		r.Post("/guess", s.handleGuess)
		r.Post("/reset", s.handleReset)
		r.Get("/session/{sessionID}", s.handleSessionInfo)
		r.Delete("/session/{sessionID}", s.handleSessionDelete)
	})

	// Auth + stats
	s.mountAuthRoutes()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------- small util --------------------------------

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
