// internal/httpserver/routes_solver.go
//
// Solver session endpoints.
//   - POST /init            → create a session, return initial suggestions
//   - POST /guess           → submit feedback, return next suggestions
//   - POST /reset           → restore a session to its starting state
//   - GET  /session/{id}    → session info
//   - DELETE /session/{id}  → destroy a session
//
// Pattern wire format: five ints, 0=absent, 1=present, 2=correct.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/calebcoatney/wordle-bot/internal/session"
	"github.com/calebcoatney/wordle-bot/internal/solver"
)

const defaultNTop = 100000

// initReq is the payload for POST /init. Pointer fields distinguish
// "absent" from "false"/"zero" so defaults can apply.
type initReq struct {
	NTop              int      `json:"nTop"`
	FilterPastAnswers *bool    `json:"filterPastAnswers"` // default true
	Alpha             *float64 `json:"alpha"`             // default 0.7
	TopK              int      `json:"topk"`              // default 5
	RestrictGuesses   *bool    `json:"restrictGuesses"`   // default true on init
}

type initRes struct {
	SessionID       string   `json:"sessionId"`
	Suggestions     []string `json:"suggestions"`
	TotalCandidates int      `json:"totalCandidates"`
}

// handleInit builds a dictionary, creates a solver session, and returns
// the opening suggestions.
func (s *Server) handleInit(w http.ResponseWriter, r *http.Request) {
	var req initReq
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
			return
		}
	}

	opts, ok := suggestOptions(w, req.Alpha, req.TopK, req.RestrictGuesses, true)
	if !ok {
		return
	}
	nTop := req.NTop
	if nTop <= 0 {
		nTop = defaultNTop
	}
	filterPast := req.FilterPastAnswers == nil || *req.FilterPastAnswers

	d := s.provider.Build(r.Context(), nTop, filterPast)
	sess := solver.NewSession(d.All, d.Fresh, s.corpus.Lookup)

	suggestions, err := sess.SuggestInitial(r.Context(), opts)
	if err != nil {
		log.Error().Err(err).Msg("initial suggestions")
		http.Error(w, `{"error":"suggest_failed"}`, http.StatusInternalServerError)
		return
	}

	id := s.registry.Create(sess)
	_ = json.NewEncoder(w).Encode(initRes{
		SessionID:       id,
		Suggestions:     suggestions,
		TotalCandidates: sess.CandidatesRemaining(),
	})
}

// guessReq is the payload for POST /guess.
type guessReq struct {
	SessionID       string   `json:"sessionId"`
	Word            string   `json:"word"`
	Pattern         []int    `json:"pattern"`
	Alpha           *float64 `json:"alpha"`           // default 0.7
	TopK            int      `json:"topk"`            // default 5
	RestrictGuesses *bool    `json:"restrictGuesses"` // default false on guess
}

type guessRes struct {
	Suggestions         []string `json:"suggestions"`
	CandidatesRemaining int      `json:"candidatesRemaining"`
	IsSolved            bool     `json:"isSolved"`
	Message             string   `json:"message,omitempty"`
}

// handleGuess records feedback for a guess, narrows the candidate set,
// and returns the next suggestions. A solved session bumps the
// authenticated user's stats best-effort.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.registry.Get(req.SessionID)
	if err != nil {
		http.Error(w, `{"error":"session_not_found"}`, http.StatusNotFound)
		return
	}

	opts, ok := suggestOptions(w, req.Alpha, req.TopK, req.RestrictGuesses, false)
	if !ok {
		return
	}
	pattern, err := solver.ParsePattern(req.Pattern)
	if err != nil {
		http.Error(w, `{"error":"pattern cells must be 0, 1, or 2"}`, http.StatusBadRequest)
		return
	}

	before := sess.CandidatesRemaining()
	res, err := sess.Guess(r.Context(), req.Word, pattern, opts)
	switch {
	case errors.Is(err, solver.ErrInvalidWord):
		http.Error(w, `{"error":"word must be 5 letters a-z"}`, http.StatusBadRequest)
		return
	case err != nil:
		log.Error().Err(err).Str("sessionId", req.SessionID).Msg("process guess")
		http.Error(w, `{"error":"suggest_failed"}`, http.StatusInternalServerError)
		return
	}

	// Count a solve only on the guess that narrowed the set to one.
	if res.Solved && before > 1 {
		if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
			s.bumpSolveStats(me.ID, sess.GuessesMade())
		}
	}

	_ = json.NewEncoder(w).Encode(guessRes{
		Suggestions:         res.Suggestions,
		CandidatesRemaining: res.CandidatesRemaining,
		IsSolved:            res.Solved,
		Message:             res.Message,
	})
}

// resetReq is the payload for POST /reset.
type resetReq struct {
	SessionID string `json:"sessionId"`
}

// handleReset restores a session to its initial candidate set.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req resetReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.registry.Get(req.SessionID)
	if err != nil {
		http.Error(w, `{"error":"session_not_found"}`, http.StatusNotFound)
		return
	}
	sess.Reset()
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "session reset"})
}

// sessionInfoRes is returned by GET /session/{id}.
type sessionInfoRes struct {
	SessionID           string `json:"sessionId"`
	CandidatesRemaining int    `json:"candidatesRemaining"`
	GuessesMade         int    `json:"guessesMade"`
	State               string `json:"state"`
}

func (s *Server) handleSessionInfo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	sess, err := s.registry.Get(id)
	if err != nil {
		http.Error(w, `{"error":"session_not_found"}`, http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(sessionInfoRes{
		SessionID:           id,
		CandidatesRemaining: sess.CandidatesRemaining(),
		GuessesMade:         sess.GuessesMade(),
		State:               string(sess.State()),
	})
}

func (s *Server) handleSessionDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	if err := s.registry.Delete(id); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			http.Error(w, `{"error":"session_not_found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error":"delete_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "session deleted"})
}

// ----------------------------- diagnostics ---------------------------------

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"service":"wordle-bot","endpoints":["POST /init","POST /guess","POST /reset","GET /session/{id}","DELETE /session/{id}","/health","/auth/*","/stats/me"]}`))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":         "healthy",
		"activeSessions": s.registry.Len(),
	})
}

func (s *Server) handleDebugWords(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(map[string]int{
		"corpus":     s.corpus.Len(),
		"dictionary": len(s.corpus.Top(defaultNTop)),
	})
}

// suggestOptions validates and defaults the shared alpha/topk/restrict
// options. On invalid input it writes the 400 response and returns
// ok=false.
func suggestOptions(w http.ResponseWriter, alpha *float64, topk int, restrict *bool, restrictDefault bool) (solver.Options, bool) {
	opts := solver.Options{Alpha: solver.DefaultAlpha, TopK: solver.DefaultTopK, RestrictGuesses: restrictDefault}
	if alpha != nil {
		if *alpha < 0 || *alpha > 1 {
			http.Error(w, `{"error":"alpha must be in [0,1]"}`, http.StatusBadRequest)
			return opts, false
		}
		opts.Alpha = *alpha
	}
	if topk < 0 {
		http.Error(w, `{"error":"topk must be positive"}`, http.StatusBadRequest)
		return opts, false
	}
	if topk > 0 {
		opts.TopK = topk
	}
	if restrict != nil {
		opts.RestrictGuesses = *restrict
	}
	return opts, true
}
