// internal/solver/session.go
//
// Stateful solver session: one candidate set, one dictionary reference,
// and the guess history, driven as a small state machine.
//
// States:
//   - initialized: no guesses yet, candidates = starting set.
//   - active:      at least one guess, two or more candidates remain.
//   - solved:      exactly one candidate remains.
//   - exhausted:   no candidates remain (the supplied feedback was
//                  inconsistent with prior history).
//
// Solved and exhausted are terminal for the round: no further
// suggestions are produced. Reset returns any state to initialized with
// the exact starting candidate set. A session's mutable state is owned
// by a single caller; concurrent sessions are independent.

package solver

import (
	"context"
	"fmt"
	"strings"
)

// State is the coarse lifecycle phase of a session.
type State string

const (
	StateInitialized State = "initialized"
	StateActive      State = "active"
	StateSolved      State = "solved"
	StateExhausted   State = "exhausted"
)

// Options tune a suggestion request.
type Options struct {
	Alpha           float64 // entropy vs frequency weight, [0,1]
	TopK            int     // number of suggestions to return
	RestrictGuesses bool    // guess pool = candidates instead of full dictionary
}

// DefaultOptions are the stock suggestion parameters.
func DefaultOptions() Options {
	return Options{Alpha: DefaultAlpha, TopK: DefaultTopK, RestrictGuesses: false}
}

// Result summarizes one processed guess.
type Result struct {
	Suggestions         []string
	CandidatesRemaining int
	State               State
	Solved              bool
	Message             string
}

// Session holds solver state across a full game.
type Session struct {
	allWords   []string // full dictionary, exploration guess pool
	initial    []string // starting candidate set, restored by Reset
	candidates []string
	history    []GuessRecord
	freq       FrequencyFunc
}

// NewSession creates a session over the given dictionary and starting
// candidate set. Both slices are treated as read-only by the session.
func NewSession(allWords, candidates []string, freq FrequencyFunc) *Session {
	return &Session{
		allWords:   allWords,
		initial:    candidates,
		candidates: candidates,
		freq:       freq,
	}
}

// SuggestInitial ranks opening guesses before any feedback exists.
func (s *Session) SuggestInitial(ctx context.Context, opts Options) ([]string, error) {
	return Suggest(ctx, s.pool(opts.RestrictGuesses), s.candidates, opts.Alpha, opts.TopK, s.freq)
}

// Guess records a (word, pattern) observation, shrinks the candidate
// set, and, if more than one candidate remains, ranks follow-up guesses.
//
// The word is validated (exactly five letters a-z) before any state is
// touched; an invalid word leaves the session unchanged.
func (s *Session) Guess(ctx context.Context, word string, pattern Pattern, opts Options) (Result, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	if !ValidWord(word) {
		return Result{}, ErrInvalidWord
	}

	s.history = append(s.history, GuessRecord{Word: word, Pattern: pattern})
	s.candidates = Filter(s.candidates, word, pattern)

	res := Result{
		CandidatesRemaining: len(s.candidates),
		State:               s.State(),
	}
	switch res.State {
	case StateExhausted:
		res.Message = "no candidates remain - check your pattern"
	case StateSolved:
		res.Solved = true
		res.Suggestions = s.candidates
		res.Message = fmt.Sprintf("solved: answer is %q", s.candidates[0])
	default:
		suggestions, err := Suggest(ctx, s.pool(opts.RestrictGuesses), s.candidates, opts.Alpha, opts.TopK, s.freq)
		if err != nil {
			return Result{}, err
		}
		res.Suggestions = suggestions
	}
	return res, nil
}

// Reset restores the exact initial candidate set and empties history.
func (s *Session) Reset() {
	s.candidates = s.initial
	s.history = nil
}

// State classifies the session from its candidate count and history.
func (s *Session) State() State {
	switch {
	case len(s.history) == 0:
		return StateInitialized
	case len(s.candidates) == 0:
		return StateExhausted
	case len(s.candidates) == 1:
		return StateSolved
	default:
		return StateActive
	}
}

// CandidatesRemaining reports the current candidate count.
func (s *Session) CandidatesRemaining() int { return len(s.candidates) }

// GuessesMade reports how many guesses have been recorded.
func (s *Session) GuessesMade() int { return len(s.history) }

// pool selects the guess pool: the candidate set when restricted,
// otherwise the full dictionary.
func (s *Session) pool(restrict bool) []string {
	if restrict {
		return s.candidates
	}
	return s.allWords
}
