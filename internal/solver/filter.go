// internal/solver/filter.go
//
// Candidate filtering against observed feedback.

package solver

// GuessRecord is one (guess, pattern) observation, ordered by time.
type GuessRecord struct {
	Word    string
	Pattern Pattern
}

// Filter returns the subset of candidates w for which Feedback(guess, w)
// equals pattern. The result is a fresh slice; the input is not mutated.
// Filtering is idempotent: re-applying the same (guess, pattern) to its
// own output is a no-op.
func Filter(candidates []string, guess string, pattern Pattern) []string {
	out := make([]string, 0, len(candidates))
	for _, w := range candidates {
		if Feedback(guess, w) == pattern {
			out = append(out, w)
		}
	}
	return out
}

// IsConsistent reports whether word could still be the target given the
// full guess history. Equivalent to folding Filter over the history
// starting from {word}.
func IsConsistent(word string, history []GuessRecord) bool {
	for _, g := range history {
		if Feedback(g.Word, word) != g.Pattern {
			return false
		}
	}
	return true
}
