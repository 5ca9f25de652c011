// internal/solver/pattern.go
//
// Feedback pattern codec for the solver core.
// Responsibilities:
//   - Define the Cell (absent/present/correct) and Pattern value types.
//   - Compute feedback for a (guess, target) pair with the classic
//     two-pass algorithm, correct for repeated letters.
//   - Validate externally supplied words and patterns before any
//     computation touches them.
//
// Notes:
//   - Pattern is a fixed-size array so it is comparable and usable as a
//     map key when partitioning candidates.
//   - The wire encoding is five ints: 0=absent, 1=present, 2=correct.

package solver

import (
	"errors"
	"fmt"
)

// WordLen is the fixed word length the solver operates on.
const WordLen = 5

// Cell is the per-letter feedback classification.
//   - CellAbsent:  letter does not occur in the (remaining) target.
//   - CellPresent: letter occurs in the target at a different position.
//   - CellCorrect: letter matches the target at this position.
type Cell int

const (
	CellAbsent Cell = iota
	CellPresent
	CellCorrect
)

// Pattern is the ordered feedback for one guess against one target.
type Pattern [WordLen]Cell

// AllCorrect is the pattern reported when the guess equals the target.
var AllCorrect = Pattern{CellCorrect, CellCorrect, CellCorrect, CellCorrect, CellCorrect}

var (
	// ErrInvalidWord is returned for guesses that are not exactly five
	// lowercase ASCII letters.
	ErrInvalidWord = errors.New("word must be 5 letters a-z")

	// ErrInvalidPattern is returned for feedback containing symbols
	// outside absent/present/correct.
	ErrInvalidPattern = errors.New("pattern cells must be 0, 1, or 2")
)

// ValidWord reports whether w is exactly WordLen lowercase ASCII letters.
func ValidWord(w string) bool {
	if len(w) != WordLen {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

// ParsePattern converts wire-format ints (0/1/2) into a Pattern.
func ParsePattern(cells []int) (Pattern, error) {
	var p Pattern
	if len(cells) != WordLen {
		return p, fmt.Errorf("%w: got %d cells", ErrInvalidPattern, len(cells))
	}
	for i, c := range cells {
		if c < int(CellAbsent) || c > int(CellCorrect) {
			return p, ErrInvalidPattern
		}
		p[i] = Cell(c)
	}
	return p, nil
}

// Ints returns the wire-format encoding of p.
func (p Pattern) Ints() []int {
	out := make([]int, WordLen)
	for i, c := range p {
		out[i] = int(c)
	}
	return out
}

// Feedback scores guess against target with the standard two-pass
// algorithm.
//
// Pass 1:
//   - Mark exact matches as correct and consume those target letters.
//
// Pass 2:
//   - For each remaining position, mark present if the guess letter still
//     has unconsumed occurrences in the target, consuming one per match
//     left to right; otherwise absent.
//
// Inputs are assumed validated to WordLen lowercase a-z. The function is
// pure: Feedback(w, w) is all-correct for every valid w.
func Feedback(guess, target string) Pattern {
	var p Pattern

	// Letter counts for the non-correct target positions (a-z).
	var counts [26]int

	for i := 0; i < WordLen; i++ {
		if guess[i] == target[i] {
			p[i] = CellCorrect
		} else {
			counts[target[i]-'a']++
		}
	}

	for i := 0; i < WordLen; i++ {
		if p[i] == CellCorrect {
			continue
		}
		if j := guess[i] - 'a'; counts[j] > 0 {
			p[i] = CellPresent
			counts[j]--
		} else {
			p[i] = CellAbsent
		}
	}
	return p
}
