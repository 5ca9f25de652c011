package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFeedback_SelfIsAllCorrect verifies Feedback(w, w) = all-correct.
func TestFeedback_SelfIsAllCorrect(t *testing.T) {
	for _, w := range []string{"crane", "eerie", "mamma", "slate", "zzzzz"} {
		assert.Equal(t, AllCorrect, Feedback(w, w), "self feedback for %q", w)
	}
}

// TestFeedback_DuplicateLetters covers the duplicate/position interplay:
// crane vs trace must yield present, correct, correct, absent, correct.
func TestFeedback_DuplicateLetters(t *testing.T) {
	got := Feedback("crane", "trace")
	want := Pattern{CellPresent, CellCorrect, CellCorrect, CellAbsent, CellCorrect}
	assert.Equal(t, want, got)
}

// TestFeedback_ConsumptionOrder checks left-to-right consumption of
// repeated guess letters against a single target occurrence: only the
// first unmatched duplicate turns present.
func TestFeedback_ConsumptionOrder(t *testing.T) {
	// Target has one 'l'; guess "llama" has two. Neither 'l' is
	// positionally correct against "could", so only the first consumes it.
	got := Feedback("llama", "could")
	want := Pattern{CellPresent, CellAbsent, CellAbsent, CellAbsent, CellAbsent}
	assert.Equal(t, want, got)

	// Both guess 'l's find targets, but the second 'e' exhausts the
	// multiset and falls back to absent.
	got = Feedback("belle", "label")
	want = Pattern{CellPresent, CellPresent, CellPresent, CellPresent, CellAbsent}
	assert.Equal(t, want, got)
}

// TestValidWord enforces the 5-letter lowercase a-z rule.
func TestValidWord(t *testing.T) {
	assert.True(t, ValidWord("crane"))
	assert.False(t, ValidWord("cran"))
	assert.False(t, ValidWord("cranes"))
	assert.False(t, ValidWord("CRANE"))
	assert.False(t, ValidWord("cr4ne"))
	assert.False(t, ValidWord("crän"))
	assert.False(t, ValidWord(""))
}

// TestParsePattern round-trips wire ints and rejects junk.
func TestParsePattern(t *testing.T) {
	p, err := ParsePattern([]int{1, 2, 2, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, Pattern{CellPresent, CellCorrect, CellCorrect, CellAbsent, CellCorrect}, p)
	assert.Equal(t, []int{1, 2, 2, 0, 2}, p.Ints())

	_, err = ParsePattern([]int{0, 1, 2})
	assert.ErrorIs(t, err, ErrInvalidPattern)

	_, err = ParsePattern([]int{0, 1, 2, 3, 0})
	assert.ErrorIs(t, err, ErrInvalidPattern)

	_, err = ParsePattern([]int{0, 1, 2, -1, 0})
	assert.ErrorIs(t, err, ErrInvalidPattern)
}
