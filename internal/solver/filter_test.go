package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFilter_Narrows verifies the canonical narrowing case:
// guessing crane with pattern 1,2,2,0,2 leaves exactly trace.
func TestFilter_Narrows(t *testing.T) {
	candidates := []string{"crane", "trace", "slate", "stale", "plate"}
	p, err := ParsePattern([]int{1, 2, 2, 0, 2})
	require.NoError(t, err)

	got := Filter(candidates, "crane", p)
	assert.Equal(t, []string{"trace"}, got)
}

// TestFilter_Idempotent verifies re-filtering by the same (guess,
// pattern) is a no-op.
func TestFilter_Idempotent(t *testing.T) {
	candidates := []string{"crane", "crate", "trace", "grace", "brace", "cramp"}
	guess := "crate"
	pattern := Feedback(guess, "grace")

	once := Filter(candidates, guess, pattern)
	twice := Filter(once, guess, pattern)
	assert.Equal(t, once, twice)
	assert.NotEmpty(t, once, "grace must survive its own feedback")
}

// TestFilter_DoesNotMutateInput ensures the input slice is untouched.
func TestFilter_DoesNotMutateInput(t *testing.T) {
	candidates := []string{"crane", "trace", "slate"}
	_ = Filter(candidates, "crane", Feedback("crane", "slate"))
	assert.Equal(t, []string{"crane", "trace", "slate"}, candidates)
}

// TestIsConsistent matches the fold-of-Filter definition.
func TestIsConsistent(t *testing.T) {
	history := []GuessRecord{
		{Word: "crane", Pattern: Feedback("crane", "trace")},
		{Word: "slate", Pattern: Feedback("slate", "trace")},
	}
	assert.True(t, IsConsistent("trace", history))
	assert.False(t, IsConsistent("crane", history))
	assert.False(t, IsConsistent("plate", history))

	// Empty history rules nothing out.
	assert.True(t, IsConsistent("zonal", nil))
}
