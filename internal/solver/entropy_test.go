package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestExpectedEntropy_Bounds checks 0 ≤ H ≤ log2(|C|) over a spread of
// guesses and candidate sets.
func TestExpectedEntropy_Bounds(t *testing.T) {
	candidates := []string{"crane", "trace", "slate", "stale", "plate", "grace", "brace", "place"}
	max := math.Log2(float64(len(candidates)))

	for _, guess := range []string{"crane", "slate", "mound", "fuzzy", "eerie"} {
		h := ExpectedEntropy(guess, candidates)
		assert.GreaterOrEqual(t, h, 0.0, "guess %q", guess)
		assert.LessOrEqual(t, h, max+1e-12, "guess %q", guess)
	}
}

// TestExpectedEntropy_ZeroWhenUndiscriminating: a guess sharing no
// letters with any candidate maps everything to the all-absent pattern.
func TestExpectedEntropy_ZeroWhenUndiscriminating(t *testing.T) {
	candidates := []string{"crane", "crank", "crate"}
	assert.Zero(t, ExpectedEntropy("biddy", candidates))
}

// TestExpectedEntropy_MaxWhenAllDistinct: candidates that each produce a
// unique pattern give exactly log2(|C|) bits.
func TestExpectedEntropy_MaxWhenAllDistinct(t *testing.T) {
	// Against guess "crane": crane→22222, trace→12202, slate→00112(…)
	candidates := []string{"crane", "trace", "slate", "bingo"}
	seen := map[Pattern]bool{}
	for _, c := range candidates {
		seen[Feedback("crane", c)] = true
	}
	assert.Len(t, seen, len(candidates), "fixture must produce distinct patterns")

	h := ExpectedEntropy("crane", candidates)
	assert.InDelta(t, math.Log2(float64(len(candidates))), h, 1e-12)
}

// TestExpectedEntropy_Deterministic: repeated calls with the same inputs
// must be bit-identical. A large synthetic set realizes many partitions,
// so any map-order dependence in the non-associative float sum would show
// up as last-bit jitter across calls.
func TestExpectedEntropy_Deterministic(t *testing.T) {
	candidates := syntheticPool(600)

	for _, guess := range []string{"baaaa", "crane", candidates[7]} {
		first := ExpectedEntropy(guess, candidates)
		for i := 0; i < 50; i++ {
			assert.Equal(t, first, ExpectedEntropy(guess, candidates), "guess %q, call %d", guess, i)
		}
	}
}

// TestExpectedEntropy_EmptyAndSingle degenerate sets carry no information.
func TestExpectedEntropy_EmptyAndSingle(t *testing.T) {
	assert.Zero(t, ExpectedEntropy("crane", nil))
	assert.Zero(t, ExpectedEntropy("crane", []string{"trace"}))
}
