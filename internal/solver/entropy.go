// internal/solver/entropy.go
//
// Expected information gain of a guess over the current candidate set.

package solver

import "math"

// ExpectedEntropy returns the Shannon entropy, in bits, of the pattern
// distribution guess would induce over candidates: the candidates are
// partitioned by the pattern each would produce as the hidden target, and
// the entropy -Σ p·log2(p) is taken over the realized partitions.
//
// Bounds: 0 ≤ entropy ≤ log2(len(candidates)). Zero iff every candidate
// yields the same pattern; the upper bound is reached iff every candidate
// yields a distinct pattern.
//
// The result is a pure function of (guess, candidates): partition counts
// accumulate in first-seen candidate order rather than map order, so the
// non-associative float sum runs in a fixed order and repeated calls are
// bit-identical.
func ExpectedEntropy(guess string, candidates []string) float64 {
	if len(candidates) == 0 {
		return 0
	}

	index := make(map[Pattern]int)
	var counts []int
	for _, target := range candidates {
		pat := Feedback(guess, target)
		i, ok := index[pat]
		if !ok {
			i = len(counts)
			index[pat] = i
			counts = append(counts, 0)
		}
		counts[i]++
	}

	total := float64(len(candidates))
	entropy := 0.0
	for _, count := range counts {
		p := float64(count) / total
		entropy -= p * math.Log2(p)
	}
	return entropy
}
