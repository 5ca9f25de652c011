// internal/solver/score.go
//
// Hybrid guess scoring: entropy blended with a word-popularity prior.

package solver

const (
	// DefaultAlpha is the default entropy/frequency blend weight.
	DefaultAlpha = 0.7

	// Clamp range for the raw log-scale (Zipf) frequency signal before
	// normalization. Unknown words score below the minimum and normalize
	// to zero rather than failing.
	freqClampMin = 1.0
	freqClampMax = 7.0
)

// FrequencyFunc supplies the external log-scale popularity signal for a
// word. Implementations must not fail for unknown words: return any value
// at or below the clamp minimum instead.
type FrequencyFunc func(word string) float64

// freqNorm clamps a raw Zipf-style score to [1, 7] and rescales it
// linearly to [0, 1].
func freqNorm(raw float64) float64 {
	if raw < freqClampMin {
		raw = freqClampMin
	} else if raw > freqClampMax {
		raw = freqClampMax
	}
	return (raw - freqClampMin) / (freqClampMax - freqClampMin)
}

// HybridScore blends expected entropy with the normalized frequency
// prior: alpha·entropy + (1-alpha)·freqNorm. alpha is expected in [0, 1];
// higher favors information gain over word popularity.
func HybridScore(guess string, candidates []string, alpha float64, freq FrequencyFunc) float64 {
	ent := ExpectedEntropy(guess, candidates)
	return alpha*ent + (1.0-alpha)*freqNorm(freq(guess))
}
