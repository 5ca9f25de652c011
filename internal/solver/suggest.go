// internal/solver/suggest.go
//
// Guess-pool scoring and ranking, with a parallel fan-out for large
// pools.
//
// Correctness of the parallel path rests on two things:
//   - Each unit of work (score one word against a read-only candidate
//     set) is pure and self-contained; workers write only to their own
//     index range of a preallocated result slice.
//   - Aggregation is a deterministic total-order sort, so the final
//     ranking is identical to the serial path regardless of worker
//     completion order.

package solver

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// serialThreshold is the pool size below which scoring runs serially;
// for small pools the fan-out overhead outweighs the parallelism.
const serialThreshold = 500

// DefaultTopK is the default number of suggestions returned.
const DefaultTopK = 5

// scoredWord pairs a guess with its hybrid score.
type scoredWord struct {
	score float64
	word  string
}

// Suggest scores every word in pool against candidates and returns the
// topk best guesses, ranked by descending (score, word). The word
// tie-break is descending lexicographic; kept as-is for compatibility
// with existing clients.
//
// Pools of serialThreshold or more words are scored concurrently. A
// worker error (only context cancellation can produce one) fails the
// whole request: no partial suggestion list is ever returned.
func Suggest(ctx context.Context, pool, candidates []string, alpha float64, topk int, freq FrequencyFunc) ([]string, error) {
	if topk <= 0 {
		topk = DefaultTopK
	}

	var scores []scoredWord
	if len(pool) < serialThreshold {
		scores = scoreSerial(pool, candidates, alpha, freq)
	} else {
		var err error
		scores, err = scoreParallel(ctx, pool, candidates, alpha, freq)
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].score != scores[j].score {
			return scores[i].score > scores[j].score
		}
		return scores[i].word > scores[j].word
	})

	if topk > len(scores) {
		topk = len(scores)
	}
	out := make([]string, topk)
	for i := 0; i < topk; i++ {
		out[i] = scores[i].word
	}
	return out, nil
}

func scoreSerial(pool, candidates []string, alpha float64, freq FrequencyFunc) []scoredWord {
	scores := make([]scoredWord, len(pool))
	for i, w := range pool {
		scores[i] = scoredWord{score: HybridScore(w, candidates, alpha, freq), word: w}
	}
	return scores
}

// scoreParallel splits the pool into contiguous chunks, one per worker.
// The candidate set is shared read-only; each worker owns a disjoint
// slice of the result, so no locking is needed.
func scoreParallel(ctx context.Context, pool, candidates []string, alpha float64, freq FrequencyFunc) ([]scoredWord, error) {
	scores := make([]scoredWord, len(pool))

	workers := runtime.NumCPU()
	if workers > len(pool) {
		workers = len(pool)
	}
	chunk := (len(pool) + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(pool); start += chunk {
		end := start + chunk
		if end > len(pool) {
			end = len(pool)
		}
		start, end := start, end
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				scores[i] = scoredWord{score: HybridScore(pool[i], candidates, alpha, freq), word: pool[i]}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}
