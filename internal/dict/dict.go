// internal/dict/dict.go
//
// Dictionary provider: turns the frequency corpus top-N into the
// ordered, duplicate-free word pools the solver works with.
//
//   - All:   every five-letter corpus word in the top-N, alphabetical.
//     Used as the exploration guess pool.
//   - Fresh: All minus previously-used answers, when exclusion
//     filtering is requested and the fetch succeeds. Used as the
//     starting candidate set.
//
// An exclusion fetch failure is logged and degrades to Fresh == All;
// it never fails dictionary construction.

package dict

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"
)

// Corpus is the slice of the frequency service the provider needs.
type Corpus interface {
	Top(n int) []string
}

// Dictionary is a pair of ordered, duplicate-free word pools.
type Dictionary struct {
	All   []string
	Fresh []string
}

// Provider builds dictionaries from a corpus and an optional
// exclusion fetcher.
type Provider struct {
	corpus     Corpus
	exclusions ExclusionFetcher
}

// NewProvider wires a provider. exclusions may be nil to disable
// past-answer filtering entirely.
func NewProvider(corpus Corpus, exclusions ExclusionFetcher) *Provider {
	return &Provider{corpus: corpus, exclusions: exclusions}
}

// Build assembles a dictionary from the corpus top-N. When filterPast
// is set and a fetcher is configured, previously-used answers are
// dropped from Fresh; on fetch failure the full list is used instead.
func (p *Provider) Build(ctx context.Context, nTop int, filterPast bool) Dictionary {
	words := p.corpus.Top(nTop)

	seen := make(map[string]struct{}, len(words))
	all := make([]string, 0, len(words))
	for _, w := range words {
		if !isFiveLetters(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		all = append(all, w)
	}
	sort.Strings(all)

	d := Dictionary{All: all, Fresh: all}
	if !filterPast || p.exclusions == nil {
		return d
	}

	past, err := p.exclusions.PastAnswers(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("past-answer fetch failed, using full dictionary")
		return d
	}
	used := make(map[string]struct{}, len(past))
	for _, w := range past {
		used[w] = struct{}{}
	}
	fresh := make([]string, 0, len(all))
	for _, w := range all {
		if _, ok := used[w]; !ok {
			fresh = append(fresh, w)
		}
	}
	d.Fresh = fresh
	return d
}
