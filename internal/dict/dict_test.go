package dict

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCorpus struct{ words []string }

func (f fakeCorpus) Top(n int) []string {
	if n > len(f.words) || n <= 0 {
		n = len(f.words)
	}
	return f.words[:n]
}

type fakeExclusions struct {
	words []string
	err   error
}

func (f fakeExclusions) PastAnswers(context.Context) ([]string, error) {
	return f.words, f.err
}

// TestBuild_SortedDeduped: the dictionary is alphabetical and
// duplicate-free regardless of corpus order.
func TestBuild_SortedDeduped(t *testing.T) {
	c := fakeCorpus{words: []string{"slate", "crane", "slate", "trace", "abcde1", "tiny"}}
	d := NewProvider(c, nil).Build(context.Background(), 0, false)

	assert.Equal(t, []string{"crane", "slate", "trace"}, d.All)
	assert.Equal(t, d.All, d.Fresh)
}

// TestBuild_TopNPrefix: nTop limits how much of the corpus is used.
func TestBuild_TopNPrefix(t *testing.T) {
	c := fakeCorpus{words: []string{"which", "house", "crane", "slate"}}
	d := NewProvider(c, nil).Build(context.Background(), 2, false)
	assert.Equal(t, []string{"house", "which"}, d.All)
}

// TestBuild_ExcludesPastAnswers removes fetched words from Fresh only.
func TestBuild_ExcludesPastAnswers(t *testing.T) {
	c := fakeCorpus{words: []string{"crane", "slate", "trace"}}
	p := NewProvider(c, fakeExclusions{words: []string{"slate"}})

	d := p.Build(context.Background(), 0, true)
	assert.Equal(t, []string{"crane", "slate", "trace"}, d.All)
	assert.Equal(t, []string{"crane", "trace"}, d.Fresh)
}

// TestBuild_FallbackOnFetchFailure: a failed exclusion fetch degrades to
// the unfiltered dictionary instead of erroring.
func TestBuild_FallbackOnFetchFailure(t *testing.T) {
	c := fakeCorpus{words: []string{"crane", "slate"}}
	p := NewProvider(c, fakeExclusions{err: errors.New("boom")})

	d := p.Build(context.Background(), 0, true)
	assert.Equal(t, d.All, d.Fresh)
	assert.Len(t, d.Fresh, 2)
}

// TestHTTPExclusions_ParsesInlineList scrapes <ul class="inline"> items
// from a stub page, ignoring other lists and non-words.
func TestHTTPExclusions_ParsesInlineList(t *testing.T) {
	page := `<html><body>
	  <ul class="nav"><li>ghost</li></ul>
	  <ul class="inline other"><li>CRANE</li><li> slate </li><li>toolong</li><li>ab1de</li></ul>
	</body></html>`
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer ts.Close()

	f := NewHTTPExclusions(ts.URL)
	got, err := f.PastAnswers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate"}, got)
}

// TestHTTPExclusions_NonOKStatus surfaces an error so the provider can
// fall back.
func TestHTTPExclusions_NonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	_, err := NewHTTPExclusions(ts.URL).PastAnswers(context.Background())
	assert.Error(t, err)
}
