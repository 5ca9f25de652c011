// internal/dict/exclusions.go
//
// Best-effort fetcher for previously-used answers. The dictionary
// provider treats the result as optional: any failure here degrades to
// an unfiltered dictionary and must never block solver startup.

package dict

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// DefaultExclusionsURL lists past answers inside <ul class="inline"> items.
const DefaultExclusionsURL = "https://www.rockpapershotgun.com/wordle-past-answers"

// ExclusionFetcher supplies words to exclude from the candidate pool.
type ExclusionFetcher interface {
	// PastAnswers returns previously-used answers, lowercased. An error
	// means the caller should proceed without exclusions.
	PastAnswers(ctx context.Context) ([]string, error)
}

// HTTPExclusions scrapes a past-answers page over HTTP.
type HTTPExclusions struct {
	URL    string
	Client *http.Client
}

// NewHTTPExclusions builds a fetcher with a bounded request timeout.
func NewHTTPExclusions(url string) *HTTPExclusions {
	if url == "" {
		url = DefaultExclusionsURL
	}
	return &HTTPExclusions{
		URL:    url,
		Client: &http.Client{Timeout: 5 * time.Second},
	}
}

// PastAnswers fetches and parses the exclusion page: the text of every
// <li> under a <ul class="inline"> element, kept when it is a valid
// five-letter word.
func (h *HTTPExclusions) PastAnswers(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return nil, err
	}
	res, err := h.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("exclusions fetch: status %d", res.StatusCode)
	}

	doc, err := html.Parse(res.Body)
	if err != nil {
		return nil, fmt.Errorf("exclusions parse: %w", err)
	}
	return collectInlineListWords(doc), nil
}

// collectInlineListWords walks the document for <ul class="inline"> and
// gathers the five-letter item texts.
func collectInlineListWords(doc *html.Node) []string {
	var out []string
	var walk func(n *html.Node, inList bool)
	walk = func(n *html.Node, inList bool) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "ul":
				inList = hasClass(n, "inline")
			case "li":
				if inList {
					w := strings.ToLower(strings.TrimSpace(nodeText(n)))
					if isFiveLetters(w) {
						out = append(out, w)
					}
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, inList)
		}
	}
	walk(doc, false)
	return out
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func isFiveLetters(w string) bool {
	if len(w) != 5 {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}
