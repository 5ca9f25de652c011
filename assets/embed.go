package assets

import (
	"bufio"
	"embed"
	"strconv"
	"strings"
)

//go:embed corpus.txt
var FS embed.FS

// Entry is one corpus line: a five-letter word and its Zipf score.
type Entry struct {
	Word string
	Zipf float64
}

// DefaultCorpus returns the embedded word-frequency corpus, skipping
// blank lines and # comments. Used to seed the words table when no
// external corpus file is configured.
func DefaultCorpus() ([]Entry, error) {
	f, err := FS.Open("corpus.txt")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []Entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		if e, ok := ParseLine(s); ok {
			out = append(out, e)
		}
	}
	return out, sc.Err()
}

// ParseLine parses a "word zipf" corpus line. Lines that do not parse,
// or whose word is not lowercase alphabetic, are dropped.
func ParseLine(s string) (Entry, bool) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Entry{}, false
	}
	w := strings.ToLower(fields[0])
	for _, r := range w {
		if r < 'a' || r > 'z' {
			return Entry{}, false
		}
	}
	z, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Entry{}, false
	}
	return Entry{Word: w, Zipf: z}, true
}
