// internal/freq/corpus.go
//
// Word-frequency corpus: the external popularity signal the solver's
// hybrid ranker consumes, and the source of the dictionary top-N.
//
// The corpus lives in the `words` SQLite table (word → Zipf score) and
// is seeded once from either an operator-supplied file (CORPUS_FILE) or
// the embedded default. At startup the whole table is loaded into an
// immutable in-memory snapshot; scoring fans out across thousands of
// lookups per request, so hitting the database per lookup is not an
// option.
//
// Lookup never fails: unknown words report 0, which the ranker clamps
// to the bottom of its normalization range.

package freq

import (
	"bufio"
	"database/sql"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/calebcoatney/wordle-bot/assets"
)

// Corpus is a read-only snapshot of the frequency table.
type Corpus struct {
	zipf   map[string]float64
	ranked []string // descending Zipf, ties by ascending word
}

// Lookup returns the Zipf popularity of word, or 0 when unknown.
// The zero return deliberately sits below the ranker's clamp minimum.
func (c *Corpus) Lookup(word string) float64 {
	return c.zipf[strings.ToLower(word)]
}

// Top returns the n most frequent words, most frequent first. The
// returned slice is a copy and safe to reorder.
func (c *Corpus) Top(n int) []string {
	if n > len(c.ranked) || n <= 0 {
		n = len(c.ranked)
	}
	out := make([]string, n)
	copy(out, c.ranked[:n])
	return out
}

// Len reports the number of corpus words.
func (c *Corpus) Len() int { return len(c.ranked) }

// Seed populates the words table if it is empty. When r is nil the
// embedded default corpus is used. Returns the number of rows inserted
// (0 when the table was already populated).
func Seed(db *sql.DB, r io.Reader) (int, error) {
	var n int
	if err := db.QueryRow(`SELECT COUNT(1) FROM words`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	entries, err := readEntries(r)
	if err != nil {
		return 0, err
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO words (word, zipf) VALUES (?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	inserted := 0
	for _, e := range entries {
		if len(e.Word) != 5 {
			continue
		}
		if _, err := stmt.Exec(e.Word, e.Zipf); err != nil {
			return 0, fmt.Errorf("insert %q: %w", e.Word, err)
		}
		inserted++
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	log.Info().Int("words", inserted).Msg("seeded frequency corpus")
	return inserted, nil
}

// Load reads the full corpus from the database into a snapshot.
func Load(db *sql.DB) (*Corpus, error) {
	rows, err := db.Query(`SELECT word, zipf FROM words ORDER BY zipf DESC, word ASC`)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	defer rows.Close()

	c := &Corpus{zipf: make(map[string]float64)}
	for rows.Next() {
		var w string
		var z float64
		if err := rows.Scan(&w, &z); err != nil {
			return nil, err
		}
		c.zipf[w] = z
		c.ranked = append(c.ranked, w)
	}
	return c, rows.Err()
}

// readEntries pulls corpus entries from r, or from the embedded default
// when r is nil.
func readEntries(r io.Reader) ([]assets.Entry, error) {
	if r == nil {
		return assets.DefaultCorpus()
	}
	var out []assets.Entry
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		if e, ok := assets.ParseLine(s); ok {
			out = append(out, e)
		}
	}
	return out, sc.Err()
}
