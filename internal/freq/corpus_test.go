package freq

import (
	"database/sql"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE words (word TEXT PRIMARY KEY, zipf REAL NOT NULL);`)
	require.NoError(t, err)
	return db
}

const testCorpus = `# comment line
which 6.1
house 5.9
crane 4.2

slate 4.2
badline
toolong 3.0
ab1de 2.0
`

// TestSeedAndLoad: seeding parses, filters, and inserts; loading ranks
// by descending Zipf with ascending-word ties.
func TestSeedAndLoad(t *testing.T) {
	db := newTestDB(t)

	n, err := Seed(db, strings.NewReader(testCorpus))
	require.NoError(t, err)
	assert.Equal(t, 4, n, "only valid five-letter lines insert")

	c, err := Load(db)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, []string{"which", "house", "crane", "slate"}, c.Top(0))
	assert.Equal(t, []string{"which", "house"}, c.Top(2))

	assert.InDelta(t, 6.1, c.Lookup("which"), 1e-9)
	assert.InDelta(t, 4.2, c.Lookup("CRANE"), 1e-9, "lookup is case-insensitive")
	assert.Zero(t, c.Lookup("zzzzz"), "unknown words report 0, below the clamp range")
}

// TestSeed_SkipsPopulatedTable: an already-seeded corpus is left alone.
func TestSeed_SkipsPopulatedTable(t *testing.T) {
	db := newTestDB(t)

	n, err := Seed(db, strings.NewReader("crane 4.2\n"))
	require.NoError(t, err)
	require.Equal(t, 1, n)

	n, err = Seed(db, strings.NewReader("slate 4.0\n"))
	require.NoError(t, err)
	assert.Zero(t, n)

	c, err := Load(db)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

// TestSeed_EmbeddedDefault: a nil reader seeds from the embedded corpus.
func TestSeed_EmbeddedDefault(t *testing.T) {
	db := newTestDB(t)

	n, err := Seed(db, nil)
	require.NoError(t, err)
	assert.Greater(t, n, 1000, "embedded corpus should be substantial")

	c, err := Load(db)
	require.NoError(t, err)
	assert.Greater(t, c.Lookup("crane"), 1.0)
	assert.Greater(t, c.Lookup("which"), c.Lookup("crane"))
}

// TestTop_Copy: mutating the returned slice must not corrupt the corpus.
func TestTop_Copy(t *testing.T) {
	db := newTestDB(t)
	_, err := Seed(db, strings.NewReader("which 6.1\nhouse 5.9\n"))
	require.NoError(t, err)
	c, err := Load(db)
	require.NoError(t, err)

	top := c.Top(2)
	top[0] = "mutated"
	assert.Equal(t, []string{"which", "house"}, c.Top(2))
}
