package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/mybible-cli/mybible-cli/pkg/reference"
	"github.com/stretchr/testify/require"
)

// writeModule creates a small MyBible module: Genesis 1-2, Exodus 1,
// Leviticus 1 and a Cyrillic book name stored as Windows-1251.
func writeModule(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "TST.SQLite3")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
CREATE TABLE info (name TEXT, value TEXT);
CREATE TABLE books (book_color TEXT, book_number NUMERIC, short_name TEXT, long_name TEXT);
CREATE TABLE verses (book_number NUMERIC, chapter NUMERIC, verse NUMERIC, text TEXT);
INSERT INTO info VALUES ('description', 'Test <b>Bible</b>'), ('language', 'en');
INSERT INTO books VALUES ('#ccccff', 10, 'Gen', 'Genesis'), ('#ccccff', 20, 'Exo', 'Exodus');
`)
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO books VALUES ('#ccccff', 30, ?, ?)", []byte{0xC1, 0xFB, 0xF2}, []byte("Leviticus"))
	require.NoError(t, err)

	insert := func(book, chapter, verses int) {
		for v := 1; v <= verses; v++ {
			_, err := db.Exec("INSERT INTO verses VALUES (?, ?, ?, ?)", book, chapter, v, "text")
			require.NoError(t, err)
		}
	}
	insert(10, 1, 5)
	insert(10, 2, 3)
	insert(20, 1, 4)
	insert(30, 1, 2)
	// A gap: verse 7 exists without 6.
	_, err = db.Exec("INSERT INTO verses VALUES (30, 1, 7, NULL)")
	require.NoError(t, err)
	return path
}

func TestOpenRejectsNonModule(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.SQLite3")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec("CREATE TABLE other (x INTEGER)")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = Open(path)
	require.Error(t, err)

	_, err = Open(filepath.Join(t.TempDir(), "missing.SQLite3"))
	require.Error(t, err)
}

func TestBooksDecodesNames(t *testing.T) {
	db, err := Open(writeModule(t))
	require.NoError(t, err)
	defer db.Close()

	books, err := db.Books(context.Background())
	require.NoError(t, err)
	require.Equal(t, []Book{
		{Number: 10, ShortName: "Gen", LongName: "Genesis"},
		{Number: 20, ShortName: "Exo", LongName: "Exodus"},
		{Number: 30, ShortName: "Быт", LongName: "Leviticus"},
	}, books)
}

func TestCanonMatchesHighestVerse(t *testing.T) {
	db, err := Open(writeModule(t))
	require.NoError(t, err)
	defer db.Close()

	canon, err := db.Canon(context.Background())
	require.NoError(t, err)

	maxima, err := db.VerseMaxima(context.Background())
	require.NoError(t, err)
	for book, chapters := range maxima {
		last, err := canon.LastChapter(book)
		require.NoError(t, err)
		require.Equal(t, chapters[last], canon.LastVerse(book, last))
	}
	require.Equal(t, 7, canon.LastVerse(30, 1))
}

func TestQueryRanges(t *testing.T) {
	db, err := Open(writeModule(t))
	require.NoError(t, err)
	defer db.Close()
	ctx := context.Background()

	pos := func(b reference.BookID, c, v int) reference.Position {
		return reference.Position{Book: b, Chapter: c, Verse: v}
	}

	got, err := db.QueryRanges(ctx, []reference.VerseRange{{Start: pos(10, 1, 4), End: pos(10, 2, 2)}})
	require.NoError(t, err)
	require.Len(t, got, 4)
	require.Equal(t, Verse{Book: 10, Chapter: 1, Verse: 4, Text: "text"}, got[0])
	require.Equal(t, Verse{Book: 10, Chapter: 2, Verse: 2, Text: "text"}, got[3])

	got, err = db.QueryRanges(ctx, []reference.VerseRange{{Start: pos(10, 2, 3), End: pos(30, 1, 2)}})
	require.NoError(t, err)
	var keys []reference.Position
	for _, v := range got {
		keys = append(keys, pos(v.Book, v.Chapter, v.Verse))
	}
	require.Equal(t, []reference.Position{
		pos(10, 2, 3),
		pos(20, 1, 1), pos(20, 1, 2), pos(20, 1, 3), pos(20, 1, 4),
		pos(30, 1, 1), pos(30, 1, 2),
	}, keys)

	got, err = db.QueryRanges(ctx, []reference.VerseRange{{Start: pos(30, 1, 7), End: pos(30, 1, 7)}})
	require.NoError(t, err)
	require.Equal(t, []Verse{{Book: 30, Chapter: 1, Verse: 7}}, got)
}

func TestInfoAndStats(t *testing.T) {
	db, err := Open(writeModule(t))
	require.NoError(t, err)
	defer db.Close()
	ctx := context.Background()

	info, err := db.Info(ctx)
	require.NoError(t, err)
	require.Equal(t, "en", info["language"])

	desc, err := db.InfoValue(ctx, "description")
	require.NoError(t, err)
	require.Equal(t, "Test <b>Bible</b>", desc)

	missing, err := db.InfoValue(ctx, "origin")
	require.NoError(t, err)
	require.Empty(t, missing)

	stats, err := db.GetStats(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, stats.Books)
	require.Equal(t, 4, stats.Chapters)
	require.Equal(t, 5+3+4+3, stats.Verses)
	require.Equal(t, BookStats{Book: 10, Chapters: 2, Verses: 8}, stats.PerBook[0])
}

func TestSpanWhere(t *testing.T) {
	where, args := spanWhere(10, at(1, 4), bound{})
	require.Equal(t, "book_number = ? AND (chapter > ? OR (chapter = ? AND verse >= ?))", where)
	require.Equal(t, []interface{}{10, 1, 1, 4}, args)

	where, args = spanWhere(10, bound{}, bound{})
	require.Equal(t, "book_number = ?", where)
	require.Equal(t, []interface{}{10}, args)
}

func TestDecodeName(t *testing.T) {
	require.Equal(t, "Бытие", DecodeName([]byte("Бытие")))
	require.Equal(t, "Быт", DecodeName([]byte{0xC1, 0xFB, 0xF2}))
	require.Equal(t, "Gen", DecodeName([]byte(" Gen ")))
}
