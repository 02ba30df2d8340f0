// Package storage reads MyBible .SQLite3 modules: the verses, books and
// info tables. Modules are always opened read-only.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/mybible-cli/mybible-cli/pkg/reference"
	_ "modernc.org/sqlite"
)

type DB struct {
	sql  *sql.DB
	path string
}

func Open(path string) (*DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	dsn := "file:" + path + "?mode=ro&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'verses'").Scan(&n); err != nil {
		db.Close()
		return nil, err
	}
	if n == 0 {
		db.Close()
		return nil, fmt.Errorf("%s: no verses table, not a MyBible bible module", path)
	}
	return &DB{sql: db, path: path}, nil
}

func (d *DB) Close() error {
	if d == nil || d.sql == nil {
		return nil
	}
	return d.sql.Close()
}

// Path returns the file the module was opened from.
func (d *DB) Path() string { return d.path }

// Books returns the books table in book-number order.
func (d *DB) Books(ctx context.Context) ([]Book, error) {
	rows, err := d.sql.QueryContext(ctx, "SELECT book_number, short_name, long_name FROM books ORDER BY book_number")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var (
			b           Book
			number      int
			short, long []byte
		)
		if err := rows.Scan(&number, &short, &long); err != nil {
			return nil, err
		}
		b.Number = reference.BookID(number)
		b.ShortName = DecodeName(short)
		b.LongName = DecodeName(long)
		out = append(out, b)
	}
	return out, rows.Err()
}

// VerseMaxima returns, per book and chapter, the highest verse number stored.
func (d *DB) VerseMaxima(ctx context.Context) (map[reference.BookID]map[int]int, error) {
	rows, err := d.sql.QueryContext(ctx, "SELECT book_number, chapter, MAX(verse) FROM verses GROUP BY book_number, chapter")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[reference.BookID]map[int]int)
	for rows.Next() {
		var book, chapter, last int
		if err := rows.Scan(&book, &chapter, &last); err != nil {
			return nil, err
		}
		id := reference.BookID(book)
		if out[id] == nil {
			out[id] = make(map[int]int)
		}
		out[id][chapter] = last
	}
	return out, rows.Err()
}

// Canon builds the module's canon index from its verse table.
func (d *DB) Canon(ctx context.Context) (*reference.CanonIndex, error) {
	counts, err := d.VerseMaxima(ctx)
	if err != nil {
		return nil, err
	}
	return reference.NewCanonIndex(counts), nil
}

// QueryRanges returns the verses covered by ranges, in range order. A range
// spanning books returns the rest of the start book, every stored book in
// between, then the end book up to the end position.
func (d *DB) QueryRanges(ctx context.Context, ranges []reference.VerseRange) ([]Verse, error) {
	var out []Verse
	for _, r := range ranges {
		if !r.CrossBook() {
			where, args := spanWhere(r.Start.Book, at(r.Start.Chapter, r.Start.Verse), at(r.End.Chapter, r.End.Verse))
			vs, err := d.queryVerses(ctx, where, args...)
			if err != nil {
				return nil, err
			}
			out = append(out, vs...)
			continue
		}

		where, args := spanWhere(r.Start.Book, at(r.Start.Chapter, r.Start.Verse), bound{})
		vs, err := d.queryVerses(ctx, where, args...)
		if err != nil {
			return nil, err
		}
		out = append(out, vs...)

		vs, err = d.queryVerses(ctx, "book_number > ? AND book_number < ?", int(r.Start.Book), int(r.End.Book))
		if err != nil {
			return nil, err
		}
		out = append(out, vs...)

		where, args = spanWhere(r.End.Book, bound{}, at(r.End.Chapter, r.End.Verse))
		vs, err = d.queryVerses(ctx, where, args...)
		if err != nil {
			return nil, err
		}
		out = append(out, vs...)
	}
	return out, nil
}

func (d *DB) queryVerses(ctx context.Context, where string, args ...interface{}) ([]Verse, error) {
	q := "SELECT book_number, chapter, verse, text FROM verses WHERE " + where + " ORDER BY book_number, chapter, verse"
	rows, err := d.sql.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Verse
	for rows.Next() {
		var (
			v    Verse
			book int
			text sql.NullString
		)
		if err := rows.Scan(&book, &v.Chapter, &v.Verse, &text); err != nil {
			return nil, err
		}
		v.Book = reference.BookID(book)
		v.Text = text.String
		out = append(out, v)
	}
	return out, rows.Err()
}

// GetStats counts books, chapters and verses stored in the module.
func (d *DB) GetStats(ctx context.Context) (Stats, error) {
	query := `
		SELECT
			book_number,
			COUNT(DISTINCT chapter),
			COUNT(*)
		FROM
			verses
		GROUP BY
			book_number
		ORDER BY
			book_number;
	`
	rows, err := d.sql.QueryContext(ctx, query)
	if err != nil {
		return Stats{}, err
	}
	defer rows.Close()

	var stats Stats
	for rows.Next() {
		var (
			s    BookStats
			book int
		)
		if err := rows.Scan(&book, &s.Chapters, &s.Verses); err != nil {
			return Stats{}, err
		}
		s.Book = reference.BookID(book)
		stats.PerBook = append(stats.PerBook, s)
		stats.Books++
		stats.Chapters += s.Chapters
		stats.Verses += s.Verses
	}
	if err := rows.Err(); err != nil {
		return Stats{}, err
	}
	return stats, nil
}
