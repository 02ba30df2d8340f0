package storage

import (
	"strings"

	"github.com/mybible-cli/mybible-cli/pkg/reference"
)

// bound is an optional (chapter, verse) limit inside one book.
type bound struct {
	set     bool
	chapter int
	verse   int
}

func at(chapter, verse int) bound { return bound{set: true, chapter: chapter, verse: verse} }

// spanWhere builds the WHERE clause selecting the verses of book between
// from and to, both inclusive. An unset bound is open.
func spanWhere(book reference.BookID, from, to bound) (string, []interface{}) {
	clauses := []string{"book_number = ?"}
	args := []interface{}{int(book)}
	if from.set {
		clauses = append(clauses, "(chapter > ? OR (chapter = ? AND verse >= ?))")
		args = append(args, from.chapter, from.chapter, from.verse)
	}
	if to.set {
		clauses = append(clauses, "(chapter < ? OR (chapter = ? AND verse <= ?))")
		args = append(args, to.chapter, to.chapter, to.verse)
	}
	return strings.Join(clauses, " AND "), args
}
