// Package reference resolves human-written scripture references such as
// "John 3:16-18, 4; Rom 2:5" into ordered verse ranges against the canon of
// one MyBible module.
//
// Resolution is synchronous and keeps no state between calls. An AliasTable
// and a CanonIndex may be shared by concurrent callers as long as nobody
// mutates them.
package reference

import "fmt"

// BookID is a module-defined book number (MyBible numbering: 10 Genesis,
// 470 Matthew, ...). Numbers are not contiguous.
type BookID int

// Position is a single verse address.
type Position struct {
	Book    BookID `json:"book"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d %d:%d", p.Book, p.Chapter, p.Verse)
}

// VerseRange is an inclusive span of verses. Start.Book and End.Book differ
// only when a dash continuation named another book.
type VerseRange struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// CrossBook reports whether the range spans more than one book.
func (r VerseRange) CrossBook() bool {
	return r.Start.Book != r.End.Book
}

func (r VerseRange) String() string {
	return r.Start.String() + " - " + r.End.String()
}

// Logger receives resolver trace output.
type Logger interface {
	Debugf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
