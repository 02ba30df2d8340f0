package storage

import "github.com/mybible-cli/mybible-cli/pkg/reference"

// Verse is one row of a module's verses table.
type Verse struct {
	Book    reference.BookID `json:"book"`
	Chapter int              `json:"chapter"`
	Verse   int              `json:"verse"`
	Text    string           `json:"text"`
}

// Book is one row of a module's books table with names decoded to UTF-8.
type Book struct {
	Number    reference.BookID `json:"book_number"`
	ShortName string           `json:"short_name"`
	LongName  string           `json:"long_name"`
}

// BookStats summarizes the verses stored for one book.
type BookStats struct {
	Book     reference.BookID
	Chapters int
	Verses   int
}

// Stats summarizes a module's verse table.
type Stats struct {
	Books    int
	Chapters int
	Verses   int
	PerBook  []BookStats
}
