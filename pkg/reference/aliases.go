package reference

import (
	"fmt"
	"strings"
)

// AliasTable maps name variants to books. Books and their names keep the
// order they were added in; when two books share a normalized alias the
// book added first wins.
type AliasTable struct {
	order  []BookID
	names  map[BookID][]string
	lookup map[string]BookID
}

// NewAliasTable returns an empty table.
func NewAliasTable() *AliasTable {
	return &AliasTable{
		names:  make(map[BookID][]string),
		lookup: make(map[string]BookID),
	}
}

// Add appends name variants for book. A name that is empty after
// normalization is rejected and nothing from that call is added.
func (t *AliasTable) Add(book BookID, names ...string) error {
	keys := make([]string, len(names))
	for i, name := range names {
		keys[i] = NormalizeBookName(name)
		if keys[i] == "" {
			return fmt.Errorf("book %d: alias %q is empty after normalization", book, name)
		}
	}
	if _, ok := t.names[book]; !ok {
		t.order = append(t.order, book)
		t.names[book] = nil
	}
	for i, name := range names {
		t.names[book] = append(t.names[book], name)
		if _, taken := t.lookup[keys[i]]; !taken {
			t.lookup[keys[i]] = book
		}
	}
	return nil
}

// Lookup returns the book whose alias matches name after normalization.
func (t *AliasTable) Lookup(name string) (BookID, error) {
	if t != nil {
		if book, ok := t.lookup[NormalizeBookName(name)]; ok {
			return book, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownBook)
}

// Has reports whether book has at least one alias.
func (t *AliasTable) Has(book BookID) bool {
	if t == nil {
		return false
	}
	_, ok := t.names[book]
	return ok
}

// Names returns the variants registered for book in insertion order.
func (t *AliasTable) Names(book BookID) []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.names[book]...)
}

// Books returns the books in insertion order.
func (t *AliasTable) Books() []BookID {
	if t == nil {
		return nil
	}
	return append([]BookID(nil), t.order...)
}

// Len returns the number of books in the table.
func (t *AliasTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Duplicates lists normalized aliases claimed by more than one book, with the
// books in insertion order. Lookup always answers with the first of them.
func (t *AliasTable) Duplicates() map[string][]BookID {
	seen := make(map[string][]BookID)
	if t == nil {
		return seen
	}
	for _, book := range t.order {
		for _, name := range t.names[book] {
			key := NormalizeBookName(name)
			books := seen[key]
			if len(books) > 0 && books[len(books)-1] == book {
				continue
			}
			seen[key] = append(books, book)
		}
	}
	for key, books := range seen {
		if len(books) < 2 {
			delete(seen, key)
		}
	}
	return seen
}

// ResolveBook finds the longest leading span of tokens that names a book.
// It returns the book and how many tokens the name consumed.
func (t *AliasTable) ResolveBook(tokens []string) (BookID, int, error) {
	for n := len(tokens); n > 0; n-- {
		if book, err := t.Lookup(strings.Join(tokens[:n], " ")); err == nil {
			return book, n, nil
		}
	}
	return 0, 0, fmt.Errorf("%q: %w", strings.Join(tokens, " "), ErrUnknownBook)
}
