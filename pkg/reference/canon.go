package reference

import (
	"fmt"
	"sort"
)

// CanonIndex maps a book to its chapters and the verse count of each chapter
// for one module. It is read-only once built.
type CanonIndex struct {
	books map[BookID]map[int]int
}

// NewCanonIndex copies counts into a new index. Non-positive chapters and
// counts are dropped.
func NewCanonIndex(counts map[BookID]map[int]int) *CanonIndex {
	c := &CanonIndex{books: make(map[BookID]map[int]int, len(counts))}
	for book, chapters := range counts {
		m := make(map[int]int, len(chapters))
		for ch, n := range chapters {
			if ch > 0 && n > 0 {
				m[ch] = n
			}
		}
		if len(m) > 0 {
			c.books[book] = m
		}
	}
	return c
}

// Has reports whether the book has at least one chapter in the index.
func (c *CanonIndex) Has(book BookID) bool {
	if c == nil {
		return false
	}
	_, ok := c.books[book]
	return ok
}

// LastChapter returns the highest chapter number present for book.
func (c *CanonIndex) LastChapter(book BookID) (int, error) {
	if !c.Has(book) {
		return 0, fmt.Errorf("book %d: %w", book, ErrUnknownBook)
	}
	last := 0
	for ch := range c.books[book] {
		if ch > last {
			last = ch
		}
	}
	return last, nil
}

// LastVerse returns the verse count of chapter in book. An absent chapter
// yields 1, so an out-of-range chapter resolves to a one-verse range instead
// of failing.
func (c *CanonIndex) LastVerse(book BookID, chapter int) int {
	if n, ok := c.VerseCount(book, chapter); ok {
		return n
	}
	return 1
}

// VerseCount returns the verse count of chapter in book and whether the
// chapter exists.
func (c *CanonIndex) VerseCount(book BookID, chapter int) (int, bool) {
	if c == nil {
		return 0, false
	}
	n, ok := c.books[book][chapter]
	return n, ok
}

// Books returns the indexed books in ascending order.
func (c *CanonIndex) Books() []BookID {
	if c == nil {
		return nil
	}
	out := make([]BookID, 0, len(c.books))
	for b := range c.books {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Chapters returns the chapters of book in ascending order.
func (c *CanonIndex) Chapters(book BookID) []int {
	if c == nil {
		return nil
	}
	out := make([]int, 0, len(c.books[book]))
	for ch := range c.books[book] {
		out = append(out, ch)
	}
	sort.Ints(out)
	return out
}

// Counts returns a copy of the underlying book/chapter/verse-count mapping.
func (c *CanonIndex) Counts() map[BookID]map[int]int {
	out := make(map[BookID]map[int]int)
	if c == nil {
		return out
	}
	for b, chapters := range c.books {
		m := make(map[int]int, len(chapters))
		for ch, n := range chapters {
			m[ch] = n
		}
		out[b] = m
	}
	return out
}
