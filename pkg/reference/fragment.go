package reference

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// State is what one fragment hands to the next. The zero value means no
// book has been seen yet.
type State struct {
	Book         BookID
	Chapter      int
	Verse        int
	WasVerse     bool // a following bare number continues verses, not chapters
	BookExplicit bool // the fragment named its own book
}

// Fragment is the resolved span of a single dash- or comma-delimited piece.
type Fragment struct {
	Clause int
	Text   string
	Range  VerseRange
}

// parseChapterVerse parses "c:v" into positive chapter and verse numbers.
func parseChapterVerse(s string) (int, int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%q is not chapter:verse", s)
	}
	ch, err := parsePositive(parts[0])
	if err != nil {
		return 0, 0, err
	}
	v, err := parsePositive(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return ch, v, nil
}

func parsePositive(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%q is not a positive number", s)
	}
	return n, nil
}

// isContinuationWithBook reports whether a dash continuation carries its own
// book name rather than a bare number.
func isContinuationWithBook(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0 || strings.IndexFunc(s, unicode.IsSpace) >= 0
}

// checkBook fails unless the module carries book.
func (r *Resolver) checkBook(book BookID, fragment string) error {
	if r.moduleBooks != nil {
		if _, ok := r.moduleBooks[book]; !ok {
			return invalid(fragment, fmt.Errorf("book %d is not in this module", book))
		}
	}
	if !r.canon.Has(book) {
		return invalid(fragment, fmt.Errorf("book %d has no verses in this module", book))
	}
	return nil
}

// ResolveFragment resolves the leading fragment of a clause against the
// state left by the previous fragment.
func (r *Resolver) ResolveFragment(text string, prev State) (VerseRange, State, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return VerseRange{}, State{}, malformed(text, errors.New("empty fragment"))
	}

	next := State{WasVerse: prev.WasVerse}
	book, n, err := r.aliases.ResolveBook(tokens)
	switch {
	case err == nil:
		next.BookExplicit = true
		tokens = tokens[n:]
	case prev.Book != 0:
		book = prev.Book
	default:
		return VerseRange{}, State{}, invalid(text, err)
	}
	if err := r.checkBook(book, text); err != nil {
		return VerseRange{}, State{}, err
	}
	next.Book = book
	changed := book != prev.Book || next.BookExplicit

	if len(tokens) > 1 {
		r.logger.Debugf("fragment %q: ignoring trailing tokens %q", text, tokens[1:])
	}

	var chapter, verse int
	if len(tokens) > 0 {
		num := tokens[0]
		switch {
		case strings.Contains(num, ":"):
			chapter, verse, err = parseChapterVerse(num)
			if err != nil {
				return VerseRange{}, State{}, malformed(text, err)
			}
			next.WasVerse = true
		default:
			n, err := parsePositive(num)
			if err != nil {
				return VerseRange{}, State{}, malformed(text, err)
			}
			switch {
			case changed:
				chapter, verse = n, 1
				next.WasVerse = false
			case prev.WasVerse:
				chapter, verse = prev.Chapter, n
			default:
				chapter = n
			}
		}
	} else if !changed {
		chapter, verse = prev.Chapter, prev.Verse
	}
	if chapter == 0 {
		chapter = 1
	}
	if verse == 0 {
		verse = 1
	}

	start := Position{Book: book, Chapter: chapter, Verse: verse}
	end := start
	switch {
	case strings.Contains(text, ":"):
		next.WasVerse = true
	case changed:
		if len(tokens) == 0 {
			last, err := r.canon.LastChapter(book)
			if err != nil {
				return VerseRange{}, State{}, invalid(text, err)
			}
			end.Chapter = last
		}
		end.Verse = r.canon.LastVerse(book, end.Chapter)
	case next.WasVerse:
	default:
		end.Verse = r.canon.LastVerse(book, chapter)
		next.WasVerse = false
	}

	next.Chapter, next.Verse = end.Chapter, end.Verse
	r.logger.Debugf("fragment %q: %s (verse context %v)", text, VerseRange{Start: start, End: end}, next.WasVerse)
	return VerseRange{Start: start, End: end}, next, nil
}

// ResolveContinuation resolves the text after a dash. A continuation that
// names a book starts from a clean state; a bare number continues from prev.
func (r *Resolver) ResolveContinuation(text string, prev State) (VerseRange, State, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return VerseRange{}, State{}, malformed(text, errors.New("empty range end"))
	}
	if isContinuationWithBook(text) {
		return r.ResolveFragment(text, State{})
	}
	if prev.Book == 0 {
		return VerseRange{}, State{}, invalid(text, errors.New("range end without a book"))
	}

	next := State{Book: prev.Book, WasVerse: prev.WasVerse}
	var start, end Position
	start.Book, end.Book = prev.Book, prev.Book
	if strings.Contains(text, ":") {
		ch, v, err := parseChapterVerse(text)
		if err != nil {
			return VerseRange{}, State{}, malformed(text, err)
		}
		start.Chapter, start.Verse = ch, v
		end = start
		next.WasVerse = true
	} else {
		n, err := parsePositive(text)
		if err != nil {
			return VerseRange{}, State{}, malformed(text, err)
		}
		if prev.WasVerse {
			start.Chapter, start.Verse = prev.Chapter, n
			end = start
		} else {
			start.Chapter, start.Verse = n, 1
			end.Chapter, end.Verse = n, r.canon.LastVerse(prev.Book, n)
			next.WasVerse = false
		}
	}

	next.Chapter, next.Verse = end.Chapter, end.Verse
	r.logger.Debugf("continuation %q: %s (verse context %v)", text, VerseRange{Start: start, End: end}, next.WasVerse)
	return VerseRange{Start: start, End: end}, next, nil
}
