package reference

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// isSpaceVariant reports the space characters a pasted reference may carry:
// ordinary and non-breaking spaces, the typographic spaces and the zero-width
// family.
func isSpaceVariant(r rune) bool {
	switch {
	case r == ' ', r == '\t', r == '\n', r == '\r':
		return true
	case r == '\u00a0', r == '\u1680', r == '\u202f', r == '\u205f', r == '\u3000':
		return true
	case r >= '\u2000' && r <= '\u200a':
		return true
	case r == '\u200b', r == '\u200c', r == '\u200d', r == '\u2060', r == '\ufeff':
		return true
	}
	return false
}

func isDashVariant(r rune) bool {
	return r == '-' || r == '\u2010' || r == '\u2013' || r == '\u2014'
}

func isApostropheVariant(r rune) bool {
	switch r {
	case '\'', '`', '\u2018', '\u2019', '\u201b', '\u2032', '\u02bc', '\u275c', '\uff07':
		return true
	}
	return false
}

// NormalizeReference prepares raw user input for tokenizing: runs of space
// variants become one ASCII space, dash and apostrophe variants become their
// ASCII forms, and the result is lower-cased.
func NormalizeReference(s string) string {
	s = norm.NFC.String(s)
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if isSpaceVariant(r) {
			if !inSpace {
				b.WriteByte(' ')
			}
			inSpace = true
			continue
		}
		inSpace = false
		switch {
		case isDashVariant(r):
			b.WriteByte('-')
		case isApostropheVariant(r):
			b.WriteByte('\'')
		default:
			b.WriteRune(r)
		}
	}
	return strings.ToLower(b.String())
}

// NormalizeBookName reduces a book name or alias to its comparison key:
// every space variant and period removed, lower-cased.
func NormalizeBookName(s string) string {
	s = norm.NFC.String(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isSpaceVariant(r) || r == '.' {
			continue
		}
		if isApostropheVariant(r) {
			r = '\''
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
