package reference

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// bookPhrasePattern matches a leading book-like phrase: an optional book
// ordinal ("1 ", "2.") followed by one or more words.
var bookPhrasePattern = regexp.MustCompile(`^(?:\d+\.?\s*)?[\p{L}_][\p{L}\p{N}_']*\.?(?:\s+[\p{L}_][\p{L}\p{N}_']*\.?)*`)

// leadingBookPhrase returns the book-name candidate at the start of part, or
// "" if the leading span does not end in a letter.
func leadingBookPhrase(part string) string {
	m := bookPhrasePattern.FindString(part)
	m = strings.TrimRight(m, ".")
	if m == "" {
		return ""
	}
	last, _ := utf8.DecodeLastRuneInString(m)
	if !unicode.IsLetter(last) {
		return ""
	}
	return m
}

// RewriteSemicolons turns semicolon-separated clauses into comma-separated
// ones, prefixing every clause that lacks its own book name with the last
// book name seen to its left. Input without a semicolon is returned as is.
// Empty clauses are dropped.
func RewriteSemicolons(ref string) (string, error) {
	parts := strings.Split(ref, ";")
	if len(parts) == 1 {
		return ref, nil
	}
	var (
		out  []string
		last string
	)
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if phrase := leadingBookPhrase(part); phrase != "" {
			last = phrase
			out = append(out, part)
			continue
		}
		if last == "" {
			return "", invalid(part, errors.New("no book name to carry over"))
		}
		out = append(out, last+" "+part)
	}
	if len(out) == 0 {
		return "", malformed(ref, errors.New("no clauses"))
	}
	return strings.Join(out, ", "), nil
}

// Clause is one comma-separated piece of a reference, split on dashes.
// Fragments[0] is the start; the rest are continuations.
type Clause struct {
	Fragments []string
}

// SplitClauses splits a rewritten reference on commas and each clause on
// dashes. Fragment text is kept untrimmed.
func SplitClauses(ref string) []Clause {
	raw := strings.Split(ref, ",")
	clauses := make([]Clause, len(raw))
	for i, c := range raw {
		clauses[i] = Clause{Fragments: strings.Split(c, "-")}
	}
	return clauses
}
