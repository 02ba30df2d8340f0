// Package render turns MyBible verse markup into terminal text and expands
// output format strings.
package render

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

type mode int

const (
	modePlain mode = iota
	modeANSI
	modeANSINoStrong
)

// indentMark stands in for <t> until the text has been trimmed, so the
// indentation of a leading <t> survives.
const indentMark = "\x00"

var (
	notesPattern  = regexp.MustCompile(`\{[^}]*\}`)
	spacesPattern = regexp.MustCompile(`\s+`)
)

// Plain returns the verse text without markup. Paragraph and line breaks
// become newlines; Strong numbers, footnote markers and headings are dropped
// with their content; <t> starts an indented line.
func Plain(markup string) string {
	return renderMarkup(markup, modePlain, Palette{})
}

// Flat is Plain without {notes} and line breaks, on a single line.
func Flat(markup string) string {
	s := notesPattern.ReplaceAllString(Plain(markup), "")
	s = strings.ReplaceAll(s, "\n", "")
	return strings.TrimSpace(spacesPattern.ReplaceAllString(s, " "))
}

// ANSI renders the markup for a terminal. Strong numbers are kept as
// <S1234> in light blue italics.
func (p Palette) ANSI(markup string) string {
	return renderMarkup(markup, modeANSI, p)
}

// ANSINoStrong is ANSI without the Strong numbers.
func (p Palette) ANSINoStrong(markup string) string {
	return renderMarkup(markup, modeANSINoStrong, p)
}

// tagName extracts the name of a tag from its raw bytes. The tokenizer
// lower-cases names, but MyBible tells <H> (Strong) from <h> (heading).
func tagName(raw []byte) string {
	s := strings.TrimPrefix(strings.TrimPrefix(string(raw), "<"), "/")
	if i := strings.IndexAny(s, " \t\r\n/>"); i >= 0 {
		s = s[:i]
	}
	return s
}

func isStrong(name string) bool {
	return name == "S" || name == "G" || name == "H"
}

func renderMarkup(markup string, m mode, p Palette) string {
	z := html.NewTokenizer(strings.NewReader(markup))
	var (
		b     strings.Builder
		skip  string
		depth int
	)
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		raw := z.Raw()

		if skip != "" {
			switch tt {
			case html.StartTagToken:
				if tagName(raw) == skip {
					depth++
				}
			case html.EndTagToken:
				if tagName(raw) == skip {
					depth--
					if depth == 0 {
						skip = ""
					}
				}
			}
			continue
		}

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			name := tagName(raw)
			dropped := name == "f" || name == "h" || (isStrong(name) && m != modeANSI)
			if dropped {
				if tt == html.StartTagToken {
					skip, depth = name, 1
				}
				continue
			}
			b.WriteString(openTag(name, string(raw), m, p))
		case html.EndTagToken:
			b.WriteString(closeTag(tagName(raw), string(raw), m, p))
		default:
			b.Write(raw)
		}
	}
	out := strings.TrimSpace(b.String())
	return strings.ReplaceAll(out, indentMark, "\n    ")
}

func openTag(name, raw string, m mode, p Palette) string {
	color := m != modePlain
	switch name {
	case "pb", "br":
		return "\n"
	case "t":
		return indentMark
	case "S", "G", "H":
		return p.LightBlue + p.Italics + "<" + name
	case "J":
		if color {
			return p.Red
		}
		return ""
	case "n":
		if color {
			return p.LightGrey + p.Italics
		}
		return ""
	case "e":
		if color {
			return p.Bold
		}
		return ""
	case "i":
		if color {
			return p.Italics
		}
		return ""
	}
	return raw
}

func closeTag(name, raw string, m mode, p Palette) string {
	switch name {
	case "pb", "br", "t", "f", "h":
		return ""
	case "S", "G", "H":
		if m == modeANSI {
			return ">" + p.Reset
		}
		return ""
	case "J", "n", "e", "i":
		if m != modePlain {
			return p.Reset
		}
		return ""
	}
	return raw
}
