package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/mybible-cli/mybible-cli/pkg/reference"
	"github.com/mybible-cli/mybible-cli/pkg/storage"
)

// DefaultFormat is the format used when none is configured.
const DefaultFormat = "%f %c:%v: %t (%m)"

// Placeholders lists the supported format placeholders in help order.
var Placeholders = []string{"f", "a", "b", "c", "v", "T", "t", "z", "A", "Z", "m"}

//nolint:govet // participle grammar tags are not standard struct tags
type formatGrammar struct {
	Parts []*formatPart `parser:"@@*"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type formatPart struct {
	Spec   *string `parser:"  @Spec"`
	Escape *string `parser:"| @Escape"`
	Text   *string `parser:"| @Text"`
}

// A lone % or backslash that starts no placeholder is literal text.
var formatLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Spec", Pattern: `%[faAbcvTtzZm]`},
	{Name: "Escape", Pattern: `\\[tn]`},
	{Name: "Text", Pattern: `[^%\\]+|[%\\]`},
})

var formatParser = participle.MustBuild[formatGrammar](
	participle.Lexer(formatLexer),
)

// BookNamer provides the full and abbreviated names of a book, in that
// order. moduledata.Mapping satisfies it.
type BookNamer interface {
	Names(book reference.BookID) []string
}

// Format is a compiled output format string.
type Format struct {
	source  string
	parts   []*formatPart
	palette Palette
}

// Compile parses a format string. Colour placeholders use palette.
func Compile(format string, palette Palette) (*Format, error) {
	parsed, err := formatParser.ParseString("", format)
	if err != nil {
		return nil, fmt.Errorf("invalid format string %q: %w", format, err)
	}
	return &Format{source: format, parts: parsed.Parts, palette: palette}, nil
}

// String returns the format string as given.
func (f *Format) String() string {
	return f.source
}

// Verse expands the format for one verse of module.
func (f *Format) Verse(v storage.Verse, names BookNamer, module string) string {
	var b strings.Builder
	for _, p := range f.parts {
		switch {
		case p.Spec != nil:
			b.WriteString(f.expand((*p.Spec)[1], v, names, module))
		case p.Escape != nil:
			if *p.Escape == `\t` {
				b.WriteByte('\t')
			} else {
				b.WriteByte('\n')
			}
		case p.Text != nil:
			b.WriteString(*p.Text)
		}
	}
	return b.String()
}

func (f *Format) expand(spec byte, v storage.Verse, names BookNamer, module string) string {
	switch spec {
	case 'f':
		full, _ := BookNames(names, v.Book)
		return full
	case 'a':
		_, short := BookNames(names, v.Book)
		return short
	case 'b':
		return strconv.Itoa(int(v.Book))
	case 'c':
		return strconv.Itoa(v.Chapter)
	case 'v':
		return strconv.Itoa(v.Verse)
	case 'T':
		return v.Text
	case 't':
		return Plain(v.Text)
	case 'z':
		return Flat(v.Text)
	case 'A':
		return f.palette.ANSI(v.Text)
	case 'Z':
		return f.palette.ANSINoStrong(v.Text)
	case 'm':
		return module
	}
	return ""
}

// BookNames returns the full and abbreviated names of book. It falls back
// to the book number when the table has no entry, and to the full name
// when there is no abbreviation.
func BookNames(names BookNamer, book reference.BookID) (string, string) {
	var list []string
	if names != nil {
		list = names.Names(book)
	}
	switch len(list) {
	case 0:
		n := strconv.Itoa(int(book))
		return n, n
	case 1:
		return list[0], list[0]
	}
	full, short := list[0], list[1]
	if short == "" {
		short = full
	}
	if full == "" {
		full = short
	}
	return full, short
}
