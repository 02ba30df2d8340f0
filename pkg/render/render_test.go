package render

import (
	"testing"

	"github.com/mybible-cli/mybible-cli/pkg/reference"
	"github.com/mybible-cli/mybible-cli/pkg/storage"
	"github.com/stretchr/testify/require"
)

const sampleVerse = `<pb/><t>In the beginning<S>7225</S> <J>was the Word</J>,<f>[1]</f> <n>{or, Logos}</n> and <e>the</e> <i>Word</i> was God.</t>`

var testPalette = Palette{
	Bold:      "[b]",
	LightGrey: "[g]",
	LightBlue: "[blue]",
	Red:       "[red]",
	Italics:   "[it]",
	Reset:     "[/]",
}

func TestPlain(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{"sample", sampleVerse, "\n    In the beginning was the Word, {or, Logos} and the Word was God."},
		{"breaks", "first<br/>second<pb/>third", "first\nsecond\nthird"},
		{"heading", "<h>Chapter 1</h>Text", "Text"},
		{"strong letters", "a<G>3056</G> b<H>1254</H>", "a b"},
		{"heading is not hebrew strong", "<h>Title</h>x<H>7225</H>", "x"},
		{"unknown tags kept", "x<sup>2</sup>", "x<sup>2</sup>"},
		{"entities kept", "A &amp; B", "A &amp; B"},
		{"trailing strong trimmed", "word<S>1</S> ", "word"},
		{"nested footnote", "a<f>[<i>1</i>]</f>b", "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Plain(tt.markup))
		})
	}
}

func TestFlat(t *testing.T) {
	require.Equal(t, "In the beginning was the Word, and the Word was God.", Flat(sampleVerse))
	require.Equal(t, "ab", Flat("a<br/>b"))
}

func TestANSI(t *testing.T) {
	got := testPalette.ANSI(`God<S>430</S> <J>said</J>`)
	require.Equal(t, "God[blue][it]<S430>[/] [red]said[/]", got)

	got = testPalette.ANSI(`<n>note</n> <e>bold</e> <i>it</i><f>[2]</f><h>Head</h>`)
	require.Equal(t, "[g][it]note[/] [b]bold[/] [it]it[/]", got)

	got = testPalette.ANSINoStrong(`God<S>430</S> <J>said</J>`)
	require.Equal(t, "God [red]said[/]", got)
}

func TestStripANSI(t *testing.T) {
	require.Equal(t, "God<S430> said", StripANSI(DefaultPalette.ANSI("God<S>430</S> <J>said</J>")))
	require.Equal(t, "plain", StripANSI("\x1b[2Kplain"))
}

type names map[reference.BookID][]string

func (n names) Names(book reference.BookID) []string { return n[book] }

func TestFormatVerse(t *testing.T) {
	v := storage.Verse{Book: 500, Chapter: 3, Verse: 16, Text: "For God<S>2316</S> so loved"}
	books := names{500: {"John", "Jn"}}

	tests := []struct {
		format string
		want   string
	}{
		{DefaultFormat, "John 3:16: For God so loved (KJV)"},
		{`%a %b\t%T`, "Jn 500\tFor God<S>2316</S> so loved"},
		{`%z\n%m`, "For God so loved\nKJV"},
		{"100% %x\\q", "100% %x\\q"},
		{"%Z", "For God so loved"},
		{"%A", "For God[blue][it]<S2316>[/] so loved"},
		{"", ""},
	}
	for _, tt := range tests {
		f, err := Compile(tt.format, testPalette)
		require.NoError(t, err, tt.format)
		require.Equal(t, tt.format, f.String())
		require.Equal(t, tt.want, f.Verse(v, books, "KJV"), tt.format)
	}
}

func TestFormatBookNameFallback(t *testing.T) {
	f, err := Compile("%f|%a", Palette{})
	require.NoError(t, err)

	v := storage.Verse{Book: 730}
	require.Equal(t, "730|730", f.Verse(v, names{}, ""))
	require.Equal(t, "730|730", f.Verse(v, nil, ""))
	require.Equal(t, "Revelation|Revelation", f.Verse(v, names{730: {"Revelation"}}, ""))
	require.Equal(t, "Rev|Rev", f.Verse(v, names{730: {"", "Rev"}}, ""))
}
