package render

import "regexp"

// Palette holds the escape sequences used for coloured output. The zero
// value renders without any escapes.
type Palette struct {
	Bold      string
	LightGrey string
	LightBlue string
	Red       string
	Italics   string
	Reset     string
}

// DefaultPalette is the ANSI palette used on terminals.
var DefaultPalette = Palette{
	Bold:      "\033[1m",
	LightGrey: "\033[0;37m",
	LightBlue: "\033[94m",
	Red:       "\033[0;31m",
	Italics:   "\033[3m",
	Reset:     "\033[0m",
}

var ansiEscape = regexp.MustCompile(`\x1B\[[0-9;]*[mK]`)

// StripANSI removes colour and erase-line escapes from s.
func StripANSI(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}
