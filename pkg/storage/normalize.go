package storage

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// DecodeName turns a raw book-name column into UTF-8. Older Cyrillic
// modules store names in Windows-1251; anything that is not valid UTF-8 is
// decoded as such.
func DecodeName(raw []byte) string {
	if utf8.Valid(raw) {
		return strings.TrimSpace(norm.NFC.String(string(raw)))
	}
	s, err := charmap.Windows1251.NewDecoder().Bytes(raw)
	if err != nil {
		return strings.TrimSpace(strings.ToValidUTF8(string(raw), "\uFFFD"))
	}
	return strings.TrimSpace(string(s))
}
