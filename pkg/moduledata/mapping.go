// Package moduledata manages the JSON artifacts that sit beside MyBible
// modules: alias mappings, per-module book-name and verse-count caches, and
// the TSV round trip used to edit mappings by hand.
package moduledata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mybible-cli/mybible-cli/internal/utils"
	"github.com/mybible-cli/mybible-cli/pkg/reference"
	"github.com/mybible-cli/mybible-cli/pkg/storage"
	"github.com/tidwall/gjson"
)

// Entry is one book and its name variants.
type Entry struct {
	Book  reference.BookID
	Names []string
}

// Mapping is an ordered list of entries, in file order.
type Mapping []Entry

// Names returns the variants for book, or nil.
func (m Mapping) Names(book reference.BookID) []string {
	for _, e := range m {
		if e.Book == book {
			return e.Names
		}
	}
	return nil
}

// Books returns the book numbers in order.
func (m Mapping) Books() []reference.BookID {
	out := make([]reference.BookID, len(m))
	for i, e := range m {
		out[i] = e.Book
	}
	return out
}

// AliasTable builds the resolver's lookup table from m. Names that are
// blank after normalization are skipped; a book left with none is dropped.
func (m Mapping) AliasTable() (*reference.AliasTable, error) {
	t := reference.NewAliasTable()
	for _, e := range m {
		var names []string
		for _, n := range e.Names {
			if reference.NormalizeBookName(n) != "" {
				names = append(names, n)
			}
		}
		if len(names) == 0 {
			continue
		}
		if err := t.Add(e.Book, names...); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Dump renders m as JSON with one book per line.
func (m Mapping) Dump() []byte {
	keys := make([]string, len(m))
	values := make([][]string, len(m))
	for i, e := range m {
		keys[i] = strconv.Itoa(int(e.Book))
		values[i] = e.Names
	}
	return DumpLines(keys, values)
}

// DumpLines writes {"key": ["a", "b"], ...} keeping each key and its list
// on one line.
func DumpLines(keys []string, values [][]string) []byte {
	var b bytes.Buffer
	b.WriteString("{\n")
	for i, key := range keys {
		b.WriteString("  ")
		b.Write(jsonString(key))
		b.WriteString(": [")
		for j, v := range values[i] {
			if j > 0 {
				b.WriteString(", ")
			}
			b.Write(jsonString(v))
		}
		b.WriteString("]")
		if i < len(keys)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.Bytes()
}

func jsonString(s string) []byte {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return bytes.TrimRight(b.Bytes(), "\n")
}

// ParseMapping reads a mapping document. Keys must be book numbers and
// values arrays of strings; order is preserved.
func ParseMapping(data []byte) (Mapping, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("mapping must be a JSON object")
	}
	var (
		out Mapping
		err error
	)
	root.ForEach(func(key, value gjson.Result) bool {
		book, convErr := strconv.Atoi(strings.TrimSpace(key.String()))
		if convErr != nil {
			err = fmt.Errorf("key %q is not a book number", key.String())
			return false
		}
		if !value.IsArray() {
			err = fmt.Errorf("book %d: names must be an array", book)
			return false
		}
		var names []string
		for _, n := range value.Array() {
			if n.Type != gjson.String {
				err = fmt.Errorf("book %d: name %s is not a string", book, n.Raw)
				return false
			}
			names = append(names, n.String())
		}
		out = append(out, Entry{Book: reference.BookID(book), Names: names})
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LoadMapping reads and parses the mapping file at path.
func LoadMapping(path string) (Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := ParseMapping(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// EnsureMapping writes DefaultMapping to path unless a file already exists
// there. It reports whether the file was created.
func EnsureMapping(path string) (bool, error) {
	if utils.FileExists(path) {
		return false, nil
	}
	created := false
	err := utils.WithFileLock(path, func() error {
		if utils.FileExists(path) {
			return nil
		}
		created = true
		return utils.WriteFileAtomic(path, DefaultMapping.Dump(), 0o644)
	})
	return created, err
}

// FromBooks builds a mapping from a module's own books table. Each entry
// holds exactly the long name then the short name.
func FromBooks(books []storage.Book) Mapping {
	out := make(Mapping, 0, len(books))
	for _, b := range books {
		out = append(out, Entry{Book: b.Number, Names: []string{b.LongName, b.ShortName}})
	}
	return out
}
