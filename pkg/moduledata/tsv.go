package moduledata

import (
	"encoding/csv"
	"errors"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

// SiblingPath returns path with its extension replaced by ext.
func SiblingPath(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// JSONToTSV converts a mapping document to tab-separated lines: the key,
// then each name. Order follows the JSON file.
func JSONToTSV(data []byte) ([]byte, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, errors.New("mapping must be a JSON object")
	}
	var lines []string
	root.ForEach(func(key, value gjson.Result) bool {
		cells := []string{key.String()}
		for _, v := range value.Array() {
			cells = append(cells, v.String())
		}
		lines = append(lines, strings.Join(cells, "\t"))
		return true
	})
	return []byte(strings.Join(lines, "\n")), nil
}

func newTSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr
}

// TSVToJSON converts tab-separated lines back to a mapping document. Blank
// cells are dropped; the first remaining cell is the key.
func TSVToJSON(r io.Reader) ([]byte, error) {
	cr := newTSVReader(r)
	var (
		keys   []string
		values [][]string
	)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		var cells []string
		for _, c := range row {
			if strings.TrimSpace(c) != "" {
				cells = append(cells, c)
			}
		}
		if len(cells) == 0 {
			continue
		}
		keys = append(keys, cells[0])
		values = append(values, append([]string{}, cells[1:]...))
	}
	return DumpLines(keys, values), nil
}

// LineRepeat is a value that occurs more than once on a single line.
type LineRepeat struct {
	Line   int
	Values []string
}

// FileRepeat is a value that occurs on more than one line.
type FileRepeat struct {
	Value string
	Lines []int
}

// TSVDuplicates reports repeated cells in a mapping TSV, both within a
// line and across lines. Line numbers start at 1.
func TSVDuplicates(r io.Reader) ([]LineRepeat, []FileRepeat, error) {
	cr := newTSVReader(r)
	var (
		inLine []LineRepeat
		order  []string
		where  = make(map[string][]int)
	)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		line, _ := cr.FieldPos(0)
		seen := make(map[string]int)
		for _, cell := range row {
			seen[cell]++
			lines := where[cell]
			if len(lines) == 0 {
				order = append(order, cell)
			}
			if len(lines) == 0 || lines[len(lines)-1] != line {
				where[cell] = append(lines, line)
			}
		}
		var repeated []string
		for cell, n := range seen {
			if n > 1 {
				repeated = append(repeated, cell)
			}
		}
		if len(repeated) > 0 {
			sort.Strings(repeated)
			inLine = append(inLine, LineRepeat{Line: line, Values: repeated})
		}
	}

	var across []FileRepeat
	for _, cell := range order {
		if len(where[cell]) > 1 {
			across = append(across, FileRepeat{Value: cell, Lines: where[cell]})
		}
	}
	return inLine, across, nil
}
