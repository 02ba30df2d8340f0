package catalog

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// DefaultCellWidth is the wrap width used by PrintTable.
const DefaultCellWidth = 50

var tableHeaders = []string{"Language", "Module", "Description"}

// wrapText breaks text into lines of at most width runes, splitting on
// whitespace only. A single word longer than width gets its own line.
func wrapText(text string, width int) []string {
	var (
		lines []string
		cur   []string
		n     int
	)
	for _, word := range strings.Fields(text) {
		wl := utf8.RuneCountInString(word)
		if len(cur) > 0 && n+wl+len(cur) > width {
			lines = append(lines, strings.Join(cur, " "))
			cur, n = nil, 0
		}
		cur = append(cur, word)
		n += wl
	}
	if len(cur) > 0 {
		lines = append(lines, strings.Join(cur, " "))
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func row(m Module) []string {
	return []string{m.Language, m.Name, CleanDescription(m.Description)}
}

// PrintTable writes modules as a wrapped, ruled table.
func PrintTable(w io.Writer, modules []Module, cellWidth int) {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	widths := make([]int, len(tableHeaders))
	for i, h := range tableHeaders {
		widths[i] = utf8.RuneCountInString(h)
	}
	wrapped := make([][][]string, len(modules))
	for r, m := range modules {
		cells := row(m)
		wrapped[r] = make([][]string, len(cells))
		for i, cell := range cells {
			wrapped[r][i] = wrapText(cell, cellWidth)
			for _, line := range wrapped[r][i] {
				if n := utf8.RuneCountInString(line); n > widths[i] {
					widths[i] = n
				}
			}
		}
	}

	printLine := func(cells []string) {
		padded := make([]string, len(cells))
		for i, c := range cells {
			padded[i] = pad(c, widths[i])
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(padded, " "), " "))
	}
	total := len(widths) - 1
	for _, wd := range widths {
		total += wd
	}
	separator := strings.Repeat("〰", total)

	printLine(tableHeaders)
	fmt.Fprintln(w, separator)
	for _, cells := range wrapped {
		height := 0
		for _, c := range cells {
			if len(c) > height {
				height = len(c)
			}
		}
		for l := 0; l < height; l++ {
			line := make([]string, len(cells))
			for i, c := range cells {
				if l < len(c) {
					line[i] = c[l]
				}
			}
			printLine(line)
		}
		fmt.Fprintln(w, separator)
	}
}

// PrintSimple writes one tab-separated line per module.
func PrintSimple(w io.Writer, modules []Module) {
	for _, m := range modules {
		cells := row(m)
		for i, c := range cells {
			cells[i] = strings.ReplaceAll(c, "\n", " ")
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
}
