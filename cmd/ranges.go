package cmd

import (
	"fmt"

	"github.com/mybible-cli/mybible-cli/pkg/reference"
	"github.com/mybible-cli/mybible-cli/pkg/render"
)

// rangeLabel writes r the way a reader would, e.g. "John 3:16-18",
// "John 3:16-4:2" or "John 21:25-Romans 1:1".
func rangeLabel(r reference.VerseRange, names render.BookNamer) string {
	startBook, _ := render.BookNames(names, r.Start.Book)
	start := fmt.Sprintf("%s %d:%d", startBook, r.Start.Chapter, r.Start.Verse)

	switch {
	case r.CrossBook():
		endBook, _ := render.BookNames(names, r.End.Book)
		return fmt.Sprintf("%s-%s %d:%d", start, endBook, r.End.Chapter, r.End.Verse)
	case r.Start.Chapter != r.End.Chapter:
		return fmt.Sprintf("%s-%d:%d", start, r.End.Chapter, r.End.Verse)
	case r.Start.Verse != r.End.Verse:
		return fmt.Sprintf("%s-%d", start, r.End.Verse)
	}
	return start
}
