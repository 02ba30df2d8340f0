package reference

// Assemble folds fragments into one range per clause: the first fragment's
// start through the last fragment's end.
func Assemble(frags []Fragment) []VerseRange {
	var out []VerseRange
	for i, f := range frags {
		if i == 0 || f.Clause != frags[i-1].Clause {
			out = append(out, f.Range)
			continue
		}
		out[len(out)-1].End = f.Range.End
	}
	return out
}

// CountVerses returns the number of verses each range covers according to
// canon. Chapters missing from the canon contribute nothing.
func CountVerses(ranges []VerseRange, canon *CanonIndex) []int {
	counts := make([]int, len(ranges))
	for i, r := range ranges {
		if r.Start.Book == r.End.Book {
			counts[i] = versesInBook(canon, r.Start.Book, r.Start.Chapter, r.Start.Verse, r.End.Chapter, r.End.Verse)
			continue
		}
		total := 0
		if last, err := canon.LastChapter(r.Start.Book); err == nil {
			total += versesInBook(canon, r.Start.Book, r.Start.Chapter, r.Start.Verse, last, canon.LastVerse(r.Start.Book, last))
		}
		for _, book := range canon.Books() {
			if book <= r.Start.Book || book >= r.End.Book {
				continue
			}
			last, _ := canon.LastChapter(book)
			total += versesInBook(canon, book, 1, 1, last, canon.LastVerse(book, last))
		}
		total += versesInBook(canon, r.End.Book, 1, 1, r.End.Chapter, r.End.Verse)
		counts[i] = total
	}
	return counts
}

func versesInBook(canon *CanonIndex, book BookID, startCh, startV, endCh, endV int) int {
	total := 0
	for ch := startCh; ch <= endCh; ch++ {
		var n int
		switch {
		case ch == startCh && ch == endCh:
			n = endV - startV + 1
		case ch == startCh:
			if c, ok := canon.VerseCount(book, ch); ok {
				n = c - startV + 1
			}
		case ch == endCh:
			n = endV
		default:
			n, _ = canon.VerseCount(book, ch)
		}
		if n > 0 {
			total += n
		}
	}
	return total
}
