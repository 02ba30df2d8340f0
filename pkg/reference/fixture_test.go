package reference

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	genesis   BookID = 10
	exodus    BookID = 20
	leviticus BookID = 30
	numbers   BookID = 40
	song      BookID = 260
	hymn      BookID = 261
	john      BookID = 500
	romans    BookID = 520
	firstJn   BookID = 690
)

var johnChapters = []int{51, 25, 36, 54, 47, 71, 53, 59, 41, 42, 57, 50, 38, 31, 27, 33, 26, 40, 42, 31, 25}

func chapters(counts ...int) map[int]int {
	m := make(map[int]int, len(counts))
	for i, n := range counts {
		m[i+1] = n
	}
	return m
}

func testCanon() *CanonIndex {
	return NewCanonIndex(map[BookID]map[int]int{
		genesis:   chapters(31, 25),
		exodus:    chapters(22, 25),
		leviticus: chapters(17),
		numbers:   chapters(54),
		song:      chapters(17, 17, 11),
		hymn:      chapters(5),
		john:      chapters(johnChapters...),
		romans:    chapters(32, 29, 31),
		firstJn:   chapters(10, 29, 24),
	})
}

func testAliases(t *testing.T) *AliasTable {
	t.Helper()
	a := NewAliasTable()
	require.NoError(t, a.Add(genesis, "Genesis", "Gen", "Gn"))
	require.NoError(t, a.Add(exodus, "Exodus", "Exo", "Ex"))
	require.NoError(t, a.Add(leviticus, "Leviticus", "Lev"))
	require.NoError(t, a.Add(numbers, "Numbers", "Num"))
	require.NoError(t, a.Add(hymn, "Song"))
	require.NoError(t, a.Add(song, "Song of Solomon", "Song of Songs", "SS"))
	require.NoError(t, a.Add(john, "John", "Jhn", "Jn"))
	require.NoError(t, a.Add(romans, "Romans", "Rom", "Ro", "Rm"))
	require.NoError(t, a.Add(firstJn, "1 John", "I John", "1Jn", "I Jn"))
	return a
}

func testResolver(t *testing.T, opts ...Option) *Resolver {
	t.Helper()
	return NewResolver(testAliases(t), testCanon(), opts...)
}

func span(book BookID, sc, sv, ec, ev int) VerseRange {
	return VerseRange{
		Start: Position{Book: book, Chapter: sc, Verse: sv},
		End:   Position{Book: book, Chapter: ec, Verse: ev},
	}
}
