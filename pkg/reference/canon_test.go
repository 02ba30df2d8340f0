package reference

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonIndex(t *testing.T) {
	c := testCanon()

	last, err := c.LastChapter(john)
	require.NoError(t, err)
	require.Equal(t, 21, last)
	require.Equal(t, 25, c.LastVerse(john, last))
	require.Equal(t, 36, c.LastVerse(john, 3))

	// Absent chapters answer 1 rather than failing.
	require.Equal(t, 1, c.LastVerse(john, 99))
	require.Equal(t, 1, c.LastVerse(999, 1))

	_, err = c.LastChapter(999)
	require.ErrorIs(t, err, ErrUnknownBook)

	require.True(t, c.Has(john))
	require.False(t, c.Has(999))
	require.Equal(t, []BookID{genesis, exodus, leviticus, numbers, song, hymn, john, romans, firstJn}, c.Books())
	require.Equal(t, []int{1, 2, 3}, c.Chapters(romans))
}

func TestNewCanonIndexDropsNonPositive(t *testing.T) {
	c := NewCanonIndex(map[BookID]map[int]int{
		10: {1: 31, 0: 5, 2: 0},
		20: {-1: 4},
	})
	require.Equal(t, map[BookID]map[int]int{10: {1: 31}}, c.Counts())
	require.False(t, c.Has(20))
}

func TestCanonCountsIsCopy(t *testing.T) {
	c := testCanon()
	counts := c.Counts()
	counts[john][3] = 1
	require.Equal(t, 36, c.LastVerse(john, 3))
}

func TestNilCanonIndex(t *testing.T) {
	var c *CanonIndex
	require.False(t, c.Has(john))
	require.Nil(t, c.Books())
	_, err := c.LastChapter(john)
	require.ErrorIs(t, err, ErrUnknownBook)
}
