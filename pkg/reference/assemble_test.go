package reference

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssemble(t *testing.T) {
	frags := []Fragment{
		{Clause: 0, Range: span(john, 3, 16, 3, 16)},
		{Clause: 0, Range: span(john, 3, 18, 3, 18)},
		{Clause: 1, Range: span(john, 4, 1, 4, 54)},
		{Clause: 2, Range: span(genesis, 1, 1, 1, 31)},
		{Clause: 2, Range: span(exodus, 2, 1, 2, 25)},
	}
	got := Assemble(frags)
	require.Equal(t, []VerseRange{
		span(john, 3, 16, 3, 18),
		span(john, 4, 1, 4, 54),
		{Start: Position{genesis, 1, 1}, End: Position{exodus, 2, 25}},
	}, got)
	require.Nil(t, Assemble(nil))
}

func TestCountVerses(t *testing.T) {
	c := testCanon()
	ranges := []VerseRange{
		span(john, 3, 16, 3, 18),
		span(john, 3, 1, 3, 36),
		span(john, 3, 30, 4, 2),
		span(john, 2, 20, 4, 1),
		span(john, 99, 1, 99, 1),
		{Start: Position{genesis, 2, 20}, End: Position{numbers, 1, 3}},
		{Start: Position{genesis, 1, 1}, End: Position{exodus, 2, 25}},
	}
	require.Equal(t, []int{3, 36, 9, 6 + 36 + 1, 1, 6 + 47 + 17 + 3, 56 + 47}, CountVerses(ranges, c))
}

func TestCountVersesMatchesResolve(t *testing.T) {
	r := testResolver(t)
	ranges, err := r.Resolve("John 3:16-18; 4; Rom")
	require.NoError(t, err)
	require.Equal(t, []int{3, 54, 32 + 29 + 31}, CountVerses(ranges, r.Canon()))
}
