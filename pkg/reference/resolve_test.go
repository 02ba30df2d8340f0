package reference

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	r := testResolver(t)

	tests := []struct {
		name string
		ref  string
		want []VerseRange
	}{
		{"single verse", "John 3:16", []VerseRange{span(john, 3, 16, 3, 16)}},
		{"whole chapter", "John 3", []VerseRange{span(john, 3, 1, 3, 36)}},
		{"verse range", "John 3:16-18", []VerseRange{span(john, 3, 16, 3, 18)}},
		{"chapter range", "John 3-4", []VerseRange{span(john, 3, 1, 4, 54)}},
		{"verse to verse across chapters", "John 3:16-4:2", []VerseRange{span(john, 3, 16, 4, 2)}},
		{"whole book", "John", []VerseRange{span(john, 1, 1, 21, 25)}},
		{"inherited chapter", "John 3, 4", []VerseRange{
			span(john, 3, 1, 3, 36),
			span(john, 4, 1, 4, 54),
		}},
		{"inherited verse", "John 3:16, 18", []VerseRange{
			span(john, 3, 16, 3, 16),
			span(john, 3, 18, 3, 18),
		}},
		{"verse context persists", "John 3:16, 18, 4", []VerseRange{
			span(john, 3, 16, 3, 16),
			span(john, 3, 18, 3, 18),
			span(john, 3, 4, 3, 4),
		}},
		{"explicit book resets chapter", "John 3:16, John 4", []VerseRange{
			span(john, 3, 16, 3, 16),
			span(john, 4, 1, 4, 54),
		}},
		{"semicolon switches book", "John 3:16; Rom 2:5", []VerseRange{
			span(john, 3, 16, 3, 16),
			span(romans, 2, 5, 2, 5),
		}},
		{"numbered book", "1 John 2:3", []VerseRange{span(firstJn, 2, 3, 2, 3)}},
		{"numbered book semicolon", "1 John 2:3; 3:1", []VerseRange{
			span(firstJn, 2, 3, 2, 3),
			span(firstJn, 3, 1, 3, 1),
		}},
		{"abbreviation with period", "Jn. 3:16", []VerseRange{span(john, 3, 16, 3, 16)}},
		{"case and spacing", "  jOHN   3:16 ", []VerseRange{span(john, 3, 16, 3, 16)}},
		{"non-breaking space and en dash", "John\u00a03:16\u201318", []VerseRange{span(john, 3, 16, 3, 18)}},
		{"multi-word book", "Song of Solomon 2:1", []VerseRange{span(song, 2, 1, 2, 1)}},
		{"short alias still works", "Song 1", []VerseRange{span(hymn, 1, 1, 1, 5)}},
		{"missing chapter is one verse", "John 99", []VerseRange{span(john, 99, 1, 99, 1)}},
		{"spaced dash verse", "John 3:16 - 18", []VerseRange{span(john, 3, 16, 3, 18)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.ref)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestResolveCrossBook(t *testing.T) {
	r := testResolver(t)

	got, err := r.Resolve("Gen 1 - Exo 2")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, Position{Book: genesis, Chapter: 1, Verse: 1}, got[0].Start)
	require.Equal(t, Position{Book: exodus, Chapter: 2, Verse: 25}, got[0].End)
	require.True(t, got[0].CrossBook())
}

func TestResolveSemicolonEquivalence(t *testing.T) {
	r := testResolver(t)

	a, err := r.Resolve("John 3:16; 4:1")
	require.NoError(t, err)
	b, err := r.Resolve("John 3:16, John 4:1")
	require.NoError(t, err)
	require.Equal(t, b, a)
}

func TestResolveIdempotent(t *testing.T) {
	r := testResolver(t)
	const ref = "John 3:16-18, 4; Rom 2:5, 7-3:1"

	first, err := r.Resolve(ref)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := r.Resolve(ref)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		kind error
		opts []Option
	}{
		{"unknown book without context", "Foo 3:16", ErrInvalidReference, nil},
		{"number without book", "3:16", ErrInvalidReference, nil},
		{"first semicolon clause without book", "3:16; John 1", ErrInvalidReference, nil},
		{"book outside module", "Rom 1", ErrInvalidReference, []Option{WithModuleBooks([]BookID{john})}},
		{"leading comma", ", John 3", ErrMalformedFragment, nil},
		{"trailing comma", "John 3,", ErrMalformedFragment, nil},
		{"empty clause", "John 3,,4", ErrMalformedFragment, nil},
		{"empty range end", "John 3:16-", ErrMalformedFragment, nil},
		{"bad verse", "John 3:x", ErrMalformedFragment, nil},
		{"too many colons", "John 3:16:2", ErrMalformedFragment, nil},
		{"zero chapter", "John 0", ErrMalformedFragment, nil},
		{"empty", "   ", ErrMalformedFragment, nil},
		{"unresolvable continuation", "John 3 - 17 18", ErrInvalidReference, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := testResolver(t, tt.opts...).Resolve(tt.ref)
			require.Nil(t, got)
			require.ErrorIs(t, err, tt.kind)

			var re *ReferenceError
			require.True(t, errors.As(err, &re))
			require.Equal(t, tt.ref, re.Input)
			require.Contains(t, err.Error(), tt.ref)
		})
	}
}

func TestResolveBookMissingFromCanon(t *testing.T) {
	a := testAliases(t)
	require.NoError(t, a.Add(999, "Tobit"))

	_, err := NewResolver(a, testCanon()).Resolve("Tobit 1")
	require.ErrorIs(t, err, ErrInvalidReference)
}

func TestPackageResolve(t *testing.T) {
	got, err := Resolve("Rom 3", testAliases(t), testCanon())
	require.NoError(t, err)
	require.Equal(t, []VerseRange{span(romans, 3, 1, 3, 31)}, got)
}

func TestFragmentsCarryClauseIndex(t *testing.T) {
	frags, err := testResolver(t).Fragments("John 3:16-18, 4")
	require.NoError(t, err)
	require.Len(t, frags, 3)
	require.Equal(t, []int{0, 0, 1}, []int{frags[0].Clause, frags[1].Clause, frags[2].Clause})
}

type recordingLogger struct{ lines int }

func (l *recordingLogger) Debugf(string, ...interface{}) { l.lines++ }

func TestResolverLogsFragments(t *testing.T) {
	l := &recordingLogger{}
	_, err := testResolver(t, WithLogger(l)).Resolve("John 3:16-18")
	require.NoError(t, err)
	require.Equal(t, 2, l.lines)
}
