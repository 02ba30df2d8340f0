package reference

import (
	"errors"
	"strings"
)

// Resolver resolves references against one module's alias table and canon.
type Resolver struct {
	aliases     *AliasTable
	canon       *CanonIndex
	moduleBooks map[BookID]struct{}
	logger      Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithModuleBooks restricts resolution to the books a module declares.
// Without it any book present in the canon is accepted.
func WithModuleBooks(books []BookID) Option {
	return func(r *Resolver) {
		r.moduleBooks = make(map[BookID]struct{}, len(books))
		for _, b := range books {
			r.moduleBooks[b] = struct{}{}
		}
	}
}

// WithLogger sets a logger for per-fragment trace output.
func WithLogger(l Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewResolver returns a Resolver over aliases and canon. Neither is copied;
// callers must not modify them while the resolver is in use.
func NewResolver(aliases *AliasTable, canon *CanonIndex, opts ...Option) *Resolver {
	r := &Resolver{aliases: aliases, canon: canon, logger: nopLogger{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Canon returns the index the resolver checks books against.
func (r *Resolver) Canon() *CanonIndex { return r.canon }

// Aliases returns the resolver's alias table.
func (r *Resolver) Aliases() *AliasTable { return r.aliases }

// Fragments resolves ref and returns every fragment in order, each tagged
// with the index of its comma clause. Any failure aborts the whole reference.
func (r *Resolver) Fragments(ref string) ([]Fragment, error) {
	normalized := strings.TrimSpace(NormalizeReference(ref))
	if normalized == "" {
		return nil, withInput(malformed("", errors.New("empty reference")), ref)
	}
	rewritten, err := RewriteSemicolons(normalized)
	if err != nil {
		return nil, withInput(err, ref)
	}

	var (
		out   []Fragment
		state State
	)
	for i, clause := range SplitClauses(rewritten) {
		for j, text := range clause.Fragments {
			var rng VerseRange
			if j == 0 {
				rng, state, err = r.ResolveFragment(text, state)
			} else {
				rng, state, err = r.ResolveContinuation(text, state)
			}
			if err != nil {
				return nil, withInput(err, ref)
			}
			out = append(out, Fragment{Clause: i, Text: text, Range: rng})
		}
	}
	return out, nil
}

// Resolve turns ref into one VerseRange per comma clause. It never returns a
// partial list: on error the slice is nil.
func (r *Resolver) Resolve(ref string) ([]VerseRange, error) {
	frags, err := r.Fragments(ref)
	if err != nil {
		return nil, err
	}
	return Assemble(frags), nil
}

// Resolve is shorthand for NewResolver(aliases, canon).Resolve(ref).
func Resolve(ref string, aliases *AliasTable, canon *CanonIndex) ([]VerseRange, error) {
	return NewResolver(aliases, canon).Resolve(ref)
}
