package reference

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Match with errors.Is, never by message.
var (
	// ErrUnknownBook means a token span matches no alias. Resolution recovers
	// from it by trying a shorter span or the inherited book.
	ErrUnknownBook = errors.New("unknown book")
	// ErrInvalidReference means no usable book could be determined, or the
	// book is not part of the module's canon. Terminal for the whole input.
	ErrInvalidReference = errors.New("invalid reference")
	// ErrMalformedFragment means a fragment has no tokens or a numeric part
	// that is not chapter, chapter:verse or verse. Terminal for the whole input.
	ErrMalformedFragment = errors.New("malformed fragment")
)

// ReferenceError carries the failing input and fragment alongside the kind.
type ReferenceError struct {
	Kind     error  // one of the sentinels above
	Input    string // the reference as given by the caller
	Fragment string // the fragment being resolved when it failed
	Err      error  // underlying cause, if any
}

func (e *ReferenceError) Error() string {
	msg := e.Kind.Error()
	if e.Fragment != "" {
		msg = fmt.Sprintf("%s at %q", msg, e.Fragment)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Input != "" {
		return fmt.Sprintf("%q: %s", e.Input, msg)
	}
	return msg
}

// Is reports whether target is the error's kind.
func (e *ReferenceError) Is(target error) bool {
	return target == e.Kind
}

func (e *ReferenceError) Unwrap() error {
	return e.Err
}

func invalid(fragment string, cause error) error {
	return &ReferenceError{Kind: ErrInvalidReference, Fragment: fragment, Err: cause}
}

func malformed(fragment string, cause error) error {
	return &ReferenceError{Kind: ErrMalformedFragment, Fragment: fragment, Err: cause}
}

// withInput stamps the caller's input on a ReferenceError.
func withInput(err error, input string) error {
	var re *ReferenceError
	if errors.As(err, &re) && re.Input == "" {
		cp := *re
		cp.Input = input
		return &cp
	}
	return err
}
