// Package errs defines the small, fixed set of sum-typed fatal errors this
// module's protocol layer can raise. Every error carries one of a fixed set
// of Kinds so callers can branch on failure class with errors.Is instead of
// string-matching an error message.
package errs

import "fmt"

// Kind classifies a protocol-layer error.
type Kind int

const (
	// KindBadSize marks a length mismatch between parallel vectors, or a
	// vector shorter than the minimum threshold size.
	KindBadSize Kind = iota
	// KindBadK marks an invalid threshold parameter k.
	KindBadK
	// KindIDZero marks an attempt to evaluate a share polynomial at the
	// zero id, which would leak the dealer's secret.
	KindIDZero
	// KindSameID marks a duplicate id supplied to Lagrange interpolation.
	KindSameID
)

func (k Kind) String() string {
	switch k {
	case KindBadSize:
		return "bad size"
	case KindBadK:
		return "bad k"
	case KindIDZero:
		return "id is zero"
	case KindSameID:
		return "same id"
	default:
		return "unknown"
	}
}

// Error is the sum-typed fatal error this module's protocol layer raises
// for contract violations (spec.md §7). It is never returned by a
// verification routine — those report acceptance with a bool.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Is reports whether target is an *Error of the same Kind, supporting
// errors.Is(err, errs.New(KindBadSize, "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New constructs an Error of the given kind with an optional detail
// message.
func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// Badf constructs an Error of the given kind with a formatted detail
// message.
func Badf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
