package errs

import "errors"

// Kind classifies expected, recoverable failures. The transport layer maps each kind
// to a status code; errors without a kind are treated as internal faults.
type Kind string

const (
	KindValidation      Kind = "VALIDATION"
	KindNotFound        Kind = "NOT_FOUND"
	KindConflict        Kind = "CONFLICT"
	KindAuthorization   Kind = "AUTHORIZATION"
	KindUnauthenticated Kind = "UNAUTHENTICATED"
	KindState           Kind = "STATE"
)

// Error is a kinded sentinel. Compare with errors.Is against the package-level vars
// that hold it.
type Error struct {
	Kind Kind
	msg  string
}

func NewKind(kind Kind, msg string) *Error {
	return &Error{Kind: kind, msg: msg}
}

func (e *Error) Error() string {
	return e.msg
}

// KindOf returns the kind of the first kinded error in the chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// Shared sentinels used across usecase layers
var (
	ErrUnauthenticated = NewKind(KindUnauthenticated, "authentication required")
	ErrAccountInactive = NewKind(KindAuthorization, "account is not active")
	ErrForbidden       = NewKind(KindAuthorization, "operation not permitted")
	ErrVersionConflict = NewKind(KindConflict, "entity was modified concurrently")
)
