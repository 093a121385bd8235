package apperror

import "errors"

// Kind classifies business failures so the delivery layer can pick a status code.
type Kind int

const (
	KindUnknown Kind = iota
	// KindNotFound: a referenced record does not exist or is no longer active.
	KindNotFound
	// KindConcurrency: the records exist but a temporal or contention rule rejects the operation.
	KindConcurrency
	// KindMismatch: an input value is malformed or inconsistent.
	KindMismatch
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConcurrency:
		return "concurrency"
	case KindMismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Concurrency(message string) *Error {
	return &Error{Kind: KindConcurrency, Message: message}
}

func Mismatch(message string) *Error {
	return &Error{Kind: KindMismatch, Message: message}
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func IsConcurrency(err error) bool {
	return KindOf(err) == KindConcurrency
}
