package apperror

import (
	"errors"
	"fmt"
)

// Kind is a typed error code for the closed set of failures the program reports.
type Kind string

const (
	// ─── Data entry ────────────────────────────────────────────────────
	KindValidation Kind = "VALIDATION_ERROR"
	KindInput      Kind = "INPUT_ERROR"

	// ─── Persistence ───────────────────────────────────────────────────
	KindIO    Kind = "IO_ERROR"
	KindParse Kind = "PARSE_ERROR"
)

// GetMessage returns the descriptive text for a given error kind.
func GetMessage(kind Kind) string {
	switch kind {
	case KindValidation:
		return "A value did not pass validation."
	case KindInput:
		return "The entered input could not be processed."
	case KindIO:
		return "The data file could not be accessed."
	case KindParse:
		return "The data file does not contain a valid enrollment list."
	default:
		return "An unexpected error occurred."
	}
}

// Error is the program's error value. Message is meant for the operator,
// Err keeps the underlying cause for the technical report.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// New creates an Error of the given kind. cause may be nil.
func New(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports a match when target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind, true
	}
	return "", false
}

// Describe returns the descriptive text for err, falling back to the
// unexpected-error text for foreign errors.
func Describe(err error) string {
	kind, _ := KindOf(err)
	return GetMessage(kind)
}

// KindName renders the kind of err for diagnostics. Foreign errors are
// rendered by their Go type.
func KindName(err error) string {
	if kind, ok := KindOf(err); ok {
		return string(kind)
	}
	return fmt.Sprintf("%T", err)
}

// Sentinels usable with errors.Is.
var (
	ErrValidation = &Error{Kind: KindValidation}
	ErrInput      = &Error{Kind: KindInput}
	ErrIO         = &Error{Kind: KindIO}
	ErrParse      = &Error{Kind: KindParse}
)
