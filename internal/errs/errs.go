// Package errs defines the error taxonomy every editor component uses to
// build status-bar-displayable errors, per spec §7.
package errs

import "fmt"

// Kind classifies an error for status-message and logging purposes. It is
// not a Go error type hierarchy; components wrap it into a plain error via
// New.
type Kind int

const (
	InputValidation Kind = iota
	NotFound
	Permission
	Encoding
	External
	Network
	Internal
)

func (k Kind) String() string {
	switch k {
	case InputValidation:
		return "InputValidation"
	case NotFound:
		return "NotFound"
	case Permission:
		return "Permission"
	case Encoding:
		return "Encoding"
	case External:
		return "External"
	case Network:
		return "Network"
	case Internal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type every component returns; its Kind drives
// status-bar attribute selection and logging verbosity.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds a status-displayable error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a kind and status message to an underlying error.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// KindOf extracts the Kind from err if it (or something it wraps) is an
// *Error, defaulting to Internal otherwise.
func KindOf(err error) Kind {
	var e *Error
	if asErrs(err, &e) {
		return e.Kind
	}
	return Internal
}

func asErrs(err error, target **Error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
