package errs

import "strings"

// IsErrorMessage reports whether a status-bar message should be painted
// with the error attribute: the substring "error" appears, case
// insensitive, per spec §4.7/§7.
func IsErrorMessage(message string) bool {
	return strings.Contains(strings.ToLower(message), "error")
}

// StatusMessage renders a status-bar-ready message for err, prefixed with
// its kind so the substring check above fires consistently for anything
// that isn't InputValidation-level user feedback.
func StatusMessage(err error) string {
	if err == nil {
		return ""
	}
	kind := KindOf(err)
	if kind == InputValidation {
		return err.Error()
	}
	return kind.String() + " error: " + err.Error()
}
