package domain

import "errors"

// ValidationError reports a ProjectionInput field that violates its invariant.
// It is returned unwrapped so callers can show the message as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidationError reports whether err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
