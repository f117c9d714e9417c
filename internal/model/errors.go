package model

import "errors"

// ValidationError reports a business-rule violation in a candidate
// configuration. Field names the offending key or attribute.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidationError reports whether err is a business-rule violation, so
// handlers can pick a client-error status for it.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
