package errors

import "errors"

var (
	ErrAlreadyExists       = errors.New("document already exists")
	ErrNotFound            = errors.New("document not found")
	ErrInvalidDecision     = errors.New("invalid decision")
	ErrConflictingDecision = errors.New("conflicting decision already recorded")
	ErrUnknownCurrency     = errors.New("unknown currency")
	ErrTransportFailure    = errors.New("email transport failure")
)

// ValidationError names the first constraint violated by a submission.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// NewValidationError constructs a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a submission validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
