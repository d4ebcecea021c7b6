package errs

import "errors"

// Error kinds shared by the usecase layer and the HTTP boundary.
// Usecases mark concrete errors with one of these; handlers switch on them.
var (
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")

	// Notification, audit and payment failures. Never returned for a primary operation
	// that already committed; surfaced as warnings instead.
	ErrDependency = errors.New("dependency failure")
)

// ValidationError carries every violated field at once.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// AsValidation returns the field map when err carries a ValidationError.
func AsValidation(err error) (map[string]string, bool) {
	var ve *ValidationError
	if As(err, &ve) {
		return ve.Fields, true
	}
	return nil, false
}
