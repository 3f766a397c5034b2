package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy. The service layer only ever surfaces these kinds; raw
// persistence failures are wrapped with ErrStorage before leaving a
// repository.
var (
	ErrValidation          = errors.New("validation failed")
	ErrEmailTaken          = errors.New("email already registered")
	ErrAlreadyApplied      = errors.New("already applied for this job")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrForbidden           = errors.New("access forbidden")
	ErrUserNotFound        = errors.New("user not found")
	ErrJobNotFound         = errors.New("job not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrStorage             = errors.New("storage unavailable")
)

// Validationf builds a validation error with a caller-facing detail message.
// Matches errors.Is(err, ErrValidation).
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Storagef wraps a persistence failure so it surfaces as the storage kind
// without leaking driver internals to callers that only check errors.Is.
func Storagef(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorage, op, err)
}
