package order

import (
	"errors"
	"fmt"
)

type validationError struct {
	message string
}

func (e validationError) Error() string { return e.message }

func newValidationError(format string, args ...any) error {
	return validationError{message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a rejected selection rather than an
// infrastructure failure.
func IsValidation(err error) bool {
	var v validationError
	return errors.As(err, &v)
}
