package testutils

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type ErrorDescription struct {
	ErrorFieldPath string
	ErrorTag       string
}

// AssertValidateError fails t unless err holds a validation error on the described path with the described tag.
func AssertValidateError(t *testing.T, err error, expectedError ErrorDescription) {
	t.Helper()
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		t.Errorf("Wanted a validation error for path=%s and tag=%s, got '%v'", expectedError.ErrorFieldPath, expectedError.ErrorTag, err)
		return
	}
	for _, e := range validationErrors {
		if e.Namespace() == expectedError.ErrorFieldPath && e.Tag() == expectedError.ErrorTag {
			return
		}
	}
	t.Errorf("Wanted error was not found, expected '%v' to contains an error for path=%s and tag=%s", validationErrors, expectedError.ErrorFieldPath, expectedError.ErrorTag)
}
