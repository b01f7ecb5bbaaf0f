// Package validation provides common validation utilities for the crontab library.
package validation

import (
	"fmt"

	cterrors "github.com/vnykmshr/crontab/pkg/common/errors"
)

// ValidatePositive validates that an integer value is positive (> 0).
// Returns a ValidationError if the value is not positive.
func ValidatePositive(module, field string, value int) error {
	if value <= 0 {
		return cterrors.NewValidationError(module, field, value, "must be positive").
			WithHint("value must be greater than 0")
	}
	return nil
}

// ValidateInRange validates that value lies within [min, max].
// Returns a ValidationError naming the inclusive bounds otherwise.
func ValidateInRange(module, field string, value, min, max uint64) error {
	if value < min || value > max {
		return cterrors.NewValidationError(module, field, value,
			fmt.Sprintf("must be between %d and %d", min, max))
	}
	return nil
}

// ValidateNotEmpty validates that a string value is not empty.
// Returns a ValidationError if the value is empty.
func ValidateNotEmpty(module, field, value string) error {
	if value == "" {
		return cterrors.NewValidationError(module, field, value, "cannot be empty").
			WithHint("provide a non-empty " + field)
	}
	return nil
}
