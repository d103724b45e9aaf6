package utils

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(fmt.Sprintf("%s is required", fieldName))
	}
	return nil
}

// ValidatePositive checks if a number is positive
func ValidatePositive(value float64, fieldName string) error {
	if value <= 0 {
		return NewValidationError(fmt.Sprintf("%s must be positive", fieldName))
	}
	return nil
}

// ValidateSplitType checks that a split policy is one of the supported values
func ValidateSplitType(splitType string) error {
	switch splitType {
	case SplitTypeEqual, SplitTypeExact, SplitTypePercentage:
		return nil
	}
	return NewValidationError(fmt.Sprintf("unsupported split type %q", splitType))
}
