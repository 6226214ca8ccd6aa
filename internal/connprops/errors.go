package connprops

import (
	"fmt"
)

// Error types for proper error handling with errors.Is/As
type (
	// ValidationError is returned when a raw value is rejected by the property's validator.
	ValidationError struct {
		Key   string
		Value string
	}

	// ConversionError is returned when a raw value cannot be parsed into the property's type.
	ConversionError struct {
		Key   string
		Value string
		Err   error
	}

	// DuplicateKeyError is returned when two properties are registered under the same key.
	DuplicateKeyError struct {
		Key string
	}

	// MissingRequiredError is returned when a required property has neither a value nor a default.
	MissingRequiredError struct {
		Key string
	}

	// UnknownPropertyError is returned for keys outside the registry when unknown keys are rejected.
	UnknownPropertyError struct {
		Key string
	}
)

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value for %s: %q is not allowed", e.Key, e.Value)
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("invalid value for %s: cannot convert %q: %v", e.Key, e.Value, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("property %s already registered", e.Key)
}

func (e *MissingRequiredError) Error() string {
	return fmt.Sprintf("missing required property: %s", e.Key)
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("unknown property: %s", e.Key)
}
