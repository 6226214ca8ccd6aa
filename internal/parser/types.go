package parser

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrInvalidBool is returned for any literal other than true or false.
	ErrInvalidBool = errors.New("value must be 'true' or 'false'")
	// ErrEmptyString is returned by parsers that require a non-empty value.
	ErrEmptyString = errors.New("value must not be empty")
)

// BoolParser parses boolean values.
// It accepts "true" and "false" in any ASCII case ("True", "FALSE", ...).
// Unlike strconv.ParseBool, "1", "0", "t" and "f" are rejected.
type BoolParser struct {
	BaseParser[bool]
}

// NewBoolParser creates a new boolean parser.
func NewBoolParser() *BoolParser {
	return &BoolParser{
		BaseParser: BaseParser[bool]{
			ParseFunc: parseBool,
		},
	}
}

func parseBool(value string) (bool, error) {
	switch {
	case strings.EqualFold(value, "true"):
		return true, nil
	case strings.EqualFold(value, "false"):
		return false, nil
	default:
		return false, ErrInvalidBool
	}
}

// IntParser parses base-10 integers that fit in 32 bits, with optional range validation.
type IntParser struct {
	BaseParser[int]
	min *int
	max *int
}

// NewIntParser creates a new integer parser.
func NewIntParser() *IntParser {
	return &IntParser{
		BaseParser: BaseParser[int]{
			ParseFunc: func(value string) (int, error) {
				n, err := strconv.ParseInt(value, 10, 32)
				if err != nil {
					return 0, err
				}
				return int(n), nil
			},
		},
	}
}

// WithRange adds range validation to the integer parser.
func (p *IntParser) WithRange(min, max int) *IntParser {
	p.min = &min
	p.max = &max
	p.ValidateFunc = p.validateRange
	return p
}

func (p *IntParser) validateRange(value int) error {
	return CreateRangeValidator(p.min, p.max)(value)
}

// StringParser returns its input, optionally rejecting the empty string.
type StringParser struct {
	BaseParser[string]
}

// NewStringParser creates a new string parser.
// It returns the value as-is without any processing.
func NewStringParser() *StringParser {
	return &StringParser{
		BaseParser: BaseParser[string]{
			ParseFunc: func(value string) (string, error) {
				return value, nil
			},
		},
	}
}

// NewNonEmptyStringParser creates a string parser that rejects "".
// Used for identifiers such as the user name.
func NewNonEmptyStringParser() *StringParser {
	return &StringParser{
		BaseParser: BaseParser[string]{
			ParseFunc: func(value string) (string, error) {
				if value == "" {
					return "", ErrEmptyString
				}
				return value, nil
			},
		},
	}
}
