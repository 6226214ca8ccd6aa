package parser

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// EnumParser parses string values into enum types.
// Matching is ASCII case-insensitive.
type EnumParser[T comparable] struct {
	BaseParser[T]
	values map[string]T
}

// NewEnumParser creates a new enum parser with the given valid values.
func NewEnumParser[T comparable](values map[string]T) *EnumParser[T] {
	normalizedValues := lo.MapKeys(values, func(_ T, k string) string {
		return strings.ToUpper(k)
	})

	parser := &EnumParser[T]{
		values: normalizedValues,
	}

	parser.BaseParser = BaseParser[T]{
		ParseFunc: parser.parseEnum,
	}

	return parser
}

// Values returns the accepted literals in sorted order.
func (p *EnumParser[T]) Values() []string {
	keys := lo.Keys(p.values)
	slices.Sort(keys)
	return keys
}

func (p *EnumParser[T]) parseEnum(value string) (T, error) {
	if result, ok := p.values[strings.ToUpper(value)]; ok {
		return result, nil
	}

	var zero T
	return zero, fmt.Errorf("invalid value %q, must be one of: %s", value, strings.Join(p.Values(), ", "))
}
