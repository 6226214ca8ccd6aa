package connprops

import (
	"slices"

	"github.com/databendcloud/databend-props/internal/parser"
)

// Type names reported by Property.Type.
const (
	TypeString  = "string"
	TypeBoolean = "boolean"
	TypeInteger = "integer"
)

// Property is the untyped view of a ConnectionProperty used by the registry,
// connection-string parsers and the CLI.
type Property interface {
	Key() string
	Description() string
	Type() string
	// Default returns the default raw value, if one is declared.
	Default() (string, bool)
	Required() bool
	// Sensitive reports whether the value must be masked when displayed.
	Sensitive() bool
	// Validate reports whether raw is acceptable, independent of type conversion.
	Validate(raw string) bool
	// Resolve validates and converts raw, returning the typed value.
	Resolve(raw string) (any, error)
}

// RawValidator decides whether a raw string is acceptable for a property.
// It never fails; it only accepts or rejects.
type RawValidator func(raw string) bool

// Allowed accepts every raw value.
func Allowed(string) bool { return true }

// OneOf accepts exactly the listed raw values.
func OneOf(values ...string) RawValidator {
	allowed := slices.Clone(values)
	return func(raw string) bool {
		return slices.Contains(allowed, raw)
	}
}

// ConnectionProperty is a named, typed connection setting.
// It is immutable after construction.
type ConnectionProperty[T any] struct {
	key          string
	description  string
	typeName     string
	defaultValue string
	hasDefault   bool
	required     bool
	sensitive    bool
	validator    RawValidator
	converter    parser.Parser[T]
}

// PropertyOption configures a ConnectionProperty at construction.
type PropertyOption func(*propertyOptions)

type propertyOptions struct {
	description  string
	defaultValue *string
	required     bool
	sensitive    bool
	validator    RawValidator
}

// WithDefault sets the default raw value.
func WithDefault(raw string) PropertyOption {
	return func(o *propertyOptions) { o.defaultValue = &raw }
}

// WithDescription attaches a human-readable description.
func WithDescription(desc string) PropertyOption {
	return func(o *propertyOptions) { o.description = desc }
}

// WithValidator replaces the default Allowed predicate.
func WithValidator(v RawValidator) PropertyOption {
	return func(o *propertyOptions) { o.validator = v }
}

// AsRequired marks the property as required after defaults are merged.
func AsRequired() PropertyOption {
	return func(o *propertyOptions) { o.required = true }
}

// AsSensitive marks the property's value as secret.
func AsSensitive() PropertyOption {
	return func(o *propertyOptions) { o.sensitive = true }
}

// NewProperty creates a property of any type from its converter.
func NewProperty[T any](key, typeName string, converter parser.Parser[T], opts ...PropertyOption) *ConnectionProperty[T] {
	o := propertyOptions{validator: Allowed}
	for _, fn := range opts {
		fn(&o)
	}

	p := &ConnectionProperty[T]{
		key:         key,
		description: o.description,
		typeName:    typeName,
		required:    o.required,
		sensitive:   o.sensitive,
		validator:   o.validator,
		converter:   converter,
	}
	if o.defaultValue != nil {
		p.defaultValue = *o.defaultValue
		p.hasDefault = true
	}
	return p
}

// NewStringProperty creates a free-form string property.
func NewStringProperty(key string, opts ...PropertyOption) *ConnectionProperty[string] {
	return NewProperty[string](key, TypeString, parser.NewStringParser(), opts...)
}

// NewNonEmptyStringProperty creates a string property that rejects "".
func NewNonEmptyStringProperty(key string, opts ...PropertyOption) *ConnectionProperty[string] {
	return NewProperty[string](key, TypeString, parser.NewNonEmptyStringParser(), opts...)
}

// NewBoolProperty creates a boolean property ("true"/"false", case-insensitive).
func NewBoolProperty(key string, opts ...PropertyOption) *ConnectionProperty[bool] {
	return NewProperty[bool](key, TypeBoolean, parser.NewBoolParser(), opts...)
}

// NewIntProperty creates a 32-bit base-10 integer property.
func NewIntProperty(key string, opts ...PropertyOption) *ConnectionProperty[int] {
	return NewProperty[int](key, TypeInteger, parser.NewIntParser(), opts...)
}

// Key returns the wire key.
func (p *ConnectionProperty[T]) Key() string { return p.key }

// Description returns the property description.
func (p *ConnectionProperty[T]) Description() string { return p.description }

// Type returns the name of the property's value type.
func (p *ConnectionProperty[T]) Type() string { return p.typeName }

// Default returns the default raw value, if one is declared.
func (p *ConnectionProperty[T]) Default() (string, bool) { return p.defaultValue, p.hasDefault }

// Required reports whether the property must be present after defaults are merged.
func (p *ConnectionProperty[T]) Required() bool { return p.required }

// Sensitive reports whether the value must be masked when displayed.
func (p *ConnectionProperty[T]) Sensitive() bool { return p.sensitive }

// Validate reports whether raw passes the property's predicate.
func (p *ConnectionProperty[T]) Validate(raw string) bool {
	return p.validator(raw)
}

// Convert parses raw into the property's type.
func (p *ConnectionProperty[T]) Convert(raw string) (T, error) {
	v, err := p.converter.ParseAndValidate(raw)
	if err != nil {
		var zero T
		return zero, &ConversionError{Key: p.key, Value: raw, Err: err}
	}
	return v, nil
}

// ValidateAndConvert runs Validate then Convert.
func (p *ConnectionProperty[T]) ValidateAndConvert(raw string) (T, error) {
	if !p.Validate(raw) {
		var zero T
		return zero, &ValidationError{Key: p.key, Value: raw}
	}
	return p.Convert(raw)
}

// Resolve implements Property.
func (p *ConnectionProperty[T]) Resolve(raw string) (any, error) {
	return p.ValidateAndConvert(raw)
}

// Get returns the resolved value of this property from vals.
// The second result is false when the property has no value.
func (p *ConnectionProperty[T]) Get(vals *Values) (T, bool) {
	var zero T
	if vals == nil {
		return zero, false
	}
	v, ok := vals.Value(p.key)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	return typed, ok
}

// GetOr returns the resolved value or fallback when unset.
func (p *ConnectionProperty[T]) GetOr(vals *Values, fallback T) T {
	if v, ok := p.Get(vals); ok {
		return v
	}
	return fallback
}

// String returns the wire key.
func (p *ConnectionProperty[T]) String() string { return p.key }

// MaskedValue returns raw with sensitive values replaced by asterisks.
func MaskedValue(p Property, raw string) string {
	if p != nil && p.Sensitive() && raw != "" {
		return "********"
	}
	return raw
}
