package connprops

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ErrInvalidProperty is returned when a nil property or empty key is registered.
var ErrInvalidProperty = errors.New("invalid property: nil or empty key")

// Registry owns a closed set of properties and their derived defaults.
// It is immutable once built and safe for concurrent use.
type Registry struct {
	props    []Property
	byKey    map[string]Property
	defaults map[string]string
}

// NewRegistry builds a registry from props. It fails on duplicate keys and on
// defaults that do not pass their own property's validator and converter.
func NewRegistry(props ...Property) (*Registry, error) {
	r := &Registry{
		props:    make([]Property, 0, len(props)),
		byKey:    make(map[string]Property, len(props)),
		defaults: make(map[string]string),
	}

	for _, p := range props {
		if p == nil || p.Key() == "" {
			return nil, ErrInvalidProperty
		}
		key := p.Key()
		if _, exists := r.byKey[key]; exists {
			return nil, &DuplicateKeyError{Key: key}
		}
		if def, ok := p.Default(); ok {
			if _, err := p.Resolve(def); err != nil {
				return nil, fmt.Errorf("property %s has an invalid default: %w", key, err)
			}
			r.defaults[key] = def
		}
		r.byKey[key] = p
		r.props = append(r.props, p)
	}

	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on error. Useful for package-level variables.
func MustNewRegistry(props ...Property) *Registry {
	r, err := NewRegistry(props...)
	if err != nil {
		panic(err)
	}
	return r
}

// All returns every property in declaration order.
func (r *Registry) All() []Property {
	return slices.Clone(r.props)
}

// Defaults returns key -> default raw value for the properties that declare a default.
func (r *Registry) Defaults() map[string]string {
	return maps.Clone(r.defaults)
}

// Lookup returns the property registered under key.
func (r *Registry) Lookup(key string) (Property, bool) {
	p, ok := r.byKey[key]
	return p, ok
}

// Keys returns all property keys in lexicographic order.
func (r *Registry) Keys() []string {
	keys := lo.Keys(r.byKey)
	slices.Sort(keys)
	return keys
}

// UnknownKeysPolicy decides what Resolve does with keys outside the registry.
type UnknownKeysPolicy int

const (
	// UnknownKeysIgnore drops unknown keys and logs them at warn level.
	UnknownKeysIgnore UnknownKeysPolicy = iota
	// UnknownKeysReject fails resolution with an UnknownPropertyError per key.
	UnknownKeysReject
)

// ResolveOption configures Resolve.
type ResolveOption func(*resolveOptions)

type resolveOptions struct {
	unknown UnknownKeysPolicy
	logger  *zap.Logger
}

// WithUnknownKeys sets the unknown-key policy. The default is UnknownKeysIgnore.
func WithUnknownKeys(policy UnknownKeysPolicy) ResolveOption {
	return func(o *resolveOptions) { o.unknown = policy }
}

// WithLogger sets the logger used to report ignored keys.
func WithLogger(l *zap.Logger) ResolveOption {
	return func(o *resolveOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// Resolve merges raw over the registry defaults, then validates and converts
// every recognized key. All failures are reported together.
func (r *Registry) Resolve(raw map[string]string, opts ...ResolveOption) (*Values, error) {
	o := resolveOptions{logger: zap.NewNop()}
	for _, fn := range opts {
		fn(&o)
	}

	vals := &Values{
		raw:      maps.Clone(r.defaults),
		typed:    make(map[string]any, len(r.props)),
		explicit: make(map[string]bool, len(raw)),
	}

	var errs []error

	inputKeys := lo.Keys(raw)
	slices.Sort(inputKeys)
	for _, key := range inputKeys {
		if _, ok := r.byKey[key]; ok {
			vals.raw[key] = raw[key]
			vals.explicit[key] = true
			continue
		}
		switch o.unknown {
		case UnknownKeysReject:
			errs = append(errs, &UnknownPropertyError{Key: key})
		default:
			o.logger.Warn("ignoring unknown connection property", zap.String("key", key))
			vals.ignored = append(vals.ignored, key)
		}
	}

	for _, p := range r.props {
		key := p.Key()
		rawValue, ok := vals.raw[key]
		if !ok {
			if p.Required() {
				errs = append(errs, &MissingRequiredError{Key: key})
			}
			continue
		}
		v, err := p.Resolve(rawValue)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		vals.typed[key] = v
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return vals, nil
}
