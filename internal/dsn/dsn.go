// Package dsn parses Databend connection strings into resolved connection properties.
//
// Accepted form:
//
//	[jdbc:]databend://[user[:password]@]host[:port][/database][?key=value&...]
//
// The user info, the first path segment and every query parameter become raw
// connection properties, which are then validated and converted by a
// connprops.Registry.
package dsn

import (
	"errors"
	"fmt"
	"maps"
	"net"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/databendcloud/databend-props/internal/connprops"
	"github.com/databendcloud/databend-props/internal/parser"
)

const (
	// Scheme is the URI scheme of a Databend connection string.
	Scheme = "databend"

	jdbcPrefix = "jdbc:"

	// DefaultPort is used when no port is given and ssl is off.
	DefaultPort = 8000
	// DefaultSSLPort is used when no port is given and ssl is on.
	DefaultSSLPort = 443
)

var (
	ErrInvalidScheme = errors.New("dsn: scheme must be databend")
	ErrMissingHost   = errors.New("dsn: missing host")
)

// Error types for proper error handling with errors.Is/As
type (
	// ConflictError is returned when a property is supplied by more than one part of the input.
	ConflictError struct {
		Key string
	}

	// RepeatedParameterError is returned when a query parameter appears more than once.
	RepeatedParameterError struct {
		Key string
	}
)

func (e *ConflictError) Error() string {
	return fmt.Sprintf("dsn: property %s is set more than once", e.Key)
}

func (e *RepeatedParameterError) Error() string {
	return fmt.Sprintf("dsn: query parameter %s is repeated", e.Key)
}

var portParser = parser.NewIntParser().WithRange(1, 65535)

// DSN is a parsed connection string.
type DSN struct {
	Host   string
	Port   int
	Values *connprops.Values
}

// Option configures Parse.
type Option func(*options)

type options struct {
	registry   *connprops.Registry
	logger     *zap.Logger
	strict     bool
	properties map[string]string
}

// WithRegistry resolves properties against r instead of connprops.Default.
func WithRegistry(r *connprops.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithLogger sets the logger for ignored keys and parse diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStrict makes unknown property keys an error instead of a warning.
func WithStrict(strict bool) Option {
	return func(o *options) { o.strict = strict }
}

// WithProperties supplies additional raw properties, as a driver properties
// object would. A key present both here and in the URI is a ConflictError.
func WithProperties(props map[string]string) Option {
	return func(o *options) { o.properties = maps.Clone(props) }
}

// Split extracts host, port (0 when absent) and the raw properties from uri
// without resolving them.
func Split(uri string) (host string, port int, raw map[string]string, err error) {
	s := uri
	if len(s) >= len(jdbcPrefix) && strings.EqualFold(s[:len(jdbcPrefix)], jdbcPrefix) {
		s = s[len(jdbcPrefix):]
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", 0, nil, fmt.Errorf("dsn: %w", err)
	}
	if !strings.EqualFold(u.Scheme, Scheme) {
		return "", 0, nil, ErrInvalidScheme
	}

	host = u.Hostname()
	if host == "" {
		return "", 0, nil, ErrMissingHost
	}

	if p := u.Port(); p != "" {
		port, err = portParser.ParseAndValidate(p)
		if err != nil {
			return "", 0, nil, fmt.Errorf("dsn: invalid port %q: %w", p, err)
		}
	}

	raw = make(map[string]string)
	if u.User != nil {
		if name := u.User.Username(); name != "" {
			raw[connprops.User.Key()] = name
		}
		if pass, ok := u.User.Password(); ok {
			raw[connprops.Password.Key()] = pass
		}
	}

	if db, _, _ := strings.Cut(strings.Trim(u.Path, "/"), "/"); db != "" {
		raw[connprops.Database.Key()] = db
	}

	query, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return "", 0, nil, fmt.Errorf("dsn: %w", err)
	}
	for _, key := range slices.Sorted(maps.Keys(query)) {
		values := query[key]
		if len(values) > 1 {
			return "", 0, nil, &RepeatedParameterError{Key: key}
		}
		if _, exists := raw[key]; exists {
			return "", 0, nil, &ConflictError{Key: key}
		}
		raw[key] = values[0]
	}

	return host, port, raw, nil
}

// Parse parses uri and resolves its properties.
func Parse(uri string, opts ...Option) (*DSN, error) {
	o := options{
		registry: connprops.Default,
		logger:   zap.NewNop(),
	}
	for _, fn := range opts {
		fn(&o)
	}

	host, port, raw, err := Split(uri)
	if err != nil {
		return nil, err
	}

	for _, key := range slices.Sorted(maps.Keys(o.properties)) {
		if _, exists := raw[key]; exists {
			return nil, &ConflictError{Key: key}
		}
		raw[key] = o.properties[key]
	}

	policy := connprops.UnknownKeysIgnore
	if o.strict {
		policy = connprops.UnknownKeysReject
	}

	vals, err := o.registry.Resolve(raw, connprops.WithUnknownKeys(policy), connprops.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}

	if port == 0 {
		port = DefaultPortFor(vals)
	}

	d := &DSN{Host: host, Port: port, Values: vals}
	o.logger.Debug("parsed connection string", zap.String("address", d.Address()))
	return d, nil
}

// DefaultPortFor returns the port used when a connection string names none.
func DefaultPortFor(vals *connprops.Values) int {
	if connprops.SSL.GetOr(vals, false) {
		return DefaultSSLPort
	}
	return DefaultPort
}

// Address returns host:port.
func (d *DSN) Address() string {
	return net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
}

// String renders the DSN with explicitly supplied properties only.
// The password and other sensitive values are masked.
func (d *DSN) String() string {
	u := url.URL{
		Scheme: Scheme,
		Host:   d.Address(),
	}

	if d.Values == nil {
		return u.String()
	}

	userKey, passKey, dbKey := connprops.User.Key(), connprops.Password.Key(), connprops.Database.Key()
	// keys rendered outside the query; a password without a user stays in the query
	inURI := make(map[string]bool)
	if user, ok := d.Values.Raw(userKey); ok && d.Values.Explicit(userKey) {
		inURI[userKey] = true
		if pass, ok := d.Values.Raw(passKey); ok && d.Values.Explicit(passKey) {
			inURI[passKey] = true
			u.User = url.UserPassword(user, connprops.MaskedValue(connprops.Password, pass))
		} else {
			u.User = url.User(user)
		}
	}
	if db, ok := d.Values.Raw(dbKey); ok && db != "" && d.Values.Explicit(dbKey) {
		inURI[dbKey] = true
		u.Path = "/" + db
	}

	query := url.Values{}
	for _, key := range d.Values.Keys() {
		if inURI[key] || !d.Values.Explicit(key) {
			continue
		}
		raw, _ := d.Values.Raw(key)
		p, _ := connprops.Lookup(key)
		query.Set(key, connprops.MaskedValue(p, raw))
	}
	u.RawQuery = query.Encode()

	return u.String()
}
