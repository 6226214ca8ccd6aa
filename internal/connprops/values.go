package connprops

import (
	"maps"
	"slices"
	"time"

	"github.com/samber/lo"

	"github.com/databendcloud/databend-props/internal/pagination"
)

// Values is the result of resolving raw properties against a registry:
// the merged raw strings and their converted typed values.
// A Values is never modified after Resolve returns it.
type Values struct {
	raw      map[string]string
	typed    map[string]any
	explicit map[string]bool
	ignored  []string
}

// Raw returns the raw string for key, whether supplied or defaulted.
func (v *Values) Raw(key string) (string, bool) {
	s, ok := v.raw[key]
	return s, ok
}

// Value returns the converted value for key.
func (v *Values) Value(key string) (any, bool) {
	x, ok := v.typed[key]
	return x, ok
}

// Explicit reports whether key was supplied by the caller rather than defaulted.
func (v *Values) Explicit(key string) bool {
	return v.explicit[key]
}

// Keys returns the keys that have a value, sorted.
func (v *Values) Keys() []string {
	keys := lo.Keys(v.raw)
	slices.Sort(keys)
	return keys
}

// Map returns a copy of the merged raw values.
func (v *Values) Map() map[string]string {
	return maps.Clone(v.raw)
}

// Ignored returns the unknown keys dropped during resolution.
func (v *Values) Ignored() []string {
	return slices.Clone(v.ignored)
}

// Config is the typed form of the connection properties.
type Config struct {
	User                 string             `json:"user,omitempty"`
	Password             string             `json:"-"`
	SSL                  bool               `json:"ssl"`
	Database             string             `json:"database"`
	AccessToken          string             `json:"-"`
	ConnectionTimeout    time.Duration      `json:"connection_timeout"`
	PresignedURLDisabled bool               `json:"presigned_url_disabled"`
	CopyPurge            bool               `json:"copy_purge"`
	Pagination           pagination.Options `json:"pagination"`
}

// Config converts the values of the declared properties into a Config.
// Properties without a value keep the zero value.
func (v *Values) Config() Config {
	return Config{
		User:                 User.GetOr(v, ""),
		Password:             Password.GetOr(v, ""),
		SSL:                  SSL.GetOr(v, false),
		Database:             Database.GetOr(v, ""),
		AccessToken:          AccessToken.GetOr(v, ""),
		ConnectionTimeout:    time.Duration(ConnectionTimeout.GetOr(v, 0)) * time.Second,
		PresignedURLDisabled: PresignedURLDisabled.GetOr(v, false),
		CopyPurge:            CopyPurge.GetOr(v, false),
		Pagination: pagination.Options{
			WaitTimeSecs:    WaitTimeSecs.GetOr(v, 0),
			MaxRowsInBuffer: MaxRowsInBuffer.GetOr(v, 0),
			MaxRowsPerPage:  MaxRowsPerPage.GetOr(v, 0),
		},
	}
}
