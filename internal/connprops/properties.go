package connprops

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/databendcloud/databend-props/internal/pagination"
)

// paging is read once, when the package is initialized.
var paging = pagination.Defaults()

// Connection properties supported by the driver.
var (
	User = NewNonEmptyStringProperty("user",
		WithDescription("User name used to authenticate."))

	Password = NewStringProperty("password",
		WithDescription("Password used to authenticate."),
		AsSensitive())

	SSL = NewBoolProperty("ssl",
		WithDescription("Connect over TLS."),
		WithDefault("false"))

	Database = NewStringProperty("database",
		WithDescription("Database selected after connecting."),
		WithDefault("default"))

	AccessToken = NewStringProperty("accesstoken",
		WithDescription("Bearer token used instead of user and password."),
		AsSensitive())

	ConnectionTimeout = NewIntProperty("connection_timeout",
		WithDescription("Connect timeout in seconds."),
		WithDefault(strconv.Itoa(15)))

	PresignedURLDisabled = NewBoolProperty("presigned_url_disabled",
		WithDescription("Upload through the server instead of presigned URLs."),
		WithDefault("false"))

	CopyPurge = NewBoolProperty("copy_purge",
		WithDescription("Purge staged files after a successful COPY INTO."),
		WithDefault("true"))

	WaitTimeSecs = NewIntProperty("wait_time_secs",
		WithDescription("Seconds the server may hold a page request open."),
		WithDefault(strconv.Itoa(paging.WaitTimeSecs)))

	MaxRowsInBuffer = NewIntProperty("max_rows_in_buffer",
		WithDescription("Maximum rows buffered on the client."),
		WithDefault(strconv.Itoa(paging.MaxRowsInBuffer)))

	MaxRowsPerPage = NewIntProperty("max_rows_per_page",
		WithDescription("Maximum rows returned per page."),
		WithDefault(strconv.Itoa(paging.MaxRowsPerPage)))
)

// Default is the registry of all supported connection properties.
// It holds 11 entries: copy_purge is registered as well, so its default
// reaches the merged defaults map (the driver this mirrors listed only 10).
var Default = MustNewRegistry(
	User,
	Password,
	SSL,
	Database,
	AccessToken,
	PresignedURLDisabled,
	ConnectionTimeout,
	CopyPurge,
	WaitTimeSecs,
	MaxRowsInBuffer,
	MaxRowsPerPage,
)

// AllProperties returns every supported property.
func AllProperties() []Property {
	return Default.All()
}

// Defaults returns the default raw value of every property that declares one.
func Defaults() map[string]string {
	return Default.Defaults()
}

// Lookup returns the supported property registered under key.
func Lookup(key string) (Property, bool) {
	return Default.Lookup(key)
}

// Resolve resolves raw against the Default registry.
func Resolve(raw map[string]string, opts ...ResolveOption) (*Values, error) {
	return Default.Resolve(raw, opts...)
}

// LogFields renders vals as zap fields with sensitive values masked.
func LogFields(vals *Values) []zap.Field {
	fields := make([]zap.Field, 0, len(vals.raw))
	for _, key := range vals.Keys() {
		raw, _ := vals.Raw(key)
		p, _ := Default.Lookup(key)
		fields = append(fields, zap.String(key, MaskedValue(p, raw)))
	}
	return fields
}
