package connprops

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/databendcloud/databend-props/internal/parser"
)

func TestBooleanPropertiesConvert(t *testing.T) {
	t.Parallel()
	for _, p := range []*ConnectionProperty[bool]{SSL, PresignedURLDisabled, CopyPurge} {
		t.Run(p.Key(), func(t *testing.T) {
			tests := []struct {
				input   string
				want    bool
				wantErr bool
			}{
				{"true", true, false},
				{"false", false, false},
				{"True", true, false},
				{"FALSE", false, false},
				{"1", false, true},
				{"0", false, true},
				{"yes", false, true},
				{"", false, true},
			}
			for _, tt := range tests {
				got, err := p.Convert(tt.input)
				if tt.wantErr {
					var convErr *ConversionError
					require.ErrorAs(t, err, &convErr, "input %q", tt.input)
					assert.Equal(t, p.Key(), convErr.Key)
					assert.Equal(t, tt.input, convErr.Value)
					assert.ErrorIs(t, err, parser.ErrInvalidBool)
					continue
				}
				require.NoError(t, err, "input %q", tt.input)
				assert.Equal(t, tt.want, got, "input %q", tt.input)
			}
		})
	}
}

func TestIntegerPropertiesConvert(t *testing.T) {
	t.Parallel()
	for _, p := range []*ConnectionProperty[int]{ConnectionTimeout, WaitTimeSecs, MaxRowsInBuffer, MaxRowsPerPage} {
		t.Run(p.Key(), func(t *testing.T) {
			got, err := p.Convert("15")
			require.NoError(t, err)
			assert.Equal(t, 15, got)

			// Negative values are accepted by the converter.
			got, err = p.Convert("-1")
			require.NoError(t, err)
			assert.Equal(t, -1, got)

			_, err = p.Convert("abc")
			var convErr *ConversionError
			require.ErrorAs(t, err, &convErr)
			assert.Equal(t, p.Key(), convErr.Key)
			assert.Equal(t, "abc", convErr.Value)
			assert.ErrorIs(t, err, strconv.ErrSyntax)

			_, err = p.Convert("99999999999")
			require.ErrorAs(t, err, &convErr)
			assert.ErrorIs(t, err, strconv.ErrRange)
		})
	}
}

func TestStringPropertiesConvert(t *testing.T) {
	t.Parallel()

	_, err := User.Convert("")
	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "user", convErr.Key)
	assert.ErrorIs(t, err, parser.ErrEmptyString)

	got, err := User.Convert("root")
	require.NoError(t, err)
	assert.Equal(t, "root", got)

	for _, p := range []*ConnectionProperty[string]{Password, Database, AccessToken} {
		got, err := p.Convert("")
		require.NoError(t, err, p.Key())
		assert.Empty(t, got)

		got, err = p.Convert(" spaced value ")
		require.NoError(t, err, p.Key())
		assert.Equal(t, " spaced value ", got)
	}
}

func TestPropertyMetadata(t *testing.T) {
	t.Parallel()
	tests := []struct {
		prop       Property
		key        string
		typeName   string
		def        string
		hasDefault bool
		sensitive  bool
	}{
		{User, "user", TypeString, "", false, false},
		{Password, "password", TypeString, "", false, true},
		{SSL, "ssl", TypeBoolean, "false", true, false},
		{Database, "database", TypeString, "default", true, false},
		{AccessToken, "accesstoken", TypeString, "", false, true},
		{ConnectionTimeout, "connection_timeout", TypeInteger, "15", true, false},
		{PresignedURLDisabled, "presigned_url_disabled", TypeBoolean, "false", true, false},
		{CopyPurge, "copy_purge", TypeBoolean, "true", true, false},
		{WaitTimeSecs, "wait_time_secs", TypeInteger, "10", true, false},
		{MaxRowsInBuffer, "max_rows_in_buffer", TypeInteger, "5000000", true, false},
		{MaxRowsPerPage, "max_rows_per_page", TypeInteger, "100000", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.prop.Key())
			assert.Equal(t, tt.typeName, tt.prop.Type())
			def, ok := tt.prop.Default()
			assert.Equal(t, tt.hasDefault, ok)
			assert.Equal(t, tt.def, def)
			assert.Equal(t, tt.sensitive, tt.prop.Sensitive())
			assert.False(t, tt.prop.Required())
			assert.NotEmpty(t, tt.prop.Description())
		})
	}
}

func TestOneOfValidator(t *testing.T) {
	t.Parallel()
	p := NewStringProperty("compression", WithValidator(OneOf("gzip", "zstd")))

	assert.True(t, p.Validate("gzip"))
	assert.False(t, p.Validate("GZIP"))
	assert.False(t, p.Validate(""))

	_, err := p.ValidateAndConvert("lz4")
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "compression", valErr.Key)
	assert.Equal(t, "lz4", valErr.Value)
	assert.EqualError(t, err, `invalid value for compression: "lz4" is not allowed`)

	got, err := p.Resolve("zstd")
	require.NoError(t, err)
	assert.Equal(t, "zstd", got)
}

func TestAllowedAcceptsEverything(t *testing.T) {
	t.Parallel()
	for _, p := range AllProperties() {
		for _, raw := range []string{"", "abc", "-1", "true"} {
			assert.True(t, p.Validate(raw), "%s.Validate(%q)", p.Key(), raw)
		}
	}
}

func TestRequiredProperty(t *testing.T) {
	t.Parallel()
	p := NewStringProperty("warehouse", AsRequired())
	assert.True(t, p.Required())
	_, hasDefault := p.Default()
	assert.False(t, hasDefault)
}

func TestGetOnMissingValues(t *testing.T) {
	t.Parallel()
	_, ok := SSL.Get(nil)
	assert.False(t, ok)
	assert.Equal(t, 42, ConnectionTimeout.GetOr(nil, 42))
}

func TestMaskedValue(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "********", MaskedValue(Password, "secret"))
	assert.Equal(t, "", MaskedValue(Password, ""))
	assert.Equal(t, "mydb", MaskedValue(Database, "mydb"))
	assert.Equal(t, "x", MaskedValue(nil, "x"))
}

func TestConversionErrorMessage(t *testing.T) {
	t.Parallel()
	err := &ConversionError{Key: "connection_timeout", Value: "notanumber", Err: errors.New("boom")}
	assert.EqualError(t, err, `invalid value for connection_timeout: cannot convert "notanumber": boom`)
}
