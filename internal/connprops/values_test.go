package connprops

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/databendcloud/databend-props/internal/pagination"
)

func TestValuesConfig(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		raw  map[string]string
		want Config
	}{
		{
			name: "defaults only",
			raw:  nil,
			want: Config{
				Database:          "default",
				ConnectionTimeout: 15 * time.Second,
				CopyPurge:         true,
				Pagination:        pagination.Defaults(),
			},
		},
		{
			name: "overrides",
			raw: map[string]string{
				"user":                   "root",
				"password":               "secret",
				"accesstoken":            "tok",
				"ssl":                    "TRUE",
				"database":               "mydb",
				"connection_timeout":     "30",
				"presigned_url_disabled": "true",
				"copy_purge":             "false",
				"wait_time_secs":         "5",
				"max_rows_in_buffer":     "1000",
				"max_rows_per_page":      "100",
			},
			want: Config{
				User:                 "root",
				Password:             "secret",
				SSL:                  true,
				Database:             "mydb",
				AccessToken:          "tok",
				ConnectionTimeout:    30 * time.Second,
				PresignedURLDisabled: true,
				CopyPurge:            false,
				Pagination:           pagination.Options{WaitTimeSecs: 5, MaxRowsInBuffer: 1000, MaxRowsPerPage: 100},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vals, err := Resolve(tt.raw)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, vals.Config()); diff != "" {
				t.Errorf("Config() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValuesAccessors(t *testing.T) {
	t.Parallel()
	vals, err := Resolve(map[string]string{"user": "root", "ssl": "True"})
	require.NoError(t, err)

	raw, ok := vals.Raw("ssl")
	require.True(t, ok)
	assert.Equal(t, "True", raw, "raw value is kept as supplied")

	v, ok := vals.Value("ssl")
	require.True(t, ok)
	assert.Equal(t, true, v)

	want := []string{
		"connection_timeout", "copy_purge", "database", "max_rows_in_buffer",
		"max_rows_per_page", "presigned_url_disabled", "ssl", "user", "wait_time_secs",
	}
	assert.Equal(t, want, vals.Keys())

	m := vals.Map()
	m["user"] = "other"
	got, _ := User.Get(vals)
	assert.Equal(t, "root", got)
	raw, _ = vals.Raw("user")
	assert.Equal(t, "root", raw)
	assert.Empty(t, vals.Ignored())
}

func TestLogFieldsMasksSecrets(t *testing.T) {
	t.Parallel()
	vals, err := Resolve(map[string]string{"password": "secret", "accesstoken": "tok", "user": "root"})
	require.NoError(t, err)

	core, logs := observer.New(zap.InfoLevel)
	zap.New(core).Info("resolved", LogFields(vals)...)

	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "********", ctx["password"])
	assert.Equal(t, "********", ctx["accesstoken"])
	assert.Equal(t, "root", ctx["user"])
	assert.Equal(t, "15", ctx["connection_timeout"])
}
