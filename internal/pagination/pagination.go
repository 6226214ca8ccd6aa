// Package pagination holds the client-side result paging limits the
// connection property defaults are derived from.
package pagination

import (
	"errors"
	"fmt"
)

// Defaults applied when a connection does not override the paging limits.
const (
	DefaultWaitTimeSecs    = 10
	DefaultMaxRowsInBuffer = 5 * 1000 * 1000
	DefaultMaxRowsPerPage  = 100 * 1000
)

// Options controls how query results are paged from the server.
type Options struct {
	// WaitTimeSecs is how long the server may hold a page request open.
	WaitTimeSecs int `json:"wait_time_secs"`
	// MaxRowsInBuffer bounds the rows buffered client-side.
	MaxRowsInBuffer int `json:"max_rows_in_buffer"`
	// MaxRowsPerPage bounds the rows returned per page.
	MaxRowsPerPage int `json:"max_rows_per_page"`
}

// Defaults returns the default paging options.
func Defaults() Options {
	return Options{
		WaitTimeSecs:    DefaultWaitTimeSecs,
		MaxRowsInBuffer: DefaultMaxRowsInBuffer,
		MaxRowsPerPage:  DefaultMaxRowsPerPage,
	}
}

// Validate reports every non-positive limit.
func (o Options) Validate() error {
	var errs []error
	if o.WaitTimeSecs <= 0 {
		errs = append(errs, fmt.Errorf("wait_time_secs must be positive, got %d", o.WaitTimeSecs))
	}
	if o.MaxRowsInBuffer <= 0 {
		errs = append(errs, fmt.Errorf("max_rows_in_buffer must be positive, got %d", o.MaxRowsInBuffer))
	}
	if o.MaxRowsPerPage <= 0 {
		errs = append(errs, fmt.Errorf("max_rows_per_page must be positive, got %d", o.MaxRowsPerPage))
	}
	return errors.Join(errs...)
}
