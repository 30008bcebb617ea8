// Package error defines domain-specific errors for the LankaGrow application.
package error

import "errors"

// Report domain errors. Aggregation failures are deliberately opaque to the
// client; these sentinels exist for server-side logging and tests.
var (
	// ErrInvalidDateRange is returned when the requested window is malformed.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrReportQueryFailed is returned when an aggregation query fails.
	ErrReportQueryFailed = errors.New("report query failed")
)
