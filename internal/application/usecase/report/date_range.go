package report

import (
	"time"

	domainerror "github.com/lankagrow/backend/internal/domain/error"
)

const defaultWindow = 365 * 24 * time.Hour

// resolveRange validates a report window. Zero values default to the trailing
// year ending now.
func resolveRange(start, end time.Time) (time.Time, time.Time, error) {
	if end.IsZero() {
		end = time.Now().UTC()
	}
	if start.IsZero() {
		start = end.Add(-defaultWindow)
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, domainerror.ErrInvalidDateRange
	}
	return start, end, nil
}
