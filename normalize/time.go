package normalize

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/sartorproj/seriesview/timeseries"
)

// ErrInvalidTimestamp is returned by ParseTime for values that are not a time.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// calendarDate matches a full year-month-day, numeric or with a month name.
// Text without one (a clock time, a bare number) is not a point in time.
var calendarDate = regexp.MustCompile(`(?i)\d{4}[-/.]\d{1,2}[-/.]\d{1,2}` +
	`|\d{1,2}[-/.]\d{1,2}[-/.]\d{4}` +
	`|[a-z]{3,}\.?\s+\d{1,2}(st|nd|rd|th)?,?\s+\d{4}` +
	`|\d{1,2}(st|nd|rd|th)?\s+[a-z]{3,}\.?,?\s+\d{4}`)

// Time returns ts as epoch seconds, or timeseries.InvalidTime when it cannot
// be read. Numeric timestamps pass through with any fraction truncated.
func Time(ts timeseries.Timestamp) int64 {
	sec, err := ParseTime(ts)
	if err != nil {
		return timeseries.InvalidTime
	}
	return sec
}

// ParseTime is Time with the reason for a failure.
func ParseTime(ts timeseries.Timestamp) (int64, error) {
	if !ts.IsText() {
		n := ts.Number()
		if math.IsNaN(n) || math.IsInf(n, 0) || n >= math.MaxInt64 || n <= math.MinInt64 {
			return 0, fmt.Errorf("%w: %v", ErrInvalidTimestamp, n)
		}
		return int64(n), nil
	}

	t, err := parseUTC(ts.Text())
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}

func parseUTC(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrInvalidTimestamp)
	}

	iso := s
	if !strings.HasSuffix(iso, "Z") {
		iso += "Z"
	}
	if t, err := time.Parse(time.RFC3339Nano, iso); err == nil {
		return t, nil
	}

	// Other layouts, e.g. "2006-01-02 15:04:05" from the metrics store, still as UTC.
	if !calendarDate.MatchString(s) {
		return time.Time{}, fmt.Errorf("%w: %q: no calendar date", ErrInvalidTimestamp, s)
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidTimestamp, s, err)
	}
	if t.Year() <= 0 {
		return time.Time{}, fmt.Errorf("%w: %q: year %d", ErrInvalidTimestamp, s, t.Year())
	}
	return t, nil
}
