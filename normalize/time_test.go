package normalize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/seriesview/timeseries"
)

func TestTime(t *testing.T) {
	tests := map[string]struct {
		ts   timeseries.Timestamp
		want int64
	}{
		"text without designator is UTC": {ts: timeseries.ISO("2024-01-15T10:30:00"), want: 1705314600},
		"text with designator":           {ts: timeseries.ISO("2024-01-15T10:30:00Z"), want: 1705314600},
		"fraction is floored":            {ts: timeseries.ISO("2024-01-15T10:30:00.999"), want: 1705314600},
		"fraction before epoch floored":  {ts: timeseries.ISO("1969-12-31T23:59:59.5Z"), want: -1},
		"explicit offset":                {ts: timeseries.ISO("2024-01-15T12:30:00+02:00"), want: 1705314600},
		"store layout":                   {ts: timeseries.ISO("2024-01-15 10:30:00"), want: 1705314600},
		"slashed date":                   {ts: timeseries.ISO("2024/01/15 10:30:00"), want: 1705314600},
		"month name":                     {ts: timeseries.ISO("Jan 15, 2024 10:30:00 AM"), want: 1705314600},
		"surrounding space":              {ts: timeseries.ISO(" 2024-01-15T10:30:00 "), want: 1705314600},
		"numeric passthrough":            {ts: timeseries.Unix(1705315800), want: 1705315800},
		"numeric fraction truncated":     {ts: timeseries.UnixFloat(1705315800.9), want: 1705315800},
		"numeric zero":                   {ts: timeseries.Timestamp{}, want: 0},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.want, Time(test.ts))
		})
	}
}

func TestTime_DesignatorIsOptional(t *testing.T) {
	assert.Equal(t,
		Time(timeseries.ISO("2024-01-15T10:30:00Z")),
		Time(timeseries.ISO("2024-01-15T10:30:00")),
	)
}

func TestTime_Invalid(t *testing.T) {
	tests := map[string]timeseries.Timestamp{
		"garbage":  timeseries.ISO("not a time"),
		"empty":    timeseries.ISO(""),
		"clock":    timeseries.ISO("10:30"),
		"clock s":  timeseries.ISO("10:30:00"),
		"fragment": timeseries.ISO("5/6"),
		"decimal":  timeseries.ISO("1.5"),
		"digits":   timeseries.ISO("1705315800"),
		"year":     timeseries.ISO("2024"),
		"year mon": timeseries.ISO("2024-01"),
		"nan":      timeseries.UnixFloat(math.NaN()),
		"inf":      timeseries.UnixFloat(math.Inf(1)),
		"too big":  timeseries.UnixFloat(1e30),
		"too tiny": timeseries.UnixFloat(-1e30),
	}

	for name, ts := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, timeseries.InvalidTime, Time(ts))

			_, err := ParseTime(ts)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTimestamp)
		})
	}
}
