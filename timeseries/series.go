package timeseries

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Sentinel is the reserved value meaning "no observation" for a sample slot.
// A genuine zero reading cannot be told apart from a missing one, so a real
// zero at either edge of a series is indistinguishable from absence.
const Sentinel = 0.0

// InvalidTime marks a timestamp that could not be normalized.
const InvalidTime int64 = math.MinInt64

// ErrLengthMismatch is returned when timestamps and values differ in length.
var ErrLengthMismatch = errors.New("timestamps and values must have the same length")

// Series is one raw series: parallel timestamp and value slices.
type Series struct {
	Label      string      `json:"label,omitempty" yaml:"label"`
	Timestamps []Timestamp `json:"timestamps" yaml:"timestamps"`
	Values     []float64   `json:"values" yaml:"values"`
}

// NewWithTimestamps creates a series with explicit timestamps.
func NewWithTimestamps(timestamps []Timestamp, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, fmt.Errorf("%w: %d timestamps, %d values", ErrLengthMismatch, len(timestamps), len(values))
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}, nil
}

// NewUnix creates a series from epoch-second timestamps.
func NewUnix(secs []int64, values []float64) (*Series, error) {
	return NewWithTimestamps(UnixSlice(secs), values)
}

// NewRegular creates a series with evenly spaced numeric timestamps.
func NewRegular(start time.Time, step time.Duration, values []float64) *Series {
	timestamps := make([]Timestamp, len(values))
	for i := range timestamps {
		timestamps[i] = Unix(start.Add(time.Duration(i) * step).Unix())
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}
}

// Len returns the number of usable samples, the shorter of the two slices.
func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return min(len(s.Timestamps), len(s.Values))
}

// Validate reports a length mismatch between timestamps and values.
// It never repairs the series.
func (s *Series) Validate() error {
	if s == nil {
		return nil
	}
	if len(s.Timestamps) != len(s.Values) {
		return fmt.Errorf("%w: %d timestamps, %d values", ErrLengthMismatch, len(s.Timestamps), len(s.Values))
	}
	return nil
}

// Point is one normalized sample: local epoch seconds and the value.
type Point struct {
	Time  int64   `json:"time"`
	Value float64 `json:"value"`
}

// Valid reports whether the point carries a usable time.
func (p Point) Valid() bool { return p.Time != InvalidTime }

// Trimmed is a normalized series spanning the active range of its source.
type Trimmed []Point

// ValidCount returns the number of points with a usable time.
func (t Trimmed) ValidCount() int {
	n := 0
	for _, p := range t {
		if p.Valid() {
			n++
		}
	}
	return n
}

// Bounds returns the smallest and largest value over points with a usable
// time. ok is false when there are none.
func (t Trimmed) Bounds() (lo, hi float64, ok bool) {
	for _, p := range t {
		if !p.Valid() {
			continue
		}
		if !ok {
			lo, hi, ok = p.Value, p.Value, true
			continue
		}
		lo = min(lo, p.Value)
		hi = max(hi, p.Value)
	}
	return lo, hi, ok
}
