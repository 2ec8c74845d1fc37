package normalize

import (
	"time"

	"github.com/sartorproj/seriesview/timeseries"
)

// LocalOffset returns the UTC offset of t's location in seconds, east positive.
func LocalOffset(t time.Time) int64 {
	_, offset := t.Zone()
	return int64(offset)
}

// ActiveRange returns the indexes of the first and last non-sentinel values.
// ok is false when every value is the sentinel or there are none.
func ActiveRange(values []float64) (first, last int, ok bool) {
	first, last = -1, -1
	for i, v := range values {
		if v == timeseries.Sentinel {
			continue
		}
		if first == -1 {
			first = i
		}
		last = i
	}
	return first, last, first != -1
}

// Trim returns the points of s from its first to its last non-sentinel
// value, inclusive, with times shifted by localOffset seconds.
//
// Sentinel values inside that range are kept. Invalid timestamps yield
// points with timeseries.InvalidTime. Only the first s.Len() samples are
// considered when the two slices differ in length.
func Trim(s *timeseries.Series, localOffset int64) timeseries.Trimmed {
	n := s.Len()
	if n == 0 {
		return timeseries.Trimmed{}
	}

	first, last, ok := ActiveRange(s.Values[:n])
	if !ok {
		return timeseries.Trimmed{}
	}

	out := make(timeseries.Trimmed, 0, last-first+1)
	for j := first; j <= last; j++ {
		t := Time(s.Timestamps[j])
		if t != timeseries.InvalidTime {
			t += localOffset
		}
		out = append(out, timeseries.Point{Time: t, Value: s.Values[j]})
	}
	return out
}
