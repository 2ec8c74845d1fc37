// Package normalize turns raw series into display-ready points.
//
// Time converts a raw timestamp into epoch seconds. Textual timestamps are
// read as UTC whether or not they carry the Z designator:
//
//	normalize.Time(timeseries.ISO("2024-01-15T10:30:00"))  // 1705314600
//	normalize.Time(timeseries.Unix(1705315800))            // 1705315800
//
// Trim keeps the active range of a series, from the first to the last
// non-sentinel value, and shifts every timestamp into local display time:
//
//	offset := normalize.LocalOffset(time.Now())
//	points := normalize.Trim(series, offset)
//
// Zeros inside the active range are kept as they are; only the leading and
// trailing runs are dropped. The offset is applied uniformly, so a daylight
// saving change inside the displayed range is not reflected.
//
// Everything here is pure and safe to call from many goroutines.
package normalize
