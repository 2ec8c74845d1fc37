package metricsview

import "time"

// Span is the length of the displayed time window.
type Span string

// Supported spans.
const (
	Span1h Span = "1h"
	Span6h Span = "6h"
	Span1d Span = "1d"
	Span7d Span = "7d"
)

// Spans lists the supported spans, shortest first.
var Spans = []Span{Span1h, Span6h, Span1d, Span7d}

// Sanitize returns s if it is supported, otherwise Span1h and false.
func (s Span) Sanitize() (Span, bool) {
	for _, v := range Spans {
		if s == v {
			return s, true
		}
	}
	return Span1h, false
}

// Window returns the time range ending at now covered by span and the bucket
// width in seconds samples are averaged over.
func Window(span Span, now time.Time) (from, to time.Time, bucket int64) {
	span, _ = span.Sanitize()
	to = now.UTC()
	switch span {
	case Span6h:
		from = to.Add(-6 * time.Hour)
		bucket = 2 * 60
	case Span1d:
		from = to.Add(-24 * time.Hour)
		bucket = 5 * 60
	case Span7d:
		from = to.Add(-7 * 24 * time.Hour)
		bucket = 15 * 60
	default:
		from = to.Add(-1 * time.Hour)
		bucket = 60
	}
	return from, to, bucket
}
