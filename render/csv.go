package render

import (
	"io"
	"sort"

	"github.com/sartorproj/seriesview/chart"
	"github.com/sartorproj/seriesview/timeseries"
)

// CSV writes the drawable series as a table with one row per local time and
// one column per series. A series without a point at a row's time holds the
// sentinel, so the output loads back with timeseries.LoadCSV.
type CSV struct{}

// ContentType returns the CSV MIME type.
func (*CSV) ContentType() string { return "text/csv; charset=utf-8" }

// Render writes the table for c to w. It fails with ErrNothingToDraw when no
// series has a point with a valid time.
func (*CSV) Render(w io.Writer, c *chart.Chart) error {
	visuals := c.Drawable()
	if len(visuals) == 0 {
		return ErrNothingToDraw
	}

	seen := make(map[int64]struct{})
	for _, v := range visuals {
		for _, p := range v.Points {
			if p.Valid() {
				seen[p.Time] = struct{}{}
			}
		}
	}
	axis := make([]int64, 0, len(seen))
	for t := range seen {
		axis = append(axis, t)
	}
	sort.Slice(axis, func(i, j int) bool { return axis[i] < axis[j] })

	series := make([]*timeseries.Series, 0, len(visuals))
	for _, v := range visuals {
		byTime := make(map[int64]float64, len(v.Points))
		for _, p := range v.Points {
			if p.Valid() {
				byTime[p.Time] = p.Value
			}
		}
		values := make([]float64, len(axis))
		for i, t := range axis {
			values[i] = byTime[t]
		}
		series = append(series, &timeseries.Series{
			Label:      v.Label,
			Timestamps: timeseries.UnixSlice(axis),
			Values:     values,
		})
	}

	return timeseries.SaveCSV(w, series)
}
