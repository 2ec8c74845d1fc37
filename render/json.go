package render

import (
	"encoding/json"
	"io"

	"github.com/sartorproj/seriesview/chart"
	"github.com/sartorproj/seriesview/palette"
)

// JSON writes the labelled, colored series as JSON. Points are [time, value]
// pairs; points with an invalid time are left out.
type JSON struct {
	Indent bool
}

type jsonChart struct {
	Title          string       `json:"title"`
	Height         int          `json:"height"`
	ValuePrecision int          `json:"valuePrecision"`
	Offset         int64        `json:"offset"`
	Series         []jsonSeries `json:"series"`
}

type jsonSeries struct {
	Label  string        `json:"label"`
	Color  palette.Color `json:"color"`
	Points [][2]float64  `json:"points"`
}

// ContentType returns the JSON MIME type.
func (j *JSON) ContentType() string { return "application/json" }

// Render encodes c to w, one object per chart.
func (j *JSON) Render(w io.Writer, c *chart.Chart) error {
	out := jsonChart{
		Title:          c.Title,
		Height:         c.Height,
		ValuePrecision: c.ValuePrecision,
		Offset:         c.Offset,
		Series:         make([]jsonSeries, 0, len(c.Series)),
	}
	for _, v := range c.Series {
		s := jsonSeries{Label: v.Label, Color: v.Color, Points: make([][2]float64, 0, len(v.Points))}
		for _, p := range v.Points {
			if p.Valid() {
				s.Points = append(s.Points, [2]float64{float64(p.Time), p.Value})
			}
		}
		out.Series = append(out.Series, s)
	}

	enc := json.NewEncoder(w)
	if j.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}
