package render

import (
	"io"
	"math"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/sartorproj/seriesview/chart"
	"github.com/sartorproj/seriesview/palette"
)

// ImageFormat selects the go-chart output encoding.
type ImageFormat int

// Supported image encodings.
const (
	PNG ImageFormat = iota
	SVG
)

const defaultImageWidth = 900

// Image renders a static line chart with go-chart.
type Image struct {
	Format ImageFormat
	// Width in pixels. Defaults to 900.
	Width int
}

// ContentType returns the MIME type of the image format.
func (im *Image) ContentType() string {
	if im.Format == SVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// Render draws c and encodes it to w.
func (im *Image) Render(w io.Writer, c *chart.Chart) error {
	graph, err := im.Graph(c)
	if err != nil {
		return err
	}
	provider := gochart.PNG
	if im.Format == SVG {
		provider = gochart.SVG
	}
	return graph.Render(provider, w)
}

// Graph builds the go-chart chart for c. It fails with ErrNothingToDraw when
// the drawable points do not span at least two distinct times.
func (im *Image) Graph(c *chart.Chart) (*gochart.Chart, error) {
	width := im.Width
	if width <= 0 {
		width = defaultImageWidth
	}

	var (
		series     []gochart.Series
		times      = map[int64]struct{}{}
		yMin, yMax = math.Inf(1), math.Inf(-1)
	)

	for _, v := range c.Drawable() {
		ts := gochart.TimeSeries{
			Name: v.Label,
			Style: gochart.Style{
				StrokeColor: toDrawingColor(v.Color),
				StrokeWidth: lineWidth,
			},
		}
		for _, p := range v.Points {
			if !p.Valid() {
				continue
			}
			ts.XValues = append(ts.XValues, time.Unix(p.Time, 0).UTC())
			ts.YValues = append(ts.YValues, p.Value)
			times[p.Time] = struct{}{}
		}
		if lo, hi, ok := v.Points.Bounds(); ok {
			yMin = math.Min(yMin, lo)
			yMax = math.Max(yMax, hi)
		}
		series = append(series, ts)
	}

	if len(times) < 2 {
		return nil, ErrNothingToDraw
	}

	graph := &gochart.Chart{
		Title:  c.Title,
		Width:  width,
		Height: c.Height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: gochart.XAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return gochart.TimeFromFloat64(f).UTC().Format("01/02 15:04")
				}
				return ""
			},
		},
		YAxis: gochart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return c.FormatValue(f)
				}
				return ""
			},
		},
		Series: series,
	}
	if yMin == yMax {
		graph.YAxis.Range = &gochart.ContinuousRange{Min: yMin - 1, Max: yMax + 1}
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(graph)}

	return graph, nil
}

func toDrawingColor(c palette.Color) drawing.Color {
	r, g, b, a, err := c.RGBA()
	if err != nil {
		return gochart.ColorBlack
	}
	return drawing.Color{R: r, G: g, B: b, A: a}
}
