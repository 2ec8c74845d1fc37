// Package render draws a built chart.Chart.
//
// HTML produces an interactive go-echarts page, PNG and SVG a static go-chart
// image, JSON the plain list of labelled, colored series and CSV a table of
// the points on a shared time column.
//
// Point times are local wall-clock seconds (see normalize.Trim), so every
// renderer formats them as UTC to avoid shifting them a second time.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sartorproj/seriesview/chart"
)

var (
	// ErrUnknownFormat is returned by ByName for unsupported formats.
	ErrUnknownFormat = errors.New("unknown render format")
	// ErrNothingToDraw is returned when a static image or table has nothing
	// to show.
	ErrNothingToDraw = errors.New("nothing to draw")
)

// Renderer draws a chart to w.
type Renderer interface {
	Render(w io.Writer, c *chart.Chart) error
	ContentType() string
}

// Formats lists the names accepted by ByName.
var Formats = []string{"html", "png", "svg", "json", "csv"}

// ByName returns the renderer for a format name.
func ByName(name string) (Renderer, error) {
	switch strings.ToLower(name) {
	case "html":
		return &HTML{}, nil
	case "png":
		return &Image{Format: PNG}, nil
	case "svg":
		return &Image{Format: SVG}, nil
	case "json":
		return &JSON{}, nil
	case "csv":
		return &CSV{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (expected one of %s)", ErrUnknownFormat, name, strings.Join(Formats, ", "))
	}
}
