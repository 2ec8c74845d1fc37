// Package chart assembles normalized, colored series ready for a renderer.
package chart

import (
	"context"
	"runtime"
	"strconv"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/sartorproj/seriesview/logger"
	"github.com/sartorproj/seriesview/normalize"
	"github.com/sartorproj/seriesview/palette"
	"github.com/sartorproj/seriesview/timeseries"
)

var log = logger.New().With("component", "chart")

// Visual is one series as handed to a renderer.
type Visual struct {
	Index  int                `json:"index"`
	Label  string             `json:"label"`
	Color  palette.Color      `json:"color"`
	Points timeseries.Trimmed `json:"points"`
}

// Chart is the output of Build: chart settings and one Visual per input series.
type Chart struct {
	Title          string   `json:"title"`
	Height         int      `json:"height"`
	ValuePrecision int      `json:"valuePrecision"`
	Offset         int64    `json:"offset"`
	Series         []Visual `json:"series"`
}

// Drawable returns the series that have at least one point with a valid time.
func (c *Chart) Drawable() []Visual {
	var out []Visual
	for _, v := range c.Series {
		if v.Points.ValidCount() > 0 {
			out = append(out, v)
		}
	}
	return out
}

// FormatValue formats an axis value with the chart's precision.
func (c *Chart) FormatValue(v float64) string {
	return FormatValue(v, c.ValuePrecision)
}

// FormatValue formats v with precision decimals.
func FormatValue(v float64, precision int) string {
	if precision < 0 {
		precision = -1
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// Options control how Build normalizes series.
type Options struct {
	// FixedOffset, when set, is used as the local offset in seconds.
	FixedOffset *int64
	// Location is the display timezone. Defaults to time.Local.
	Location *time.Location
	// Now returns the instant whose offset is used. Defaults to time.Now.
	Now func() time.Time
	// Palette defaults to palette.Default.
	Palette palette.Palette
	// MaxWorkers bounds concurrent series normalization. Defaults to GOMAXPROCS.
	MaxWorkers int
	// Logger receives series warnings. Defaults to the package logger.
	Logger *logger.Logger
}

// Offset returns the local offset in seconds Build will apply.
func (o Options) Offset() int64 {
	if o.FixedOffset != nil {
		return *o.FixedOffset
	}
	now := time.Now
	if o.Now != nil {
		now = o.Now
	}
	loc := time.Local
	if o.Location != nil {
		loc = o.Location
	}
	return normalize.LocalOffset(now().In(loc))
}

// Build normalizes and trims every series of cfg and assigns colors and labels.
// The result keeps the input order; series without data have no points.
func Build(ctx context.Context, cfg *Config, opts Options) (*Chart, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(opts.Palette) > 0 {
		if err := opts.Palette.Validate(); err != nil {
			return nil, err
		}
	}

	if cfg == nil {
		cfg = &Config{}
	}
	c := cfg.Defaults()
	offset := opts.Offset()

	l := opts.Logger
	if l == nil {
		l = log
	}

	workers := opts.MaxWorkers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	visuals := make([]Visual, len(c.Series))
	p := pool.New().WithContext(ctx).WithMaxGoroutines(workers)

	for i, s := range c.Series {
		i, s := i, s
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}

			var label string
			if s != nil {
				label = s.Label
			}
			if err := s.Validate(); err != nil {
				l.Warningf("series %d (%s): %v, using the first %d samples", i, palette.Label(i, label), err, s.Len())
			}

			visuals[i] = Visual{
				Index:  i,
				Label:  palette.Label(i, label),
				Color:  opts.Palette.Color(i),
				Points: normalize.Trim(s, offset),
			}
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}

	l.Debugf("built chart %q: %d series, offset %ds", c.Title, len(visuals), offset)

	return &Chart{
		Title:          c.Title,
		Height:         c.Height,
		ValuePrecision: c.ValuePrecision,
		Offset:         offset,
		Series:         visuals,
	}, nil
}
