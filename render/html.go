package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/sartorproj/seriesview/chart"
)

const lineWidth = 2

// timeLabelJS formats axis times with UTC getters since they are already local.
const timeLabelJS = `function (v) {
	var d = new Date(v);
	var p = function (n) { return n < 10 ? '0' + n : '' + n; };
	return p(d.getUTCHours()) + ':' + p(d.getUTCMinutes()) + '\n' + p(d.getUTCMonth() + 1) + '/' + p(d.getUTCDate());
}`

// HTML renders an interactive line chart page with go-echarts.
type HTML struct {
	// Width is a CSS width. Defaults to 100%.
	Width string
}

// ContentType returns the HTML MIME type.
func (h *HTML) ContentType() string { return "text/html; charset=utf-8" }

// Render writes a standalone chart page to w.
func (h *HTML) Render(w io.Writer, c *chart.Chart) error {
	return h.Line(c).Render(w)
}

// Line builds the go-echarts line chart for c.
func (h *HTML) Line(c *chart.Chart) *charts.Line {
	width := h.Width
	if width == "" {
		width = "100%"
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: c.Title,
			Width:     width,
			Height:    strconv.Itoa(c.Height) + "px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: c.Title,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  "bottom",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "time",
			AxisLabel: &opts.AxisLabel{
				Formatter: opts.FuncOpts(timeLabelJS),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			AxisLabel: &opts.AxisLabel{
				Formatter: opts.FuncOpts(fmt.Sprintf("function (v) { return v.toFixed(%d); }", c.ValuePrecision)),
			},
		}),
	)

	for _, v := range c.Drawable() {
		data := make([]opts.LineData, 0, len(v.Points))
		for _, p := range v.Points {
			if !p.Valid() {
				continue
			}
			data = append(data, opts.LineData{Value: []interface{}{p.Time * 1000, p.Value}})
		}

		color := string(v.Color.RGB())
		line.AddSeries(v.Label, data,
			charts.WithLineChartOpts(opts.LineChart{
				ShowSymbol: opts.Bool(false),
			}),
			charts.WithLineStyleOpts(opts.LineStyle{
				Color: color,
				Width: lineWidth,
			}),
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: color,
			}),
		)
	}

	return line
}
