// Package seriesview renders line charts from metric time series.
//
// A chart is a list of series, each a pair of parallel timestamp and value
// arrays. Before drawing, every series is normalized: timestamps become epoch
// seconds, the idle stretches at either end (values equal to the sentinel 0)
// are cut away, and times are shifted into the viewer's local time zone.
//
// # Packages
//
//   - timeseries: the Series type, mixed text/numeric timestamps and CSV I/O
//   - normalize: timestamp parsing and active-range trimming
//   - palette: the series color palette and default labels
//   - chart: chart configs (JSON or YAML) and concurrent chart assembly
//   - render: HTML (ECharts), PNG/SVG (go-chart) and JSON output
//   - metricsview: per-instance resource samples bucketed into replica series
//   - server: the HTTP render API
//   - cli, logger: command line options and structured logging
//
// # Quick Start
//
// Build and render a chart:
//
//	cfg, err := chart.Load("cpu.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	c, err := chart.Build(ctx, cfg, chart.Options{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = (&render.HTML{}).Render(os.Stdout, c)
//
// Trim a single series by hand:
//
//	s, _ := timeseries.NewUnix([]int64{100, 160, 220}, []float64{0, 4, 0})
//	points := normalize.Trim(s, normalize.LocalOffset(time.Now()))
//	// points == [{160 + offset, 4}]
//
// The seriesview command wraps the same pipeline; see cmd/seriesview.
package seriesview
