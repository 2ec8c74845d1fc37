// Command seriesview renders time-series charts from JSON/YAML configs,
// CSV files or resource samples, or serves the render API over HTTP.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/sartorproj/seriesview/chart"
	"github.com/sartorproj/seriesview/cli"
	"github.com/sartorproj/seriesview/logger"
	"github.com/sartorproj/seriesview/metricsview"
	"github.com/sartorproj/seriesview/render"
	"github.com/sartorproj/seriesview/server"
	"github.com/sartorproj/seriesview/timeseries"
)

var version = "dev"

const name = "seriesview"

func main() {
	opts := parseCLI()

	if opts.Version {
		fmt.Printf("%s, version: %s\n", name, version)
		return
	}

	log := logger.New().With("component", name)

	if lvl := os.Getenv("SERIESVIEW_LOG_LEVEL"); lvl != "" && !logger.Level.SetByName(lvl) {
		log.Warningf("unknown log level %q, keeping %s", lvl, logger.Level.Get())
	}
	if opts.Debug {
		logger.Level.Set(slog.LevelDebug)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, log); err != nil {
		log.Error(err)
		stop()
		os.Exit(1)
	}
}

func parseCLI() *cli.Option {
	opt, err := cli.Parse(name, os.Args[1:])
	if err != nil {
		if cli.IsHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}
	if err := opt.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		os.Exit(1)
	}
	return opt
}

func run(ctx context.Context, opts *cli.Option, log *logger.Logger) error {
	chartOpts := chart.Options{MaxWorkers: opts.Workers}
	if opts.TZ != "" {
		loc, err := time.LoadLocation(opts.TZ)
		if err != nil {
			return fmt.Errorf("time zone %q: %w", opts.TZ, err)
		}
		chartOpts.Location = loc
	}

	if opts.Listen != "" {
		srv := server.New(server.Config{Chart: chartOpts})
		return srv.Run(ctx, opts.Listen)
	}

	cfg, err := loadConfig(opts, &chartOpts)
	if err != nil {
		return err
	}
	if opts.Title != "" {
		cfg.Title = opts.Title
	}
	if opts.Height > 0 {
		cfg.Height = opts.Height
	}

	c, err := chart.Build(ctx, cfg, chartOpts)
	if err != nil {
		return err
	}
	log.Debugf("chart %q: %d series, %d drawable, offset %ds", c.Title, len(c.Series), len(c.Drawable()), c.Offset)

	renderer, err := render.ByName(opts.Format)
	if err != nil {
		return err
	}

	// the output file is created only after rendering succeeded
	var buf bytes.Buffer
	if err := renderer.Render(&buf, c); err != nil {
		return fmt.Errorf("render %s: %w", opts.Format, err)
	}

	if opts.Output == "" {
		_, err = buf.WriteTo(os.Stdout)
		return err
	}
	if err := saveOutput(opts.Output, &buf); err != nil {
		return err
	}
	log.Infof("wrote %s chart to %s", opts.Format, opts.Output)
	return nil
}

func saveOutput(path string, r io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func loadConfig(opts *cli.Option, chartOpts *chart.Options) (*chart.Config, error) {
	switch {
	case opts.Config != "":
		return chart.Load(opts.Config)
	case opts.CSV != "":
		series, err := timeseries.LoadCSV(opts.CSV, nil)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", opts.CSV, err)
		}
		title := filepath.Base(opts.CSV)
		return &chart.Config{Title: title, Series: series}, nil
	default:
		return loadSamples(opts, chartOpts)
	}
}

func loadSamples(opts *cli.Option, chartOpts *chart.Options) (*chart.Config, error) {
	f, err := os.Open(opts.Samples)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	samples, err := metricsview.ReadSamples(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", opts.Samples, err)
	}

	// the window ends at the newest sample so recorded files still chart
	end := metricsview.Latest(samples)
	from, to, bucket := metricsview.Window(metricsview.Span(opts.Span), end)
	view := metricsview.Build(opts.App, metricsview.Aggregate(samples, from, to, bucket))

	if chartOpts.Now == nil {
		chartOpts.Now = func() time.Time { return end }
	}
	return view.Config(metricsview.Kind(opts.Kind))
}
