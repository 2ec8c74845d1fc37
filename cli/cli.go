// Package cli parses the seriesview command line.
package cli

import (
	"errors"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Option defines command line options.
type Option struct {
	Config  string `short:"c" long:"config" description:"chart config file (.json, .yaml or .yml)"`
	CSV     string `long:"csv" description:"CSV file with a timestamp column and one column per series"`
	Samples string `long:"samples" description:"CSV file of resource samples (timestamp,instance,cpu_mcores,memory_bytes)"`
	App     string `long:"app" description:"application name used to label sample series" default:"app"`
	Kind    string `long:"kind" description:"resource charted from samples" choice:"cpu" choice:"memory" default:"cpu"`
	Span    string `long:"span" description:"time window charted from samples" choice:"1h" choice:"6h" choice:"1d" choice:"7d" default:"1h"`
	Title   string `short:"t" long:"title" description:"chart title"`
	Height  int    `long:"height" description:"chart height in pixels"`
	Format  string `short:"f" long:"format" description:"output format" choice:"html" choice:"png" choice:"svg" choice:"json" choice:"csv" default:"html"`
	Output  string `short:"o" long:"output" description:"output file (default stdout)"`
	TZ      string `long:"tz" description:"IANA time zone for display (default local)"`
	Listen  string `short:"l" long:"listen" description:"serve the render API on this address instead"`
	Workers int    `long:"workers" description:"series normalized in parallel (default GOMAXPROCS)"`
	Debug   bool   `short:"d" long:"debug" description:"debug mode"`
	Version bool   `short:"v" long:"version" description:"display the version and exit"`
}

// Parse returns parsed command-line flags in Option struct. args excludes the program name.
func Parse(name string, args []string) (*Option, error) {
	opt := &Option{}
	parser := flags.NewParser(opt, flags.Default)
	parser.Name = name
	parser.Usage = "[OPTIONS]"

	rest, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", rest)
	}

	return opt, nil
}

// IsHelp reports whether err is go-flags asking to show help.
func IsHelp(err error) bool {
	return flags.WroteHelp(err)
}

// Validate checks that exactly one input is given unless serving.
func (o *Option) Validate() error {
	if o.Version {
		return nil
	}
	n := 0
	for _, v := range []string{o.Config, o.CSV, o.Samples} {
		if v != "" {
			n++
		}
	}
	if o.Listen != "" {
		if n > 0 {
			return errors.New("--listen does not take an input file")
		}
		return nil
	}
	if n != 1 {
		return errors.New("exactly one of --config, --csv or --samples is required")
	}
	return nil
}
