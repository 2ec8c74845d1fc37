package chart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v2"

	"github.com/sartorproj/seriesview/timeseries"
)

// Values used for zero fields of a Config.
const (
	DefaultTitle          = "Metrics"
	DefaultHeight         = 300
	DefaultValuePrecision = 2
)

// ErrInvalidConfig is returned for chart configurations that cannot be read.
var ErrInvalidConfig = errors.New("invalid chart config")

// Config is the input handed over by the data-fetch layer.
type Config struct {
	Title          string               `json:"title" yaml:"title"`
	Height         int                  `json:"height" yaml:"height"`
	ValuePrecision int                  `json:"valuePrecision" yaml:"valuePrecision"`
	Series         []*timeseries.Series `json:"series" yaml:"series"`
}

// Defaults returns a copy of c with zero fields replaced by their defaults.
func (c Config) Defaults() Config {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.ValuePrecision <= 0 {
		c.ValuePrecision = DefaultValuePrecision
	}
	return c
}

// Load reads a config file. .yaml and .yml files are YAML, anything else JSON.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

// ParseJSON reads a config from JSON. Timestamps may mix strings and numbers
// and never fail the parse: unreadable ones normalize to an invalid time.
// Values must be numbers, numeric strings or null (the sentinel); any other
// value rejects the config. Missing arrays are read as empty.
func ParseJSON(data []byte) (*Config, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidConfig)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidConfig)
	}

	cfg := &Config{
		Title:          root.Get("title").String(),
		Height:         int(root.Get("height").Int()),
		ValuePrecision: int(root.Get("valuePrecision").Int()),
	}

	series := root.Get("series")
	if series.Exists() && series.Type != gjson.Null && !series.IsArray() {
		return nil, fmt.Errorf("%w: series must be an array", ErrInvalidConfig)
	}

	for i, item := range series.Array() {
		if !item.IsObject() {
			return nil, fmt.Errorf("%w: series %d must be an object", ErrInvalidConfig, i)
		}
		s, err := parseJSONSeries(item)
		if err != nil {
			return nil, fmt.Errorf("%w: series %d: %v", ErrInvalidConfig, i, err)
		}
		cfg.Series = append(cfg.Series, s)
	}

	return cfg, nil
}

func parseJSONSeries(item gjson.Result) (*timeseries.Series, error) {
	tsArr := item.Get("timestamps").Array()
	valArr := item.Get("values").Array()

	s := &timeseries.Series{
		Label:      item.Get("label").String(),
		Timestamps: make([]timeseries.Timestamp, 0, len(tsArr)),
		Values:     make([]float64, 0, len(valArr)),
	}

	for _, ts := range tsArr {
		switch ts.Type {
		case gjson.Number:
			s.Timestamps = append(s.Timestamps, timeseries.UnixFloat(ts.Num))
		case gjson.String:
			s.Timestamps = append(s.Timestamps, timeseries.ISO(ts.Str))
		case gjson.Null:
			s.Timestamps = append(s.Timestamps, timeseries.ISO(""))
		default:
			// kept so one bad sample does not shift the rest; it normalizes to an invalid time
			s.Timestamps = append(s.Timestamps, timeseries.ISO(ts.Raw))
		}
	}

	for j, v := range valArr {
		switch v.Type {
		case gjson.Number:
			s.Values = append(s.Values, v.Num)
		case gjson.Null:
			s.Values = append(s.Values, timeseries.Sentinel)
		case gjson.String:
			f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
			if err != nil {
				return nil, fmt.Errorf("value %d: expected a number, got %s", j, v.Raw)
			}
			s.Values = append(s.Values, f)
		default:
			return nil, fmt.Errorf("value %d: expected a number, got %s", j, v.Raw)
		}
	}

	return s, nil
}

// ParseYAML reads a config from YAML using the same keys as JSON.
func ParseYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &cfg, nil
}
