package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/seriesview/timeseries"
)

func TestLoad(t *testing.T) {
	for _, path := range []string{"testdata/config.json", "testdata/config.yaml"} {
		t.Run(path, func(t *testing.T) {
			cfg, err := Load(path)
			require.NoError(t, err)

			assert.Equal(t, "CPU", cfg.Title)
			assert.Equal(t, 240, cfg.Height)
			assert.Equal(t, 3, cfg.ValuePrecision)
			require.Len(t, cfg.Series, 3)

			first := cfg.Series[0]
			assert.Equal(t, "web-0", first.Label)
			require.Len(t, first.Timestamps, 5)
			assert.True(t, first.Timestamps[0].IsText())
			assert.Equal(t, "2024-01-15T10:30:00", first.Timestamps[0].Text())
			assert.False(t, first.Timestamps[2].IsText())
			assert.Equal(t, float64(1705314720), first.Timestamps[2].Number())
			assert.Equal(t, []float64{0, 0.25, 0, 0.5, 0}, first.Values)

			assert.Equal(t, "", cfg.Series[1].Label)
			assert.Empty(t, cfg.Series[2].Timestamps)
			assert.Empty(t, cfg.Series[2].Values)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/missing.json")
	assert.Error(t, err)
}

func TestParseJSON(t *testing.T) {
	tests := map[string]struct {
		input   string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		"empty object": {
			input: `{}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Empty(t, cfg.Series)
				assert.Equal(t, Config{Title: DefaultTitle, Height: DefaultHeight, ValuePrecision: DefaultValuePrecision}, cfg.Defaults())
			},
		},
		"null series": {
			input: `{"series": null}`,
			check: func(t *testing.T, cfg *Config) { assert.Empty(t, cfg.Series) },
		},
		"null values are sentinels": {
			input: `{"series":[{"timestamps":[1,2,3],"values":[null,4,null]}]}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []float64{0, 4, 0}, cfg.Series[0].Values)
			},
		},
		"odd timestamps fail soft": {
			input: `{"series":[{"timestamps":[true,null,"x"],"values":[1,2,3]}]}`,
			check: func(t *testing.T, cfg *Config) {
				ts := cfg.Series[0].Timestamps
				require.Len(t, ts, 3)
				assert.Equal(t, "true", ts[0].Text())
				assert.Equal(t, "", ts[1].Text())
				assert.Equal(t, "x", ts[2].Text())
			},
		},
		"numeric string values": {
			input: `{"series":[{"timestamps":[1,2],"values":["2"," 0.5 "]}]}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []float64{2, 0.5}, cfg.Series[0].Values)
			},
		},
		"mismatched lengths are kept": {
			input: `{"series":[{"timestamps":[1],"values":[1,2]}]}`,
			check: func(t *testing.T, cfg *Config) {
				assert.ErrorIs(t, cfg.Series[0].Validate(), timeseries.ErrLengthMismatch)
			},
		},
		"malformed":              {input: `{"title":`, wantErr: true},
		"not an object":          {input: `[1,2]`, wantErr: true},
		"series not an array":    {input: `{"series":{}}`, wantErr: true},
		"series item not object": {input: `{"series":[1]}`, wantErr: true},
		"text value":             {input: `{"series":[{"timestamps":[1],"values":["high"]}]}`, wantErr: true},
		"bool value":             {input: `{"series":[{"timestamps":[1],"values":[true]}]}`, wantErr: true},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := ParseJSON([]byte(test.input))
			if test.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			test.check(t, cfg)
		})
	}
}

func TestParseYAML_Invalid(t *testing.T) {
	_, err := ParseYAML([]byte("series: [1, 2"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfig_Defaults(t *testing.T) {
	cfg := Config{Title: "Memory", Height: 500, ValuePrecision: 1}
	assert.Equal(t, cfg, cfg.Defaults())

	got := Config{Height: -1}.Defaults()
	assert.Equal(t, DefaultTitle, got.Title)
	assert.Equal(t, DefaultHeight, got.Height)
	assert.Equal(t, DefaultValuePrecision, got.ValuePrecision)
}
