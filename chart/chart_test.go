package chart

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/seriesview/logger"
	"github.com/sartorproj/seriesview/palette"
	"github.com/sartorproj/seriesview/timeseries"
)

func offset(sec int64) *int64 { return &sec }

func TestBuild(t *testing.T) {
	cfg, err := Load("testdata/config.json")
	require.NoError(t, err)

	c, err := Build(context.Background(), cfg, Options{FixedOffset: offset(-18000)})
	require.NoError(t, err)

	assert.Equal(t, "CPU", c.Title)
	assert.Equal(t, 240, c.Height)
	assert.Equal(t, 3, c.ValuePrecision)
	assert.Equal(t, int64(-18000), c.Offset)
	require.Len(t, c.Series, 3)

	web0 := c.Series[0]
	assert.Equal(t, "web-0", web0.Label)
	assert.Equal(t, palette.Default[0], web0.Color)
	assert.Equal(t, timeseries.Trimmed{
		{Time: 1705314660 - 18000, Value: 0.25},
		{Time: 1705314720 - 18000, Value: 0},
		{Time: 1705314780 - 18000, Value: 0.5},
	}, web0.Points)

	assert.Equal(t, "Series 2", c.Series[1].Label)
	assert.Equal(t, palette.Default[1], c.Series[1].Color)
	assert.Empty(t, c.Series[1].Points)

	assert.Equal(t, "web-2", c.Series[2].Label)
	assert.Empty(t, c.Series[2].Points)

	drawable := c.Drawable()
	require.Len(t, drawable, 1)
	assert.Equal(t, 0, drawable[0].Index)
}

func TestBuild_OrderIsStable(t *testing.T) {
	cfg := &Config{}
	for i := 0; i < 50; i++ {
		s := timeseries.NewRegular(time.Unix(1705314600, 0), time.Minute, []float64{0, float64(i + 1), 0})
		s.Label = fmt.Sprintf("s-%d", i)
		cfg.Series = append(cfg.Series, s)
	}

	c, err := Build(context.Background(), cfg, Options{FixedOffset: offset(0), MaxWorkers: 4})
	require.NoError(t, err)

	require.Len(t, c.Series, 50)
	for i, v := range c.Series {
		assert.Equal(t, i, v.Index)
		assert.Equal(t, fmt.Sprintf("s-%d", i), v.Label)
		assert.Equal(t, palette.Default.Color(i), v.Color)
		require.Len(t, v.Points, 1)
		assert.Equal(t, float64(i+1), v.Points[0].Value)
	}
}

func TestBuild_Defaults(t *testing.T) {
	c, err := Build(context.Background(), nil, Options{FixedOffset: offset(0)})
	require.NoError(t, err)

	assert.Equal(t, DefaultTitle, c.Title)
	assert.Equal(t, DefaultHeight, c.Height)
	assert.Equal(t, DefaultValuePrecision, c.ValuePrecision)
	assert.Empty(t, c.Series)
	assert.Empty(t, c.Drawable())
}

func TestBuild_OffsetFromLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	now := func() time.Time { return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC) }

	opts := Options{Location: loc, Now: now}
	assert.Equal(t, int64(-18000), opts.Offset())

	s, err := timeseries.NewUnix([]int64{1705315800}, []float64{1})
	require.NoError(t, err)

	c, err := Build(context.Background(), &Config{Series: []*timeseries.Series{s}}, opts)
	require.NoError(t, err)
	assert.Equal(t, int64(1705315800-18000), c.Series[0].Points[0].Time)
}

func TestBuild_CustomPalette(t *testing.T) {
	s := timeseries.NewRegular(time.Unix(0, 0), time.Second, []float64{1})
	cfg := &Config{Series: []*timeseries.Series{s, s, s}}

	c, err := Build(context.Background(), cfg, Options{FixedOffset: offset(0), Palette: palette.Palette{"#000000", "#ffffff"}})
	require.NoError(t, err)

	assert.Equal(t, palette.Color("#000000"), c.Series[0].Color)
	assert.Equal(t, palette.Color("#ffffff"), c.Series[1].Color)
	assert.Equal(t, palette.Color("#000000"), c.Series[2].Color)
}

func TestBuild_InvalidPalette(t *testing.T) {
	cfg := &Config{Series: []*timeseries.Series{timeseries.NewRegular(time.Unix(0, 0), time.Second, []float64{1})}}

	_, err := Build(context.Background(), cfg, Options{Palette: palette.Palette{"#000000", "blue"}})

	assert.ErrorIs(t, err, palette.ErrInvalidColor)
}

func TestBuild_LogsLengthMismatch(t *testing.T) {
	var buf bytes.Buffer
	s := &timeseries.Series{Timestamps: timeseries.UnixSlice([]int64{10, 20}), Values: []float64{1, 2, 3}}

	c, err := Build(context.Background(), &Config{Series: []*timeseries.Series{s}}, Options{
		FixedOffset: offset(0),
		Logger:      logger.NewWriter(&buf),
	})
	require.NoError(t, err)

	assert.Len(t, c.Series[0].Points, 2)
	assert.Contains(t, buf.String(), "series 0 (Series 1)")
	assert.Contains(t, buf.String(), "using the first 2 samples")
}

func TestBuild_NilSeries(t *testing.T) {
	c, err := Build(context.Background(), &Config{Series: []*timeseries.Series{nil}}, Options{FixedOffset: offset(0)})
	require.NoError(t, err)

	require.Len(t, c.Series, 1)
	assert.Equal(t, "Series 1", c.Series[0].Label)
	assert.Empty(t, c.Series[0].Points)
}

func TestBuild_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Build(ctx, &Config{}, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "0.25", FormatValue(0.25, 2))
	assert.Equal(t, "1.000", FormatValue(1, 3))
	assert.Equal(t, "1.5", FormatValue(1.5, -1))

	c := &Chart{ValuePrecision: 1}
	assert.Equal(t, "2.3", c.FormatValue(2.26))
}
