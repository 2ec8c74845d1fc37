package metricsview

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sartorproj/seriesview/normalize"
	"github.com/sartorproj/seriesview/timeseries"
)

// ErrNoSamples is returned when a sample source is empty.
var ErrNoSamples = errors.New("no samples")

var sampleColumns = []string{"timestamp", "instance", "cpu_mcores", "memory_bytes"}

// ReadSamples reads CSV rows of timestamp, instance, cpu_mcores, memory_bytes.
// A header row with those names is required. Timestamps are UTC, either
// ISO-8601 text or epoch seconds.
func ReadSamples(r io.Reader) ([]Sample, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = len(sampleColumns)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoSamples
	}
	if err != nil {
		return nil, err
	}
	for i, want := range sampleColumns {
		if got := strings.ToLower(strings.TrimSpace(header[i])); got != want {
			return nil, fmt.Errorf("column %d: expected %q, got %q", i+1, want, got)
		}
	}

	var samples []Sample
	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		s, err := parseSample(record)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		samples = append(samples, s)
	}

	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	return samples, nil
}

func parseSample(record []string) (Sample, error) {
	raw := strings.TrimSpace(record[0])
	ts := timeseries.ISO(raw)
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		ts = timeseries.Unix(n)
	}
	sec, err := normalize.ParseTime(ts)
	if err != nil {
		return Sample{}, err
	}

	cpu, err := strconv.ParseInt(strings.TrimSpace(record[2]), 10, 64)
	if err != nil {
		return Sample{}, fmt.Errorf("cpu_mcores: %w", err)
	}
	mem, err := strconv.ParseInt(strings.TrimSpace(record[3]), 10, 64)
	if err != nil {
		return Sample{}, fmt.Errorf("memory_bytes: %w", err)
	}

	return Sample{
		Timestamp: time.Unix(sec, 0).UTC(),
		Instance:  strings.TrimSpace(record[1]),
		CPU:       cpu,
		Memory:    mem,
	}, nil
}

// Latest returns the newest sample time, or the zero time for no samples.
func Latest(samples []Sample) time.Time {
	var latest time.Time
	for _, s := range samples {
		if s.Timestamp.After(latest) {
			latest = s.Timestamp
		}
	}
	return latest
}
