package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrNoData is returned when a CSV source holds no series.
var ErrNoData = errors.New("no series found in CSV")

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	TimeColumn string // Column name for timestamps (default: first recognised time header, else column 0)
	HasHeader  bool   // Whether CSV has header row (default: true)
	Delimiter  rune   // Field delimiter (default: ',')
	SkipRows   int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		HasHeader: true,
		Delimiter: ',',
	}
}

// LoadCSV loads series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) ([]*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads series from an io.Reader.
//
// One column holds the timestamps, every other column becomes one series
// labelled by its header. Empty, NA and null cells become the sentinel.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) ([]*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	var headers []string
	timeIdx := -1

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				return nil, ErrNoData
			}
			return nil, err
		}
		for i, h := range header {
			h = cleanCell(h)
			headers = append(headers, h)
			switch {
			case opts.TimeColumn != "" && h == opts.TimeColumn:
				timeIdx = i
			case opts.TimeColumn == "" && timeIdx == -1 && isTimeHeader(h):
				timeIdx = i
			}
		}
		if timeIdx == -1 {
			if opts.TimeColumn != "" {
				return nil, fmt.Errorf("time column %q not found", opts.TimeColumn)
			}
			timeIdx = 0
		}
	} else {
		timeIdx = 0
	}

	var series []*Series
	var columns []int

	ensure := func(width int) {
		if series != nil {
			return
		}
		for i := 0; i < width; i++ {
			if i == timeIdx {
				continue
			}
			s := &Series{Timestamps: []Timestamp{}, Values: []float64{}}
			if i < len(headers) {
				s.Label = headers[i]
			}
			series = append(series, s)
			columns = append(columns, i)
		}
	}
	if headers != nil {
		ensure(len(headers))
	}

	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row++
		ensure(len(record))

		if timeIdx >= len(record) {
			return nil, fmt.Errorf("row %d: missing time column", row)
		}
		ts := parseTimestampCell(cleanCell(record[timeIdx]))

		for k, col := range columns {
			v := Sentinel
			if col < len(record) {
				if v, err = parseValueCell(cleanCell(record[col])); err != nil {
					return nil, fmt.Errorf("row %d, column %q: %w", row, series[k].Label, err)
				}
			}
			series[k].Timestamps = append(series[k].Timestamps, ts)
			series[k].Values = append(series[k].Values, v)
		}
	}

	if len(series) == 0 {
		return nil, ErrNoData
	}

	return series, nil
}

func isTimeHeader(h string) bool {
	switch strings.ToLower(h) {
	case "ds", "date", "time", "timestamp", "ts", "bucket_ts":
		return true
	}
	return false
}

func cleanCell(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\""))
}

func parseTimestampCell(s string) Timestamp {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Unix(n)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return UnixFloat(f)
	}
	return ISO(s)
}

func parseValueCell(s string) (float64, error) {
	switch s {
	case "", "NA", "NaN", "null":
		return Sentinel, nil
	}
	return strconv.ParseFloat(s, 64)
}

// SaveCSV writes series sharing the timestamps of the first one to w.
func SaveCSV(w io.Writer, series []*Series) error {
	if len(series) == 0 {
		return ErrNoData
	}

	writer := csv.NewWriter(w)

	header := []string{"timestamp"}
	for i, s := range series {
		label := s.Label
		if label == "" {
			label = "series_" + strconv.Itoa(i+1)
		}
		header = append(header, label)
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for i, ts := range series[0].Timestamps {
		record := []string{ts.String()}
		for _, s := range series {
			v := ""
			if i < len(s.Values) {
				v = strconv.FormatFloat(s.Values[i], 'f', -1, 64)
			}
			record = append(record, v)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
