// Package timeseries provides the series types shared by the rest of seriesview.
//
// A raw Series is what a data source hands over: parallel timestamp and value
// slices where a value of 0 (Sentinel) means "no observation". Timestamps may be
// ISO-8601 text or numeric epoch seconds.
//
// # Creating a Series
//
//	series, err := timeseries.NewWithTimestamps(
//	    []timeseries.Timestamp{timeseries.ISO("2024-01-15T10:30:00"), timeseries.Unix(1705314660)},
//	    []float64{0.25, 0.4},
//	)
//
//	// evenly spaced samples
//	series := timeseries.NewRegular(start, time.Minute, values)
//
// # Loading from CSV
//
// One timestamp column, one column per series:
//
//	series, err := timeseries.LoadCSV("cpu.csv", nil)
//
// # Normalized output
//
// Point and Trimmed hold the result of normalization (see package normalize):
// local epoch seconds paired with the original value.
package timeseries
