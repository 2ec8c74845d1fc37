package timeseries

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Timestamp is a raw sample timestamp as delivered by the data source.
// It holds either ISO-8601 text or a numeric Unix epoch-seconds value.
// The zero value is the numeric epoch 0.
type Timestamp struct {
	text   string
	number float64
	isText bool
}

// ISO returns a textual timestamp. It is interpreted as UTC when normalized.
func ISO(s string) Timestamp {
	return Timestamp{text: s, isText: true}
}

// Unix returns a numeric timestamp in epoch seconds.
func Unix(sec int64) Timestamp {
	return Timestamp{number: float64(sec)}
}

// UnixFloat returns a numeric timestamp that may carry a fraction of a second.
func UnixFloat(sec float64) Timestamp {
	return Timestamp{number: sec}
}

// UnixSlice converts epoch seconds to numeric timestamps.
func UnixSlice(secs []int64) []Timestamp {
	ts := make([]Timestamp, len(secs))
	for i, s := range secs {
		ts[i] = Unix(s)
	}
	return ts
}

// IsText reports whether the timestamp was given as a string.
func (t Timestamp) IsText() bool { return t.isText }

// Text returns the textual form. It is empty for numeric timestamps.
func (t Timestamp) Text() string { return t.text }

// Number returns the numeric form. It is 0 for textual timestamps.
func (t Timestamp) Number() float64 { return t.number }

// String returns the text as given, or the number without trailing zeros.
func (t Timestamp) String() string {
	if t.isText {
		return t.text
	}
	return strconv.FormatFloat(t.number, 'f', -1, 64)
}

// MarshalJSON writes the timestamp back in the form it was given.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.isText {
		return json.Marshal(t.text)
	}
	if math.IsNaN(t.number) || math.IsInf(t.number, 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(t.number, 'f', -1, 64)), nil
}

// UnmarshalJSON accepts a JSON string or number. null becomes an empty
// textual timestamp, which never normalizes to a valid time.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = ISO("")
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = ISO(s)
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("timestamp %s: %w", data, err)
	}
	*t = UnixFloat(f)
	return nil
}

// UnmarshalYAML implements yaml.v2 Unmarshaler for string and numeric scalars.
func (t *Timestamp) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v interface{}
	if err := unmarshal(&v); err != nil {
		return err
	}
	switch v := v.(type) {
	case nil:
		*t = ISO("")
	case string:
		*t = ISO(v)
	case int:
		*t = Unix(int64(v))
	case int64:
		*t = Unix(v)
	case uint64:
		*t = UnixFloat(float64(v))
	case float64:
		*t = UnixFloat(v)
	case time.Time:
		*t = ISO(v.UTC().Format(time.RFC3339Nano))
	default:
		return fmt.Errorf("timestamp: unsupported yaml value %v (%T)", v, v)
	}
	return nil
}
