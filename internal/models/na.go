package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// NAFloat is a float64 that may be unavailable. The zero value is "not
// available" and marshals to the JSON string "N/A", matching the snapshot
// source convention for absent fields.
type NAFloat struct {
	Value float64
	Valid bool
}

// Float returns a valid NAFloat.
func Float(v float64) NAFloat {
	return NAFloat{Value: v, Valid: true}
}

// ParseNAFloat parses a raw snapshot field into an NAFloat. Empty strings,
// "N/A" markers, and unparsable values all yield the NA sentinel.
func ParseNAFloat(raw string) NAFloat {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "N/A") {
		return NAFloat{}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return NAFloat{}
	}
	return NAFloat{Value: v, Valid: true}
}

// Or returns the value, or fallback when unavailable.
func (f NAFloat) Or(fallback float64) float64 {
	if !f.Valid {
		return fallback
	}
	return f.Value
}

func (f NAFloat) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte(`"N/A"`), nil
	}
	return json.Marshal(f.Value)
}

func (f *NAFloat) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = NAFloat{Value: num, Valid: true}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = ParseNAFloat(s)
		return nil
	}
	*f = NAFloat{}
	return nil
}

// NAInt is an int64 that may be unavailable, with the same JSON behaviour
// as NAFloat.
type NAInt struct {
	Value int64
	Valid bool
}

// Int returns a valid NAInt.
func Int(v int64) NAInt {
	return NAInt{Value: v, Valid: true}
}

// ParseNAInt parses a raw snapshot field into an NAInt. Fractional values
// are truncated the way the original data feed presents whole-unit volumes.
func ParseNAInt(raw string) NAInt {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "N/A") {
		return NAInt{}
	}
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return NAInt{Value: v, Valid: true}
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return NAInt{Value: int64(v), Valid: true}
	}
	return NAInt{}
}

// Or returns the value, or fallback when unavailable.
func (i NAInt) Or(fallback int64) int64 {
	if !i.Valid {
		return fallback
	}
	return i.Value
}

func (i NAInt) MarshalJSON() ([]byte, error) {
	if !i.Valid {
		return []byte(`"N/A"`), nil
	}
	return json.Marshal(i.Value)
}

func (i *NAInt) UnmarshalJSON(data []byte) error {
	var num int64
	if err := json.Unmarshal(data, &num); err == nil {
		*i = NAInt{Value: num, Valid: true}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*i = ParseNAInt(s)
		return nil
	}
	*i = NAInt{}
	return nil
}
