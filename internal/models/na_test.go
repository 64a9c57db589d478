package models

import (
	"encoding/json"
	"testing"
)

func TestParseNAFloat(t *testing.T) {
	cases := []struct {
		raw   string
		value float64
		valid bool
	}{
		{"1.23", 1.23, true},
		{"-0.5", -0.5, true},
		{"0", 0, true},
		{" 2.5 ", 2.5, true},
		{"", 0, false},
		{"N/A", 0, false},
		{"n/a", 0, false},
		{"garbage", 0, false},
	}
	for _, c := range cases {
		got := ParseNAFloat(c.raw)
		if got.Valid != c.valid {
			t.Errorf("ParseNAFloat(%q).Valid = %v, want %v", c.raw, got.Valid, c.valid)
		}
		if got.Valid && got.Value != c.value {
			t.Errorf("ParseNAFloat(%q).Value = %v, want %v", c.raw, got.Value, c.value)
		}
	}
}

func TestParseNAInt_TruncatesFractional(t *testing.T) {
	got := ParseNAInt("1234.9")
	if !got.Valid || got.Value != 1234 {
		t.Errorf("ParseNAInt(\"1234.9\") = %+v, want valid 1234", got)
	}
	got = ParseNAInt("500")
	if !got.Valid || got.Value != 500 {
		t.Errorf("ParseNAInt(\"500\") = %+v, want valid 500", got)
	}
	if ParseNAInt("N/A").Valid || ParseNAInt("").Valid {
		t.Error("expected N/A and empty to parse as unavailable")
	}
}

func TestNAFloat_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Float(1.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "1.5" {
		t.Errorf("got %s, want 1.5", data)
	}

	data, err = json.Marshal(NAFloat{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `"N/A"` {
		t.Errorf("got %s, want \"N/A\"", data)
	}
}

func TestNAFloat_UnmarshalJSON_RoundTrip(t *testing.T) {
	for _, raw := range []string{`2.75`, `"N/A"`, `"3.5"`} {
		var f NAFloat
		if err := json.Unmarshal([]byte(raw), &f); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		out, err := json.Marshal(f)
		if err != nil {
			t.Fatalf("marshal back: %v", err)
		}
		var g NAFloat
		if err := json.Unmarshal(out, &g); err != nil {
			t.Fatalf("second unmarshal: %v", err)
		}
		if f != g {
			t.Errorf("round trip of %s changed value: %+v vs %+v", raw, f, g)
		}
	}
}

func TestNAInt_MarshalJSON(t *testing.T) {
	data, _ := json.Marshal(Int(42))
	if string(data) != "42" {
		t.Errorf("got %s, want 42", data)
	}
	data, _ = json.Marshal(NAInt{})
	if string(data) != `"N/A"` {
		t.Errorf("got %s, want \"N/A\"", data)
	}
}

func TestNAFloat_Or(t *testing.T) {
	if Float(2).Or(9) != 2 {
		t.Error("valid value should win over fallback")
	}
	if (NAFloat{}).Or(9) != 9 {
		t.Error("unavailable value should yield fallback")
	}
}
