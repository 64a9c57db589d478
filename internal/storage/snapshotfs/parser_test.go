package snapshotfs

import "testing"

func fullHeader() []string {
	return []string{
		"Ticker", "Description", "Price", "Open", "High", "Low",
		"Change", "Change %", "Volume", "Sector", "Industry",
		"Exponential Moving Average (5)", "Simple Moving Average (200)",
		"Average True Range (14)", "Market Capitalization",
		"Type", "Sub Type", "Price Scale", "Min Mov", "Fractional", "Currency",
	}
}

func TestRowParser_FullRow(t *testing.T) {
	p := NewRowParser(fullHeader())
	row := []string{
		"MAYBANK", "Malayan Banking", "9.85", "9.80", "9.90", "9.75",
		"0.05", "0.51", "12345678", "Finance", "Banks",
		"9.82", "9.10",
		"0.12", "118000000000",
		"stock", "common", "100", "1", "false", "MYR",
	}
	d, err := p.Parse(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Ticker != "MAYBANK" || d.Name != "Malayan Banking" {
		t.Errorf("identity fields wrong: %+v", d.InstrumentSnapshot)
	}
	if !d.Close.Valid || d.Close.Value != 9.85 {
		t.Errorf("Close = %+v, want 9.85", d.Close)
	}
	if !d.Volume.Valid || d.Volume.Value != 12345678 {
		t.Errorf("Volume = %+v", d.Volume)
	}
	if !d.EMA5.Valid || d.EMA5.Value != 9.82 {
		t.Errorf("EMA5 = %+v", d.EMA5)
	}
	if !d.SMA200.Valid || d.SMA200.Value != 9.10 {
		t.Errorf("SMA200 = %+v", d.SMA200)
	}
	if d.EMA200.Valid {
		t.Errorf("EMA200 has no column, should be unavailable: %+v", d.EMA200)
	}
	if !d.ATR14.Valid || d.ATR14.Value != 0.12 {
		t.Errorf("ATR14 = %+v", d.ATR14)
	}
	if d.Currency != "MYR" || d.Sector != "Finance" {
		t.Errorf("string fields wrong: %+v", d)
	}
	if !d.PriceScale.Valid || d.PriceScale.Value != 100 {
		t.Errorf("PriceScale = %+v", d.PriceScale)
	}
}

func TestRowParser_Deterministic(t *testing.T) {
	p := NewRowParser(fullHeader())
	row := []string{"CIMB", "CIMB Group", "6.50", "", "N/A", "6.40",
		"-0.02", "-0.31", "900000", "Finance", "Banks",
		"", "", "", "", "", "", "", "", "", ""}
	a, err := p.Parse(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := p.Parse(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *a != *b {
		t.Error("parsing the same row twice produced different records")
	}
}

func TestRowParser_PerFieldDegradation(t *testing.T) {
	p := NewRowParser([]string{"Ticker", "Description", "Price", "Volume"})
	d, err := p.Parse([]string{"PBBANK", "Public Bank", "not-a-number", "N/A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Close.Valid {
		t.Errorf("unparsable price should degrade to unavailable: %+v", d.Close)
	}
	if d.Volume.Valid {
		t.Errorf("N/A volume should be unavailable: %+v", d.Volume)
	}
	if d.Open.Valid || d.MarketCap.Valid {
		t.Error("fields with no column should be unavailable")
	}
}

func TestRowParser_ShortRow(t *testing.T) {
	p := NewRowParser([]string{"Ticker", "Description", "Price", "Volume"})
	d, err := p.Parse([]string{"TENAGA", "Tenaga Nasional"})
	if err != nil {
		t.Fatalf("short rows should still parse: %v", err)
	}
	if d.Close.Valid || d.Volume.Valid {
		t.Error("fields past row end should be unavailable")
	}
}

func TestRowParser_MissingIdentityFails(t *testing.T) {
	p := NewRowParser([]string{"Ticker", "Description", "Price"})
	if _, err := p.Parse([]string{"", "No Ticker Co", "1.00"}); err == nil {
		t.Error("expected error for missing ticker")
	}
	if _, err := p.Parse([]string{"ABC", "", "1.00"}); err == nil {
		t.Error("expected error for missing description")
	}
}
