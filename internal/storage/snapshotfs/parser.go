package snapshotfs

import (
	"fmt"
	"strings"

	"github.com/bobmcallan/myxview/internal/models"
)

// Snapshot file column vocabulary. These must match the source header
// exactly; a missing column degrades the mapped field to N/A rather than
// failing the parse.
const (
	colTicker    = "Ticker"
	colName      = "Description"
	colPrice     = "Price"
	colOpen      = "Open"
	colHigh      = "High"
	colLow       = "Low"
	colChange    = "Change"
	colChangePct = "Change %"
	colVolume    = "Volume"
	colSector    = "Sector"
	colIndustry  = "Industry"

	colPreVolume     = "Pre-market Volume"
	colPreChange     = "Pre-market Change"
	colPreChangePct  = "Pre-market Change %"
	colPostVolume    = "Post-market Volume"
	colPostChange    = "Post-market Change"
	colPostChangePct = "Post-market Change %"

	colATR14      = "Average True Range (14)"
	colMarketCap  = "Market Capitalization"
	colType       = "Type"
	colSubType    = "Sub Type"
	colPriceScale = "Price Scale"
	colMinMove    = "Min Mov"
	colFractional = "Fractional"
	colCurrency   = "Currency"
)

// maWindows is the fixed moving-average ladder carried by the snapshot feed.
var maWindows = []int{5, 10, 20, 30, 50, 100, 200}

func emaColumn(window int) string {
	return fmt.Sprintf("Exponential Moving Average (%d)", window)
}

func smaColumn(window int) string {
	return fmt.Sprintf("Simple Moving Average (%d)", window)
}

// RowParser converts raw snapshot rows into typed records. It is built once
// per file from the header row and is pure: no I/O, deterministic output.
type RowParser struct {
	index map[string]int
}

// NewRowParser builds a parser from the file's header row.
func NewRowParser(header []string) *RowParser {
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(col)] = i
	}
	return &RowParser{index: index}
}

// field returns the raw value for a column, or "" when the column is absent
// from the header or the row is too short.
func (p *RowParser) field(row []string, col string) string {
	i, ok := p.index[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Parse converts one raw row into a typed record. The identifier and display
// name are required; every other field degrades independently to the N/A
// sentinel. Rows failing the identity requirement are dropped by the caller.
func (p *RowParser) Parse(row []string) (*models.SnapshotDetail, error) {
	ticker := p.field(row, colTicker)
	name := p.field(row, colName)
	if ticker == "" || name == "" {
		return nil, fmt.Errorf("row missing ticker or description")
	}

	d := &models.SnapshotDetail{
		InstrumentSnapshot: models.InstrumentSnapshot{
			Ticker:    ticker,
			Name:      name,
			Close:     models.ParseNAFloat(p.field(row, colPrice)),
			Open:      models.ParseNAFloat(p.field(row, colOpen)),
			High:      models.ParseNAFloat(p.field(row, colHigh)),
			Low:       models.ParseNAFloat(p.field(row, colLow)),
			Change:    models.ParseNAFloat(p.field(row, colChange)),
			ChangePct: models.ParseNAFloat(p.field(row, colChangePct)),
			Volume:    models.ParseNAInt(p.field(row, colVolume)),
			Sector:    p.field(row, colSector),
			Industry:  p.field(row, colIndustry),
		},
		PreMarketVolume:     models.ParseNAInt(p.field(row, colPreVolume)),
		PreMarketChange:     models.ParseNAFloat(p.field(row, colPreChange)),
		PreMarketChangePct:  models.ParseNAFloat(p.field(row, colPreChangePct)),
		PostMarketVolume:    models.ParseNAInt(p.field(row, colPostVolume)),
		PostMarketChange:    models.ParseNAFloat(p.field(row, colPostChange)),
		PostMarketChangePct: models.ParseNAFloat(p.field(row, colPostChangePct)),
		ATR14:               models.ParseNAFloat(p.field(row, colATR14)),
		MarketCap:           models.ParseNAFloat(p.field(row, colMarketCap)),
		Type:                p.field(row, colType),
		SubType:             p.field(row, colSubType),
		PriceScale:          models.ParseNAInt(p.field(row, colPriceScale)),
		MinMove:             models.ParseNAInt(p.field(row, colMinMove)),
		Fractional:          p.field(row, colFractional),
		Currency:            p.field(row, colCurrency),
	}

	ema := []*models.NAFloat{&d.EMA5, &d.EMA10, &d.EMA20, &d.EMA30, &d.EMA50, &d.EMA100, &d.EMA200}
	sma := []*models.NAFloat{&d.SMA5, &d.SMA10, &d.SMA20, &d.SMA30, &d.SMA50, &d.SMA100, &d.SMA200}
	for i, window := range maWindows {
		*ema[i] = models.ParseNAFloat(p.field(row, emaColumn(window)))
		*sma[i] = models.ParseNAFloat(p.field(row, smaColumn(window)))
	}

	return d, nil
}
