// Package models defines data structures for myxview
package models

// InstrumentSnapshot is one instrument's end-of-day record from a single
// daily snapshot file. Close is the canonical "current price".
type InstrumentSnapshot struct {
	Ticker    string  `json:"ticker"`
	Name      string  `json:"name"`
	Close     NAFloat `json:"close"`
	Open      NAFloat `json:"open"`
	High      NAFloat `json:"high"`
	Low       NAFloat `json:"low"`
	Change    NAFloat `json:"change"`
	ChangePct NAFloat `json:"change_pct"`
	Volume    NAInt   `json:"volume"`
	Sector    string  `json:"sector,omitempty"`
	Industry  string  `json:"industry,omitempty"`
}

// HasValidVolume reports whether the snapshot passes the universe volume
// rule: volume present and non-negative.
func (s *InstrumentSnapshot) HasValidVolume() bool {
	return s.Volume.Valid && s.Volume.Value >= 0
}

// ToHistoricalPoint projects the snapshot onto the OHLCV tuple used for
// time-series charting.
func (s *InstrumentSnapshot) ToHistoricalPoint(date string) HistoricalPoint {
	return HistoricalPoint{
		Date:   date,
		Open:   s.Open.Or(0),
		High:   s.High.Or(0),
		Low:    s.Low.Or(0),
		Close:  s.Close.Or(0),
		Volume: s.Volume.Or(0),
	}
}

// SnapshotDetail is the full normalized field set for one instrument,
// including the precomputed indicator ladder. Every extended field degrades
// to the N/A sentinel when absent or unparsable in the source row.
type SnapshotDetail struct {
	InstrumentSnapshot

	PreMarketVolume     NAInt   `json:"pre_market_volume"`
	PreMarketChange     NAFloat `json:"pre_market_change"`
	PreMarketChangePct  NAFloat `json:"pre_market_change_pct"`
	PostMarketVolume    NAInt   `json:"post_market_volume"`
	PostMarketChange    NAFloat `json:"post_market_change"`
	PostMarketChangePct NAFloat `json:"post_market_change_pct"`

	EMA5   NAFloat `json:"ema_5"`
	EMA10  NAFloat `json:"ema_10"`
	EMA20  NAFloat `json:"ema_20"`
	EMA30  NAFloat `json:"ema_30"`
	EMA50  NAFloat `json:"ema_50"`
	EMA100 NAFloat `json:"ema_100"`
	EMA200 NAFloat `json:"ema_200"`
	SMA5   NAFloat `json:"sma_5"`
	SMA10  NAFloat `json:"sma_10"`
	SMA20  NAFloat `json:"sma_20"`
	SMA30  NAFloat `json:"sma_30"`
	SMA50  NAFloat `json:"sma_50"`
	SMA100 NAFloat `json:"sma_100"`
	SMA200 NAFloat `json:"sma_200"`
	ATR14  NAFloat `json:"atr_14"`

	MarketCap  NAFloat `json:"market_cap"`
	Type       string  `json:"type,omitempty"`
	SubType    string  `json:"sub_type,omitempty"`
	PriceScale NAInt   `json:"price_scale"`
	MinMove    NAInt   `json:"min_move"`
	Fractional string  `json:"fractional,omitempty"`
	Currency   string  `json:"currency,omitempty"`
}

// SnapshotFile is one dated snapshot: the full record set for a single
// trading day. Date is the 8-digit YYYYMMDD key derived from the filename;
// its lexicographic order matches calendar order. Records preserve file
// order and are immutable once loaded.
type SnapshotFile struct {
	Date    string           `json:"date"`
	Records []SnapshotDetail `json:"records"`
}

// FindByTicker returns the first record matching ticker, or nil.
// Tickers are unique within a file, so first match is the match.
func (f *SnapshotFile) FindByTicker(ticker string) *SnapshotDetail {
	for i := range f.Records {
		if f.Records[i].Ticker == ticker {
			return &f.Records[i]
		}
	}
	return nil
}

// HistoricalPoint is one instrument's OHLCV for one trading day.
type HistoricalPoint struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// ToSnapshot converts the point back to a snapshot record. Used by callers
// that render watchlist rows from stored history.
func (p HistoricalPoint) ToSnapshot(ticker, name string) InstrumentSnapshot {
	return InstrumentSnapshot{
		Ticker: ticker,
		Name:   name,
		Open:   Float(p.Open),
		High:   Float(p.High),
		Low:    Float(p.Low),
		Close:  Float(p.Close),
		Volume: Int(p.Volume),
	}
}

// PredictionPoint is one point of the external forecast curve.
type PredictionPoint struct {
	Date           string  `json:"date"`
	PredictedPrice float64 `json:"predictedPrice"`
}
