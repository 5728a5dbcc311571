package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type CandlesResponse struct {
	Instrument  string   `json:"instrument"`
	Granularity string   `json:"granularity"`
	Candles     []Candle `json:"candles"`
}

// Candle is a single broker candlestick. Only the price components requested
// with the "price" query parameter are present.
type Candle struct {
	Time     string      `json:"time"`
	Bid      *CandleData `json:"bid,omitempty"`
	Mid      *CandleData `json:"mid,omitempty"`
	Ask      *CandleData `json:"ask,omitempty"`
	Volume   *int64      `json:"volume,omitempty"`
	Complete bool        `json:"complete"`
}

// CandleData holds open/high/low/close as decimal strings.
type CandleData struct {
	O string `json:"o"`
	H string `json:"h"`
	L string `json:"l"`
	C string `json:"c"`
}

type CandlesQuery struct {
	Instrument  string
	Granularity string
	Count       int
	Price       string // M, B or A
}

type ArchivedCandle struct {
	Instrument  string          `db:"instrument"`
	Granularity string          `db:"granularity"`
	Ts          time.Time       `db:"ts"`
	Open        decimal.Decimal `db:"open"`
	High        decimal.Decimal `db:"high"`
	Low         decimal.Decimal `db:"low"`
	Close       decimal.Decimal `db:"close"`
	Volume      int64           `db:"volume"`
}
