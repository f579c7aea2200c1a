// Package dataflows fetches and persists market data for the assistant:
// live quotes and historical bars from Yahoo Finance, with a TTL file
// cache and per-ticker CSV price history.
package dataflows

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bar is one day of OHLCV price data for a symbol.
type Bar struct {
	Symbol    string          `json:"symbol"`
	Date      time.Time       `json:"date"`
	Open      decimal.Decimal `json:"open"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Close     decimal.Decimal `json:"close"`
	AdjClose  decimal.Decimal `json:"adj_close"`
	Volume    int64           `json:"volume"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// Quote is a point-in-time snapshot of a symbol.
type Quote struct {
	Symbol    string          `json:"symbol"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Open      decimal.Decimal `json:"open"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Volume    int64           `json:"volume"`
	Exchange  string          `json:"exchange"`
	Currency  string          `json:"currency"`
	FetchedAt time.Time       `json:"fetched_at"`
}
