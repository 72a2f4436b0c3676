package model

import "github.com/shopspring/decimal"

// PriceRow is one validated daily close observation. Rows are produced only
// by the cleaner and are immutable once in the price table; at most one row
// exists per (Date, Ticker) pair.
type PriceRow struct {
	Date   string          // Trading date (YYYY-MM-DD)
	Ticker string          // Equity ticker symbol (e.g., "AAPL")
	Price  decimal.Decimal // Close price, strictly positive
}

// Key returns the (date, ticker) identity of the row.
func (r PriceRow) Key() RowKey {
	return RowKey{Date: r.Date, Ticker: r.Ticker}
}

// RowKey identifies a row by its (date, ticker) pair. Used for point lookups
// and duplicate resolution.
type RowKey struct {
	Date   string
	Ticker string
}

// RankEntry is one ranked ticker in a momentum result.
type RankEntry struct {
	Ticker   string  `json:"ticker"`
	Momentum float64 `json:"momentum"`
}
