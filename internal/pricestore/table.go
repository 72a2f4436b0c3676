package pricestore

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rickgao/momentum-screener/internal/model"
)

// Table is an immutable in-memory price table with date-position indexing.
type Table struct {
	prices  map[model.RowKey]decimal.Decimal
	byDate  map[string][]string // date -> tickers present that day, sorted
	dates   []string            // ascending distinct trading dates
	dateIdx map[string]int      // date -> position in dates
}

// New builds a Table from cleaned rows. Rows must already be deduplicated;
// if a (date, ticker) pair repeats, the later row wins, matching the
// cleaner's resolution.
func New(rows []model.PriceRow) *Table {
	t := &Table{
		prices:  make(map[model.RowKey]decimal.Decimal, len(rows)),
		byDate:  make(map[string][]string),
		dateIdx: make(map[string]int),
	}

	for _, row := range rows {
		key := row.Key()
		if _, seen := t.prices[key]; !seen {
			t.byDate[row.Date] = append(t.byDate[row.Date], row.Ticker)
		}
		t.prices[key] = row.Price
	}

	t.dates = make([]string, 0, len(t.byDate))
	for date := range t.byDate {
		t.dates = append(t.dates, date)
		sort.Strings(t.byDate[date])
	}
	// ISO-8601 dates sort chronologically as strings.
	sort.Strings(t.dates)
	for i, date := range t.dates {
		t.dateIdx[date] = i
	}

	return t
}

// Price returns the close price for ticker on date.
func (t *Table) Price(date, ticker string) (decimal.Decimal, bool) {
	p, ok := t.prices[model.RowKey{Date: date, Ticker: ticker}]
	return p, ok
}

// TickersOn returns the tickers with a price on date, ascending. The
// returned slice is a copy.
func (t *Table) TickersOn(date string) []string {
	tickers := t.byDate[date]
	out := make([]string, len(tickers))
	copy(out, tickers)
	return out
}

// TradingDates returns all distinct trading dates, ascending. The returned
// slice is a copy.
func (t *Table) TradingDates() []string {
	out := make([]string, len(t.dates))
	copy(out, t.dates)
	return out
}

// DateIndex returns the position of date in the trading-date sequence.
// A false return means the date is not a trading day in this dataset.
func (t *Table) DateIndex(date string) (int, bool) {
	i, ok := t.dateIdx[date]
	return i, ok
}

// DateAt returns the trading date at position i.
func (t *Table) DateAt(i int) string {
	return t.dates[i]
}

// NumDates returns the length of the trading-date sequence.
func (t *Table) NumDates() int {
	return len(t.dates)
}

// NumRows returns the number of (date, ticker) observations.
func (t *Table) NumRows() int {
	return len(t.prices)
}

// First returns the earliest trading date, or "" for an empty table.
func (t *Table) First() string {
	if len(t.dates) == 0 {
		return ""
	}
	return t.dates[0]
}

// Last returns the latest trading date, or "" for an empty table.
func (t *Table) Last() string {
	if len(t.dates) == 0 {
		return ""
	}
	return t.dates[len(t.dates)-1]
}
