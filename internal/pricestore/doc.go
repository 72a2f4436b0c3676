// Package pricestore holds the in-memory price table for a session.
//
// A Table is built once from cleaned rows and is read-only afterwards. It
// indexes prices by (date, ticker) for point lookup and by date for
// enumerating tickers, and derives the ascending trading-date sequence with
// a date -> position map for O(1) lookback arithmetic. Non-trading days are
// simply absent; the table never synthesizes dates.
//
// RowSource abstracts where cleaned rows come from: a clean CSV file or a
// PostgreSQL table.
package pricestore
