// Package model defines shared data types used across the momentum screener.
//
// Conventions:
//   - Dates: ISO-8601 strings (YYYY-MM-DD); a date is a "trading day" iff it
//     appears in the cleaned dataset
//   - Prices: decimal.Decimal, strictly positive once cleaned
//   - Momentum: float64, (price_today / price_lookback) - 1
package model
