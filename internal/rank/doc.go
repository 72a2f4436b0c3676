// Package rank computes rolling momentum rankings over a price table.
//
// Momentum for a ticker is (price_today / price_lookback) - 1, where the
// lookback date sits a fixed number of positions earlier in the
// trading-date sequence. The offset is positional, never a calendar-day
// offset: 20 trading days back skips over weekends and holidays by
// construction.
//
// Rank never returns an error. The three possible outcomes are carried by
// an explicit tag: the target date is not a trading day, the target date
// has insufficient history, or a ranking was computed (possibly with no
// qualifying tickers).
package rank
