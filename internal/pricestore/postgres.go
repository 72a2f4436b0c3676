package pricestore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/rickgao/momentum-screener/internal/model"
)

// PostgresSource reads cleaned rows from a PostgreSQL table holding
// (trade_date, ticker, close_price) columns.
type PostgresSource struct {
	Pool  *pgxpool.Pool
	Table string
}

// Load implements RowSource.
func (s *PostgresSource) Load(ctx context.Context) ([]model.PriceRow, error) {
	query := fmt.Sprintf(
		"SELECT trade_date::text, ticker, close_price::text FROM %s ORDER BY trade_date, ticker",
		pgx.Identifier{s.Table}.Sanitize(),
	)

	pgRows, err := s.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query %s: %v", ErrSourceUnavailable, s.Table, err)
	}
	defer pgRows.Close()

	var rows []model.PriceRow
	for pgRows.Next() {
		var date, ticker, priceStr string
		if err := pgRows.Scan(&date, &ticker, &priceStr); err != nil {
			return nil, fmt.Errorf("scan price row: %w", err)
		}
		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			return nil, fmt.Errorf("parse close_price %q for (%s, %s): %w", priceStr, date, ticker, err)
		}
		if !price.IsPositive() {
			// Clean invariant: the loader never admits non-positive prices.
			continue
		}
		rows = append(rows, model.PriceRow{Date: date, Ticker: ticker, Price: price})
	}
	if err := pgRows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrSourceUnavailable, s.Table, err)
	}

	return rows, nil
}
