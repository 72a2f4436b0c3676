package pricestore

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"

	"github.com/rickgao/momentum-screener/internal/model"
)

// ErrSourceUnavailable marks a clean source that cannot be read at startup.
// The session cannot proceed without its data.
var ErrSourceUnavailable = errors.New("price source unavailable")

// RowSource loads cleaned price rows from a backing store.
type RowSource interface {
	// Load reads all rows. It is called once at session startup.
	Load(ctx context.Context) ([]model.PriceRow, error)
}

// CSVSource reads rows from a clean CSV file (the cleaner's output format).
type CSVSource struct {
	Path string
}

// Load implements RowSource.
func (s *CSVSource) Load(_ context.Context) ([]model.PriceRow, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrSourceUnavailable, s.Path, err)
	}
	defer f.Close()

	rows, err := readCleanCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, s.Path, err)
	}
	return rows, nil
}

// readCleanCSV parses the clean CSV format: header row, then
// (date, ticker, close_price) records. Rows that do not satisfy the clean
// invariants are skipped rather than failing the load; the cleaner is the
// gatekeeper, not this reader.
func readCleanCSV(r io.Reader) ([]model.PriceRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var rows []model.PriceRow
	first := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read clean csv: %w", err)
		}
		if first {
			first = false
			if len(rec) > 0 && rec[0] == "date" {
				continue
			}
		}
		if len(rec) < 3 || rec[0] == "" || rec[2] == "" {
			continue
		}
		price, err := decimal.NewFromString(rec[2])
		if err != nil || !price.IsPositive() {
			continue
		}
		rows = append(rows, model.PriceRow{Date: rec[0], Ticker: rec[1], Price: price})
	}
	return rows, nil
}
