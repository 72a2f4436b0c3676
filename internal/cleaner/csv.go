package cleaner

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rickgao/momentum-screener/internal/model"
)

// cleanHeader is the header row of the clean CSV format.
var cleanHeader = []string{"date", "ticker", "close_price"}

// WriteClean writes rows in the clean CSV format: a header, then one row per
// (date, ticker) pair in the order given.
func WriteClean(w io.Writer, rows []model.PriceRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(cleanHeader); err != nil {
		return fmt.Errorf("write clean header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write([]string{row.Date, row.Ticker, row.Price.String()}); err != nil {
			return fmt.Errorf("write clean row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush clean rows: %w", err)
	}
	return nil
}

// WriteCleanFile writes rows to path via a temporary file and rename, so a
// failed write never leaves a truncated clean file behind.
func WriteCleanFile(path string, rows []model.PriceRow) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create clean file dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp clean file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteClean(tmp, rows); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp clean file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace clean file: %w", err)
	}
	return nil
}
