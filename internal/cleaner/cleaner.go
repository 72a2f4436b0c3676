package cleaner

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rickgao/momentum-screener/internal/model"
)

// dateLayout is the accepted calendar-date format (ISO-8601).
const dateLayout = "2006-01-02"

// Report counts rows dropped during cleaning, by reason. No row is ever
// dropped without being counted somewhere in the report.
type Report struct {
	RowsRead       int // data rows examined (header and blank lines excluded)
	BlankLines     int // entirely empty lines skipped
	Malformed      int // lines with fewer than 3 comma-separated fields
	BadDate        int // rows whose date is not YYYY-MM-DD
	MissingPrice   int // rows with an empty price field
	InvalidPrice   int // rows with a non-numeric or non-positive price
	DuplicatePairs int // distinct (date, ticker) pairs seen more than once
	DuplicateRows  int // rows discarded by last-write-wins resolution
	RowsKept       int // rows surviving into the clean set
}

// Dropped returns the total number of rows removed for any reason.
func (r Report) Dropped() int {
	return r.Malformed + r.BadDate + r.MissingPrice + r.InvalidPrice + r.DuplicateRows
}

// Log writes the report through the given logger, one line per non-zero
// removal reason.
func (r Report) Log(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("cleaning finished", "rows_read", r.RowsRead, "rows_kept", r.RowsKept)
	if r.Malformed > 0 {
		logger.Info("removed malformed rows", "count", r.Malformed)
	}
	if r.BadDate > 0 {
		logger.Info("removed rows with invalid date", "count", r.BadDate)
	}
	if r.MissingPrice > 0 {
		logger.Info("removed rows with missing price", "count", r.MissingPrice)
	}
	if r.InvalidPrice > 0 {
		logger.Info("removed rows with invalid price", "count", r.InvalidPrice)
	}
	if r.DuplicateRows > 0 {
		logger.Info("resolved duplicate (date, ticker) pairs by keeping last value",
			"pairs", r.DuplicatePairs,
			"rows_dropped", r.DuplicateRows,
		)
	}
}

// Clean reads raw comma-separated rows (date, ticker, close price) and
// returns the surviving rows sorted by (date, ticker), together with a
// removal report. Extra fields beyond the third are ignored.
func Clean(r io.Reader) ([]model.PriceRow, Report, error) {
	var report Report

	prices := make(map[model.RowKey]decimal.Decimal)
	dupes := make(map[model.RowKey]bool)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			report.BlankLines++
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) < 3 {
			report.Malformed++
			continue
		}

		date := strings.TrimSpace(parts[0])
		ticker := strings.TrimSpace(parts[1])
		priceStr := strings.TrimSpace(parts[2])

		if isHeader(date, ticker) {
			continue
		}
		report.RowsRead++

		if _, err := time.Parse(dateLayout, date); err != nil {
			report.BadDate++
			continue
		}
		if priceStr == "" {
			report.MissingPrice++
			continue
		}
		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			report.InvalidPrice++
			continue
		}
		if !price.IsPositive() {
			report.InvalidPrice++
			continue
		}

		key := model.RowKey{Date: date, Ticker: ticker}
		if _, seen := prices[key]; seen {
			// Last occurrence wins; earlier row becomes a counted duplicate.
			dupes[key] = true
			report.DuplicateRows++
		}
		prices[key] = price
	}
	if err := scanner.Err(); err != nil {
		return nil, report, fmt.Errorf("read raw rows: %w", err)
	}

	report.DuplicatePairs = len(dupes)
	report.RowsKept = len(prices)

	rows := make([]model.PriceRow, 0, len(prices))
	for key, price := range prices {
		rows = append(rows, model.PriceRow{Date: key.Date, Ticker: key.Ticker, Price: price})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date < rows[j].Date
		}
		return rows[i].Ticker < rows[j].Ticker
	})

	return rows, report, nil
}

// CleanFile cleans the raw CSV at path. A missing or unreadable file is a
// startup failure, not a row-level condition.
func CleanFile(path string) ([]model.PriceRow, Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Report{}, fmt.Errorf("open raw prices: %w", err)
	}
	defer f.Close()

	return Clean(f)
}

// isHeader reports whether the first two fields look like the conventional
// CSV header instead of data.
func isHeader(date, ticker string) bool {
	return strings.EqualFold(date, "date") && strings.EqualFold(ticker, "ticker")
}
