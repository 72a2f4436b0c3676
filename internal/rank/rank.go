package rank

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rickgao/momentum-screener/internal/model"
	"github.com/rickgao/momentum-screener/internal/pricestore"
)

// Defaults for the momentum computation.
const (
	DefaultWindow = 20 // lookback in trading-date positions
	DefaultTopN   = 5  // maximum entries per ranking
)

// Kind discriminates the possible outcomes of a ranking query.
type Kind int

const (
	// NoSuchDate means the target date is not a trading day in the dataset.
	// Weekends, holidays, and out-of-range dates all land here.
	NoSuchDate Kind = iota

	// InsufficientHistory means fewer than Window trading days precede the
	// target date, so momentum is undefined for every ticker.
	InsufficientHistory

	// Ranked means the computation ran. Entries may still be empty when no
	// ticker had a usable price on both the target and lookback dates.
	Ranked
)

// String returns the kind name for logs.
func (k Kind) String() string {
	switch k {
	case NoSuchDate:
		return "no_such_date"
	case InsufficientHistory:
		return "insufficient_history"
	case Ranked:
		return "ranked"
	default:
		return "unknown"
	}
}

// Outcome is the result of a ranking query. Entries is meaningful only when
// Kind is Ranked.
type Outcome struct {
	Kind    Kind
	Entries []model.RankEntry
}

// Ranker computes top-N momentum rankings for a fixed window.
type Ranker struct {
	window int
	topN   int
}

// New creates a Ranker. Non-positive arguments fall back to the defaults.
func New(window, topN int) *Ranker {
	if window < 1 {
		window = DefaultWindow
	}
	if topN < 1 {
		topN = DefaultTopN
	}
	return &Ranker{window: window, topN: topN}
}

// Window returns the configured lookback in trading-date positions.
func (r *Ranker) Window() int {
	return r.window
}

// TopN returns the configured maximum ranking length.
func (r *Ranker) TopN() int {
	return r.topN
}

var one = decimal.NewFromInt(1)

// Rank computes the top-N tickers by momentum for targetDate. It is pure:
// no I/O, no mutation of the table, deterministic output for a given table
// and date.
func (r *Ranker) Rank(table *pricestore.Table, targetDate string) Outcome {
	idx, ok := table.DateIndex(targetDate)
	if !ok {
		return Outcome{Kind: NoSuchDate}
	}
	if idx < r.window {
		// idx == window is exactly enough history: dates[idx-window] exists.
		return Outcome{Kind: InsufficientHistory}
	}

	lookbackDate := table.DateAt(idx - r.window)

	var entries []model.RankEntry
	for _, ticker := range table.TickersOn(targetDate) {
		today, ok := table.Price(targetDate, ticker)
		if !ok {
			continue
		}
		past, ok := table.Price(lookbackDate, ticker)
		if !ok || !past.IsPositive() {
			// Missing on the lookback date or a non-positive past price is
			// an expected data condition, not an error.
			continue
		}
		momentum := today.Div(past).Sub(one)
		entries = append(entries, model.RankEntry{
			Ticker:   ticker,
			Momentum: momentum.InexactFloat64(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Momentum != entries[j].Momentum {
			return entries[i].Momentum > entries[j].Momentum
		}
		return entries[i].Ticker < entries[j].Ticker
	})

	if len(entries) > r.topN {
		entries = entries[:r.topN]
	}
	return Outcome{Kind: Ranked, Entries: entries}
}
