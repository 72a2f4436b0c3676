package rank

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rickgao/momentum-screener/internal/model"
	"github.com/rickgao/momentum-screener/internal/pricestore"
)

// weekdays returns n consecutive weekday dates starting 2024-01-01 (a
// Monday), so positional lookback differs from a calendar-day offset.
func weekdays(n int) []string {
	out := make([]string, 0, n)
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for len(out) < n {
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			out = append(out, day.Format("2006-01-02"))
		}
		day = day.AddDate(0, 0, 1)
	}
	return out
}

// flatTable builds a table where every listed ticker has the given price on
// every date, then applies overrides of the form {date, ticker, price}.
func flatTable(dates []string, tickers []string, price string, overrides ...[3]string) *pricestore.Table {
	var rows []model.PriceRow
	for _, d := range dates {
		for _, tk := range tickers {
			rows = append(rows, model.PriceRow{
				Date: d, Ticker: tk, Price: decimal.RequireFromString(price),
			})
		}
	}
	for _, o := range overrides {
		rows = append(rows, model.PriceRow{
			Date: o[0], Ticker: o[1], Price: decimal.RequireFromString(o[2]),
		})
	}
	return pricestore.New(rows)
}

func TestRankNoSuchDate(t *testing.T) {
	dates := weekdays(30)
	table := flatTable(dates, []string{"AAA"}, "100")
	r := New(DefaultWindow, DefaultTopN)

	for _, date := range []string{
		"2024-01-06", // Saturday inside the range
		"2023-12-29", // before the dataset
		"2099-01-01", // after the dataset
		"not-a-date",
	} {
		got := r.Rank(table, date)
		if got.Kind != NoSuchDate {
			t.Errorf("Rank(%s).Kind = %v, want NoSuchDate", date, got.Kind)
		}
	}
}

func TestRankInsufficientHistory(t *testing.T) {
	dates := weekdays(30)
	table := flatTable(dates, []string{"AAA"}, "100")
	r := New(DefaultWindow, DefaultTopN)

	// Index 19 is one short of a full window.
	got := r.Rank(table, dates[19])
	if got.Kind != InsufficientHistory {
		t.Errorf("Rank(dates[19]).Kind = %v, want InsufficientHistory", got.Kind)
	}

	// Index 20 is exactly enough history.
	got = r.Rank(table, dates[20])
	if got.Kind != Ranked {
		t.Errorf("Rank(dates[20]).Kind = %v, want Ranked", got.Kind)
	}
}

func TestRankSingleTickerMomentum(t *testing.T) {
	dates := weekdays(30)
	table := flatTable(dates, []string{"BBB"}, "100",
		[3]string{dates[20], "BBB", "110"},
	)
	r := New(DefaultWindow, DefaultTopN)

	got := r.Rank(table, dates[20])
	if got.Kind != Ranked {
		t.Fatalf("Kind = %v, want Ranked", got.Kind)
	}
	if len(got.Entries) != 1 {
		t.Fatalf("len(Entries) = %d, want 1", len(got.Entries))
	}
	if got.Entries[0].Ticker != "BBB" {
		t.Errorf("Ticker = %q, want BBB", got.Entries[0].Ticker)
	}
	if got.Entries[0].Momentum != 0.1 {
		t.Errorf("Momentum = %v, want 0.1", got.Entries[0].Momentum)
	}
}

func TestRankLookbackIsPositionalNotCalendar(t *testing.T) {
	dates := weekdays(30)
	target := dates[20]

	// dates[0] is 2024-01-01; twenty weekday positions later is more than
	// twenty calendar days later. A calendar-offset implementation would
	// look up a date that holds a different price.
	targetDay, _ := time.Parse("2006-01-02", target)
	calendarLookback := targetDay.AddDate(0, 0, -20).Format("2006-01-02")
	if calendarLookback == dates[0] {
		t.Fatal("test setup broken: calendar and positional lookback coincide")
	}

	table := flatTable(dates, []string{"AAA"}, "200",
		[3]string{dates[0], "AAA", "100"}, // positional lookback price
	)
	r := New(DefaultWindow, DefaultTopN)

	got := r.Rank(table, target)
	if got.Kind != Ranked || len(got.Entries) != 1 {
		t.Fatalf("outcome = %+v, want one ranked entry", got)
	}
	// 200/100 - 1, not 200/200 - 1.
	if got.Entries[0].Momentum != 1.0 {
		t.Errorf("Momentum = %v, want 1.0 (lookback must be dates[i-20])", got.Entries[0].Momentum)
	}
}

func TestRankExclusions(t *testing.T) {
	dates := weekdays(30)
	var rows []model.PriceRow
	for i, d := range dates {
		// AAA: present every day, valid momentum.
		price := "100"
		if i == 20 {
			price = "150"
		}
		rows = append(rows, model.PriceRow{Date: d, Ticker: "AAA", Price: decimal.RequireFromString(price)})

		// CCC: non-positive price on the lookback date.
		ccc := "999"
		if i == 0 {
			ccc = "0"
		}
		rows = append(rows, model.PriceRow{Date: d, Ticker: "CCC", Price: decimal.RequireFromString(ccc)})

		// DDD: missing on the lookback date.
		if i != 0 {
			rows = append(rows, model.PriceRow{Date: d, Ticker: "DDD", Price: decimal.NewFromInt(50)})
		}
		// EEE: missing on the target date.
		if i != 20 {
			rows = append(rows, model.PriceRow{Date: d, Ticker: "EEE", Price: decimal.NewFromInt(75)})
		}
	}
	table := pricestore.New(rows)
	r := New(DefaultWindow, DefaultTopN)

	got := r.Rank(table, dates[20])
	if got.Kind != Ranked {
		t.Fatalf("Kind = %v, want Ranked", got.Kind)
	}
	if len(got.Entries) != 1 || got.Entries[0].Ticker != "AAA" {
		t.Fatalf("Entries = %v, want only AAA", got.Entries)
	}
}

func TestRankOrderingAndTopN(t *testing.T) {
	dates := weekdays(30)
	table := flatTable(dates, []string{"AAA", "BBB", "CCC", "DDD", "EEE", "FFF"}, "100",
		[3]string{dates[20], "AAA", "120"},
		[3]string{dates[20], "BBB", "150"},
		[3]string{dates[20], "CCC", "90"},
		[3]string{dates[20], "DDD", "120"}, // ties AAA
		[3]string{dates[20], "EEE", "130"},
		[3]string{dates[20], "FFF", "110"},
	)
	r := New(DefaultWindow, DefaultTopN)

	got := r.Rank(table, dates[20])
	if got.Kind != Ranked {
		t.Fatalf("Kind = %v, want Ranked", got.Kind)
	}
	if len(got.Entries) != 5 {
		t.Fatalf("len(Entries) = %d, want 5 (six tickers qualified)", len(got.Entries))
	}

	wantOrder := []string{"BBB", "EEE", "AAA", "DDD", "FFF"}
	for i, want := range wantOrder {
		if got.Entries[i].Ticker != want {
			t.Errorf("Entries[%d].Ticker = %q, want %q", i, got.Entries[i].Ticker, want)
		}
	}

	// Sorted: momentum descending, ties broken by ticker ascending.
	for i := 1; i < len(got.Entries); i++ {
		prev, cur := got.Entries[i-1], got.Entries[i]
		if prev.Momentum < cur.Momentum {
			t.Errorf("Entries[%d..%d] momentum ascending: %v < %v", i-1, i, prev.Momentum, cur.Momentum)
		}
		if prev.Momentum == cur.Momentum && prev.Ticker >= cur.Ticker {
			t.Errorf("tie at %d not broken by ticker: %q before %q", i, prev.Ticker, cur.Ticker)
		}
	}
}

func TestRankMomentumMatchesRecomputation(t *testing.T) {
	dates := weekdays(30)
	table := flatTable(dates, []string{"AAA", "BBB", "CCC"}, "100",
		[3]string{dates[20], "AAA", "137.41"},
		[3]string{dates[20], "BBB", "96.2"},
		[3]string{dates[0], "CCC", "80"},
	)
	r := New(DefaultWindow, DefaultTopN)

	got := r.Rank(table, dates[20])
	if got.Kind != Ranked {
		t.Fatalf("Kind = %v, want Ranked", got.Kind)
	}

	lookback := dates[0]
	for _, e := range got.Entries {
		today, ok := table.Price(dates[20], e.Ticker)
		if !ok {
			t.Fatalf("entry %q missing on target date", e.Ticker)
		}
		past, ok := table.Price(lookback, e.Ticker)
		if !ok {
			t.Fatalf("entry %q missing on lookback date", e.Ticker)
		}
		want := today.Div(past).Sub(decimal.NewFromInt(1)).InexactFloat64()
		if e.Momentum != want {
			t.Errorf("%s momentum = %v, want %v", e.Ticker, e.Momentum, want)
		}
	}
}

func TestRankRankedButEmpty(t *testing.T) {
	dates := weekdays(30)
	var rows []model.PriceRow
	for _, d := range dates {
		rows = append(rows, model.PriceRow{Date: d, Ticker: "AAA", Price: decimal.NewFromInt(100)})
	}
	// Swap the lookback-date row to a different ticker so AAA has no price
	// 20 positions back and ZZZ has none on the target date.
	rows[0].Ticker = "ZZZ"
	table := pricestore.New(rows)

	r := New(DefaultWindow, DefaultTopN)
	got := r.Rank(table, dates[20])
	if got.Kind != Ranked {
		t.Fatalf("Kind = %v, want Ranked (history exists, nothing qualified)", got.Kind)
	}
	if len(got.Entries) != 0 {
		t.Errorf("Entries = %v, want empty", got.Entries)
	}
}

func TestNewFallsBackToDefaults(t *testing.T) {
	r := New(0, -1)
	if r.Window() != DefaultWindow {
		t.Errorf("Window = %d, want %d", r.Window(), DefaultWindow)
	}
	if r.TopN() != DefaultTopN {
		t.Errorf("TopN = %d, want %d", r.TopN(), DefaultTopN)
	}
}
