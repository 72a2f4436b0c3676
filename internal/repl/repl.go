package repl

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/rickgao/momentum-screener/internal/rank"
	"github.com/rickgao/momentum-screener/internal/session"
)

const dateLayout = "2006-01-02"

// exitTokens end the loop, case-insensitively.
var exitTokens = map[string]bool{"quit": true, "exit": true, "q": true}

// REPL runs the interactive query loop over injected streams.
type REPL struct {
	session *session.Session
	in      io.Reader
	out     io.Writer
	logger  *slog.Logger
}

// New creates a REPL bound to a session.
func New(s *session.Session, in io.Reader, out io.Writer, logger *slog.Logger) *REPL {
	if logger == nil {
		logger = slog.Default()
	}
	return &REPL{session: s, in: in, out: out, logger: logger}
}

// Run loops until an exit token or end of input. The returned error covers
// stream failures only; query outcomes are never errors.
func (r *REPL) Run() error {
	first, last := r.session.DateRange()
	fmt.Fprintf(r.out, "Enter a date (YYYY-MM-DD) for the top %d tickers by %d-day momentum.\n",
		r.session.TopN(), r.session.Window())
	fmt.Fprintf(r.out, "Type 'quit', 'exit', or 'q' to stop.\n\n")

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, "Date: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			fmt.Fprintln(r.out)
			return nil
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if exitTokens[strings.ToLower(input)] {
			fmt.Fprintln(r.out, "Goodbye.")
			return nil
		}

		// Normalize before the sentinel lookup: a malformed string is a
		// usage problem, not a "date not in dataset" outcome.
		if _, err := time.Parse(dateLayout, input); err != nil {
			fmt.Fprintf(r.out, "\n%q is not a valid date. Use the YYYY-MM-DD format.\n\n", input)
			continue
		}

		result := r.session.Query(input)
		r.printResult(input, result, first, last)
	}
}

func (r *REPL) printResult(date string, result session.Result, first, last string) {
	switch result.Outcome.Kind {
	case rank.NoSuchDate:
		fmt.Fprintf(r.out, "\nNo data for date %s. Use a trading day between %s and %s.\n\n",
			date, first, last)
	case rank.InsufficientHistory:
		fmt.Fprintf(r.out, "\nInsufficient history for %s. Need at least %d trading days before this date.\n\n",
			date, r.session.Window())
	case rank.Ranked:
		if len(result.Outcome.Entries) == 0 {
			fmt.Fprintf(r.out, "\nNo ticker had computable momentum for %s.\n\n", date)
			return
		}
		if result.FromCache {
			fmt.Fprintf(r.out, "\nResult for %s (from cache):\n", date)
		} else {
			fmt.Fprintf(r.out, "\nResult for %s (computed and saved):\n", date)
		}
		for i, e := range result.Outcome.Entries {
			fmt.Fprintf(r.out, "  %d. %s  momentum: %.6f\n", i+1, e.Ticker, e.Momentum)
		}
		if n := len(result.Outcome.Entries); n < r.session.TopN() {
			fmt.Fprintf(r.out, "  (Only %d tickers had valid momentum for this date.)\n", n)
		}
		fmt.Fprintln(r.out)
	}
}
