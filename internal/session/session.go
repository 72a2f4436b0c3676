package session

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/rickgao/momentum-screener/internal/cache"
	"github.com/rickgao/momentum-screener/internal/pricestore"
	"github.com/rickgao/momentum-screener/internal/rank"
)

// Session owns the in-memory dataset and per-session query state. The
// table and its indices are read-only for the session's lifetime.
type Session struct {
	id     uuid.UUID
	table  *pricestore.Table
	ranker *rank.Ranker
	cache  *cache.Cache
	logger *slog.Logger
}

// Result is the answer to one query.
type Result struct {
	Outcome   rank.Outcome
	FromCache bool
}

// New creates a Session over a loaded table.
func New(table *pricestore.Table, ranker *rank.Ranker, c *cache.Cache, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.New()
	return &Session{
		id:     id,
		table:  table,
		ranker: ranker,
		cache:  c,
		logger: logger.With("session_id", id),
	}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Window returns the ranker's lookback window.
func (s *Session) Window() int {
	return s.ranker.Window()
}

// TopN returns the ranker's maximum ranking length.
func (s *Session) TopN() int {
	return s.ranker.TopN()
}

// DateRange returns the earliest and latest trading dates in the dataset.
func (s *Session) DateRange() (first, last string) {
	return s.table.First(), s.table.Last()
}

// Query answers a momentum query for date, consulting the cache before
// computing. Freshly computed rankings with at least one entry are stored;
// the two no-ranking outcomes and empty rankings are not.
func (s *Session) Query(date string) Result {
	if entries, ok := s.cache.Get(date); ok {
		s.logger.Debug("cache hit", "date", date, "entries", len(entries))
		return Result{
			Outcome:   rank.Outcome{Kind: rank.Ranked, Entries: entries},
			FromCache: true,
		}
	}

	outcome := s.ranker.Rank(s.table, date)
	s.logger.Debug("ranking computed",
		"date", date,
		"outcome", outcome.Kind.String(),
		"entries", len(outcome.Entries),
	)

	if outcome.Kind == rank.Ranked && len(outcome.Entries) > 0 {
		if err := s.cache.Put(date, outcome.Entries); err != nil {
			// The query still succeeded; only persistence failed.
			s.logger.Warn("failed to store result in cache", "date", date, "error", err)
		} else {
			// Serve the stored (rounded) entries so a later cache hit for
			// the same date returns identical values.
			if stored, ok := s.cache.Get(date); ok {
				outcome.Entries = stored
			}
		}
	}
	return Result{Outcome: outcome}
}
