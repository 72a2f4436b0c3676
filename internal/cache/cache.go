package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/rickgao/momentum-screener/internal/model"
)

// storedPrecision is the number of decimal places momentum values keep in
// the persisted file.
const storedPrecision = 6

// Cache is a file-backed mapping from date string to a computed ranking.
type Cache struct {
	path    string
	results map[string][]model.RankEntry
	logger  *slog.Logger
}

// Open loads the cache at path. A missing file yields an empty cache; a
// file that cannot be parsed is logged and treated as empty. Only a real
// read failure (e.g. permissions) is an error.
func Open(path string, logger *slog.Logger) (*Cache, error) {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Cache{
		path:    path,
		results: make(map[string][]model.RankEntry),
		logger:  logger,
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cache file: %w", err)
	}

	if err := json.Unmarshal(data, &c.results); err != nil {
		logger.Warn("cache file is not valid json, starting empty",
			"path", path,
			"error", err,
		)
		c.results = make(map[string][]model.RankEntry)
	}
	return c, nil
}

// Get returns the stored ranking for date, verbatim.
func (c *Cache) Get(date string) ([]model.RankEntry, bool) {
	entries, ok := c.results[date]
	return entries, ok
}

// Put stores entries under date and rewrites the backing file. Momentum
// values are rounded to six decimal places for persistence, and the stored
// (rounded) entries are what later Gets return.
func (c *Cache) Put(date string, entries []model.RankEntry) error {
	stored := make([]model.RankEntry, len(entries))
	for i, e := range entries {
		stored[i] = model.RankEntry{
			Ticker:   e.Ticker,
			Momentum: roundTo(e.Momentum, storedPrecision),
		}
	}
	c.results[date] = stored
	return c.flush()
}

// Len returns the number of cached dates.
func (c *Cache) Len() int {
	return len(c.results)
}

// flush rewrites the backing file via temp-file rename so a failed write
// never corrupts an existing cache.
func (c *Cache) flush() error {
	data, err := json.MarshalIndent(c.results, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp cache file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp cache file: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		return fmt.Errorf("replace cache file: %w", err)
	}
	return nil
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow10(places)
	return math.Round(v*scale) / scale
}
