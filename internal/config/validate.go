package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	switch c.Data.Source {
	case SourceCSV:
		if c.Data.CleanPath == "" {
			return errors.New("data.clean_path is required for the csv source")
		}
	case SourcePostgres:
		if err := c.Data.Postgres.validate("data.postgres"); err != nil {
			return err
		}
	default:
		return fmt.Errorf("data.source must be %q or %q, got %q", SourceCSV, SourcePostgres, c.Data.Source)
	}

	if c.Ranking.Window < 1 {
		return errors.New("ranking.window must be >= 1")
	}
	if c.Ranking.TopN < 1 {
		return errors.New("ranking.top_n must be >= 1")
	}

	if c.Cache.Path == "" {
		return errors.New("cache.path is required")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}

	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.Port < 1 || db.Port > 65535 {
		return fmt.Errorf("%s.port must be between 1 and 65535, got %d", prefix, db.Port)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns must be <= max_conns", prefix)
	}
	return nil
}
