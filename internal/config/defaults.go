package config

// Default values for optional configuration fields.
const (
	DefaultRawPath   = "data/stock_prices_raw.csv"
	DefaultCleanPath = "data/stock_prices_clean.csv"
	DefaultCachePath = "data/momentum_results.json"
	DefaultWindow    = 20
	DefaultTopN      = 5
	DefaultDBPort    = 5432
	DefaultDBSSLMode = "prefer"
	DefaultDBTable   = "daily_prices"
	DefaultMaxConns  = 4
	DefaultMinConns  = 1
	DefaultLogLevel  = "info"
)

func (c *Config) applyDefaults() {
	// Data defaults
	if c.Data.Source == "" {
		c.Data.Source = SourceCSV
	}
	if c.Data.RawPath == "" {
		c.Data.RawPath = DefaultRawPath
	}
	if c.Data.CleanPath == "" {
		c.Data.CleanPath = DefaultCleanPath
	}
	applyDBDefaults(&c.Data.Postgres)

	// Ranking defaults
	if c.Ranking.Window == 0 {
		c.Ranking.Window = DefaultWindow
	}
	if c.Ranking.TopN == 0 {
		c.Ranking.TopN = DefaultTopN
	}

	// Cache defaults
	if c.Cache.Path == "" {
		c.Cache.Path = DefaultCachePath
	}

	// Logging defaults
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
}

func applyDBDefaults(db *DBConfig) {
	if db.Port == 0 {
		db.Port = DefaultDBPort
	}
	if db.SSLMode == "" {
		db.SSLMode = DefaultDBSSLMode
	}
	if db.Table == "" {
		db.Table = DefaultDBTable
	}
	if db.MaxConns == 0 {
		db.MaxConns = DefaultMaxConns
	}
	if db.MinConns == 0 {
		db.MinConns = DefaultMinConns
	}
}
