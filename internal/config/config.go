package config

// SourceCSV and SourcePostgres are the supported clean-data backends.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Config is the root configuration for a screener session.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Ranking RankingConfig `yaml:"ranking"`
	Cache   CacheConfig   `yaml:"cache"`
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig describes where price rows come from.
type DataConfig struct {
	Source    string   `yaml:"source"`     // "csv" or "postgres"
	RawPath   string   `yaml:"raw_path"`   // raw CSV input (cleaned at startup)
	CleanPath string   `yaml:"clean_path"` // cleaned CSV output / csv-source input
	Postgres  DBConfig `yaml:"postgres"`   // used only when source is "postgres"
}

// DBConfig holds a PostgreSQL connection for the postgres row source.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	Table    string `yaml:"table"` // table holding (trade_date, ticker, close_price)
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// RankingConfig controls the momentum computation.
type RankingConfig struct {
	Window int `yaml:"window"` // lookback in trading-day positions, not calendar days
	TopN   int `yaml:"top_n"`  // entries returned per ranking
}

// CacheConfig describes the on-disk result cache.
type CacheConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig controls slog output.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}
