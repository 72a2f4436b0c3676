package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/rickgao/momentum-screener/internal/cache"
	"github.com/rickgao/momentum-screener/internal/cleaner"
	"github.com/rickgao/momentum-screener/internal/config"
	"github.com/rickgao/momentum-screener/internal/database"
	"github.com/rickgao/momentum-screener/internal/pricestore"
	"github.com/rickgao/momentum-screener/internal/rank"
	"github.com/rickgao/momentum-screener/internal/repl"
	"github.com/rickgao/momentum-screener/internal/session"
	"github.com/rickgao/momentum-screener/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/screener.yaml", "path to config file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting screener",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration; fall back to defaults when no config file exists.
	var cfg *config.Config
	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		logger.Info("no config file, using defaults", "path", *configPath)
		cfg = config.Default()
	} else {
		loaded, err := config.LoadAndValidate(*configPath)
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.Logging.Level),
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	// Step 1: clean the raw rows once per session.
	logger.Info("cleaning raw prices", "raw_path", cfg.Data.RawPath)
	rows, report, err := cleaner.CleanFile(cfg.Data.RawPath)
	if err != nil {
		logger.Error("failed to clean raw prices", "error", err)
		os.Exit(1)
	}
	report.Log(logger)

	if err := cleaner.WriteCleanFile(cfg.Data.CleanPath, rows); err != nil {
		logger.Error("failed to write clean prices", "error", err)
		os.Exit(1)
	}
	logger.Info("clean prices written", "clean_path", cfg.Data.CleanPath, "rows", len(rows))

	// Step 2: load the clean rows through the configured source.
	source, cleanup, err := buildSource(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to build row source", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	loaded, err := source.Load(ctx)
	if err != nil {
		logger.Error("failed to load clean prices", "error", err)
		os.Exit(1)
	}
	if len(loaded) == 0 {
		logger.Error("no clean data to work with")
		os.Exit(1)
	}

	table := pricestore.New(loaded)
	logger.Info("price table loaded",
		"rows", table.NumRows(),
		"trading_days", table.NumDates(),
		"first", table.First(),
		"last", table.Last(),
	)

	// Step 3: open the cache and run the interactive loop.
	resultCache, err := cache.Open(cfg.Cache.Path, logger)
	if err != nil {
		logger.Error("failed to open result cache", "error", err)
		os.Exit(1)
	}
	logger.Info("result cache opened", "path", cfg.Cache.Path, "cached_dates", resultCache.Len())

	ranker := rank.New(cfg.Ranking.Window, cfg.Ranking.TopN)
	sess := session.New(table, ranker, resultCache, logger)
	logger.Info("session ready", "session_id", sess.ID())

	loop := repl.New(sess, os.Stdin, os.Stdout, logger)
	if err := loop.Run(); err != nil {
		logger.Error("interactive loop failed", "error", err)
		os.Exit(1)
	}
}

// buildSource constructs the configured RowSource. The returned cleanup
// releases any backing connections.
func buildSource(ctx context.Context, cfg *config.Config, logger *slog.Logger) (pricestore.RowSource, func(), error) {
	switch cfg.Data.Source {
	case config.SourcePostgres:
		logger.Info("connecting to database",
			"host", cfg.Data.Postgres.Host,
			"port", cfg.Data.Postgres.Port,
			"database", cfg.Data.Postgres.Name,
		)
		pool, err := database.Connect(ctx, cfg.Data.Postgres)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		return &pricestore.PostgresSource{Pool: pool, Table: cfg.Data.Postgres.Table}, pool.Close, nil
	default:
		return &pricestore.CSVSource{Path: cfg.Data.CleanPath}, func() {}, nil
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
