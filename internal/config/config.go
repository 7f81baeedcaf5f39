package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress           string
	SeedFile             string
	DatabaseURI          string
	LogLevel             slog.Level
	JournalFlushInterval time.Duration
	JournalBatchSize     int
	JournalWorkers       int
	ShutdownTimeout      time.Duration
}

// JournalEnabled reports whether a database is configured for the audit journal.
func (c *Config) JournalEnabled() bool {
	return c.DatabaseURI != ""
}

const (
	defaultRunAddress           = ":8080"
	defaultLogLevel             = "info"
	defaultJournalFlushInterval = 2 * time.Second
	defaultJournalBatchSize     = 64
	defaultJournalWorkers       = 2
	defaultShutdownTimeout      = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:  getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		SeedFile:    getString(lookup, "SEED_FILE", ""),
		DatabaseURI: getString(lookup, "DATABASE_URI", ""),
	}

	var err error
	if cfg.JournalBatchSize, err = getInt(lookup, "JOURNAL_BATCH_SIZE", defaultJournalBatchSize); err != nil {
		return nil, err
	}
	if cfg.JournalWorkers, err = getInt(lookup, "JOURNAL_WORKERS", defaultJournalWorkers); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("adminpanel", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		logLevelStr        = getString(lookup, "LOG_LEVEL", defaultLogLevel)
		flushIntervalStr   = getString(lookup, "JOURNAL_FLUSH_INTERVAL", defaultJournalFlushInterval.String())
		shutdownTimeoutStr = getString(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout.String())
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.SeedFile, "seed", cfg.SeedFile, "YAML seed file replacing the embedded fixture")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN for the audit journal")
	fs.StringVar(&logLevelStr, "log-level", logLevelStr, "Log level: debug, info, warn or error")
	fs.StringVar(&flushIntervalStr, "journal-flush", flushIntervalStr, "Interval between journal flushes")
	fs.IntVar(&cfg.JournalBatchSize, "journal-batch", cfg.JournalBatchSize, "Maximum journal entries per write")
	fs.IntVar(&cfg.JournalWorkers, "journal-workers", cfg.JournalWorkers, "Number of concurrent journal writers")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err = cfg.LogLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	if cfg.JournalFlushInterval, err = time.ParseDuration(flushIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid journal flush interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if dsnFile, ok := lookup("DATABASE_URI_FILE"); ok && dsnFile != "" && cfg.DatabaseURI == "" {
		content, err := os.ReadFile(dsnFile)
		if err != nil {
			return nil, fmt.Errorf("read database uri file: %w", err)
		}
		cfg.DatabaseURI = strings.TrimSpace(string(content))
	}

	if cfg.JournalBatchSize <= 0 {
		cfg.JournalBatchSize = defaultJournalBatchSize
	}

	if cfg.JournalWorkers <= 0 {
		cfg.JournalWorkers = defaultJournalWorkers
	}

	if cfg.JournalFlushInterval <= 0 {
		cfg.JournalFlushInterval = defaultJournalFlushInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
