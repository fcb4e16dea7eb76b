package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/danielhkuo/mouza-form/db"
	"github.com/danielhkuo/mouza-form/submission"
)

type Config struct {
	Port            int
	DatabaseURL     string
	DatabaseType    string
	MaxConns        int
	SubmitMode      submission.Mode
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	LogLevel        string
}

// ParseFlags validates flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var (
		cfg  Config
		mode string
	)

	fs := flag.NewFlagSet("mouza-form", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres or pgx)")
	fs.IntVar(&cfg.MaxConns, "max-conns", 0, "Maximum open connections (postgres only)")

	// Behaviour
	fs.StringVar(&mode, "mode", "", "Submission mode (atomic or best-effort)")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", 0, "Per-request timeout")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", 0, "Grace period for in-flight requests on shutdown")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = db.TypeSQLite
		}
	}
	if !db.Supported(cfg.DatabaseType) {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType != db.TypeSQLite {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "file:database.db"
	}

	if cfg.MaxConns == 0 {
		if s := os.Getenv("DB_MAX_CONNS"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 {
				return Config{}, errors.New("invalid DB_MAX_CONNS env variable")
			}
			cfg.MaxConns = n
		} else {
			cfg.MaxConns = 10
		}
	}

	if mode == "" {
		mode = os.Getenv("SUBMIT_MODE")
		if mode == "" {
			mode = string(submission.ModeAtomic)
		}
	}
	submitMode, err := submission.ParseMode(mode)
	if err != nil {
		return Config{}, err
	}
	cfg.SubmitMode = submitMode

	if cfg.RequestTimeout == 0 {
		if s := os.Getenv("REQUEST_TIMEOUT"); s != "" {
			d, err := time.ParseDuration(s)
			if err != nil {
				return Config{}, errors.New("invalid REQUEST_TIMEOUT env variable")
			}
			cfg.RequestTimeout = d
		} else {
			cfg.RequestTimeout = 15 * time.Second
		}
	}
	if cfg.RequestTimeout < 0 {
		return Config{}, errors.New("request timeout must be positive")
	}

	if cfg.ShutdownTimeout == 0 {
		if s := os.Getenv("SHUTDOWN_TIMEOUT"); s != "" {
			d, err := time.ParseDuration(s)
			if err != nil {
				return Config{}, errors.New("invalid SHUTDOWN_TIMEOUT env variable")
			}
			cfg.ShutdownTimeout = d
		} else {
			cfg.ShutdownTimeout = 10 * time.Second
		}
	}
	if cfg.ShutdownTimeout < 0 {
		return Config{}, errors.New("shutdown timeout must be positive")
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = os.Getenv("LOG_LEVEL")
		if cfg.LogLevel == "" {
			cfg.LogLevel = "info"
		}
	}

	return cfg, nil
}
