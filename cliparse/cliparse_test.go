// cliparse/cliparse_test.go
package cliparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/mouza-form/db"
	"github.com/danielhkuo/mouza-form/submission"
)

// clearEnv blanks every variable ParseFlags reads
func clearEnv(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "DB_MAX_CONNS", "SUBMIT_MODE", "REQUEST_TIMEOUT", "SHUTDOWN_TIMEOUT", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{})
	require.NoError(t, err)

	assert.Equal(t, Config{
		Port:            3000,
		DatabaseURL:     "file:database.db",
		DatabaseType:    db.TypeSQLite,
		MaxConns:        10,
		SubmitMode:      submission.ModeAtomic,
		RequestTimeout:  15 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		LogLevel:        "info",
	}, cfg)
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DB_MAX_CONNS", "4")
	t.Setenv("SUBMIT_MODE", string(submission.ModeBestEffort))
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := ParseFlags([]string{})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "postgres", cfg.DatabaseType)
	assert.Equal(t, "postgres://test", cfg.DatabaseURL)
	assert.Equal(t, 4, cfg.MaxConns)
	assert.Equal(t, submission.ModeBestEffort, cfg.SubmitMode)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout, "shutdown grace is independent of the request timeout")
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("SUBMIT_MODE", string(submission.ModeBestEffort))

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-mode", "atomic", "-timeout", "2s", "-shutdown-timeout", "1s"})
	require.NoError(t, err)

	// CLI should override env
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "file:test.db", cfg.DatabaseURL)
	assert.Equal(t, submission.ModeAtomic, cfg.SubmitMode)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, time.Second, cfg.ShutdownTimeout)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{name: "postgres without url", args: []string{"-t", "postgres"}},
		{name: "pgx without url", env: map[string]string{"DATABASE_TYPE": "pgx"}},
		{name: "unknown database type", args: []string{"-t", "oracle"}},
		{name: "bad port", env: map[string]string{"PORT": "abc"}},
		{name: "bad max conns", env: map[string]string{"DB_MAX_CONNS": "0"}},
		{name: "bad submit mode", args: []string{"-mode", "yolo"}},
		{name: "bad timeout", env: map[string]string{"REQUEST_TIMEOUT": "soon"}},
		{name: "negative timeout", args: []string{"-timeout", "-1s"}},
		{name: "bad shutdown timeout", env: map[string]string{"SHUTDOWN_TIMEOUT": "later"}},
		{name: "negative shutdown timeout", args: []string{"-shutdown-timeout", "-1s"}},
		{name: "unknown flag", args: []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := ParseFlags(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestParseFlags_AcceptsEveryDatabaseType(t *testing.T) {
	for _, dbType := range []string{db.TypeSQLite, db.TypePostgres, db.TypePgx} {
		t.Run(dbType, func(t *testing.T) {
			clearEnv(t)

			cfg, err := ParseFlags([]string{"-t", dbType, "-d", "file:test.db"})
			require.NoError(t, err)
			assert.Equal(t, dbType, cfg.DatabaseType)
			assert.True(t, db.Supported(cfg.DatabaseType))
		})
	}
}

func TestParseFlags_AcceptsEverySubmitMode(t *testing.T) {
	for _, mode := range []submission.Mode{submission.ModeAtomic, submission.ModeBestEffort} {
		t.Run(string(mode), func(t *testing.T) {
			clearEnv(t)

			cfg, err := ParseFlags([]string{"-mode", string(mode)})
			require.NoError(t, err)
			assert.Equal(t, mode, cfg.SubmitMode)
		})
	}
}
