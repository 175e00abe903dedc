package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	defaultEncoderConfig.TimeKey = "" // no timestamps in tests
}

func TestNewRootLogger(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expectRx string
	}{
		{
			name: "console",
			cfg: Config{
				Level:    "info",
				Encoding: "console",
			},
			expectRx: `INFO\tlogger/logger_test.go:\d+\tinfo\n` +
				`WARN\tlogger/logger_test.go:\d+\twarn\n`,
		},
		{
			name: "json",
			cfg: Config{
				Level:    "info",
				Encoding: "json",
			},
			expectRx: `{"level":"INFO","caller":"logger/logger_test.go:\d+","msg":"info"}\n` +
				`{"level":"WARN","caller":"logger/logger_test.go:\d+","msg":"warn"}`,
		},
		{
			name: "debug",
			cfg: Config{
				Level: "debug",
			},
			expectRx: `DEBUG\tlogger/logger_test.go:\d+\tdebug\n` +
				`INFO\tlogger/logger_test.go:\d+\tinfo\n` +
				`WARN\tlogger/logger_test.go:\d+\twarn\n`,
		},
		{
			name: "noCaller",
			cfg: Config{
				DisableCaller: true,
			},
			expectRx: "INFO\tinfo\n" +
				"WARN\twarn\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "log")
			tt.cfg.OutputPaths = []string{path}

			logger, err := NewRootLogger(tt.cfg)
			require.NoError(t, err, "Unexpected error constructing logger.")

			logger.Debug("debug")
			logger.Info("info")
			logger.Warn("warn")
			require.NoError(t, logger.Sync())

			assert.Regexp(t, tt.expectRx, getLogs(t, path), "Unexpected log output.")
		})
	}
}

func TestNewRootLoggerInvalidLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "invalid"

	_, err := NewRootLogger(cfg)
	require.ErrorIs(t, err, ErrInvalidLevel)
}

func TestNewNopLogger(t *testing.T) {
	require.NotPanics(t, func() {
		NewNopLogger().Infow("discarded", "value", 1)
	})
}

func getLogs(t require.TestingT, path string) string {
	byteContents, err := os.ReadFile(path)
	require.NoError(t, err, "Couldn't read log contents from file.")

	return string(byteContents)
}
