package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/flagset/configuration"
)

type loggerConfig struct {
	Level         string   `koanf:"level"`
	DisableCaller bool     `koanf:"disableCaller"`
	OutputPaths   []string `koanf:"outputPaths"`
}

func writeFile(t *testing.T, name string, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestFetchFlagset(t *testing.T) {
	testFlagSet := configuration.NewUnsortedFlagSet("", flag.ContinueOnError)
	testFlagSet.String("A", "321", "test")
	require.NoError(t, testFlagSet.Set("A", "123"))

	config := configuration.New()
	require.NoError(t, config.LoadFlagSet(testFlagSet))

	require.Equal(t, "123", config.String("A"))
	require.Equal(t, "123", config.String("a"))
}

func TestLoadJSONFile(t *testing.T) {
	path := writeFile(t, "config.json", `{"Logger": {"Level": "debug", "disableCaller": true, "outputPaths": ["stdout", "stderr"]}}`)

	config := configuration.New()
	require.NoError(t, config.LoadFile(path))
	require.True(t, config.Exists("logger.level"))

	var cfg loggerConfig
	require.NoError(t, config.Unmarshal("logger", &cfg))
	require.Equal(t, loggerConfig{Level: "debug", DisableCaller: true, OutputPaths: []string{"stdout", "stderr"}}, cfg)
}

func TestLoadYAMLFile(t *testing.T) {
	path := writeFile(t, "config.yml", "logger:\n  Level: warn\n  nested:\n    Key: value\n")

	config := configuration.New()
	require.NoError(t, config.LoadFile(path))
	require.Equal(t, "warn", config.String("logger.level"))
	require.Equal(t, "value", config.String("logger.nested.key"))
}

func TestLoadFileErrors(t *testing.T) {
	config := configuration.New()

	require.ErrorIs(t, config.LoadFile(filepath.Join(t.TempDir(), "missing.json")), os.ErrNotExist)
	require.ErrorIs(t, config.LoadFile(writeFile(t, "config.toml", "a = 1")), configuration.ErrUnknownConfigFormat)
	require.Error(t, config.LoadFile(writeFile(t, "config.json", "{")))
}

func TestPrecedence(t *testing.T) {
	path := writeFile(t, "config.json", `{"logger": {"level": "debug"}, "mask": {"width": 16}}`)

	flagSet := configuration.NewUnsortedFlagSet("", flag.ContinueOnError)
	flagSet.String("logger.level", "info", "")
	flagSet.String("logger.encoding", "console", "")
	flagSet.Int("mask.width", 64, "")
	require.NoError(t, flagSet.Parse([]string{"--mask.width=32"}))

	t.Setenv("TEST_LOGGER_LEVEL", "error")
	t.Setenv("TEST_LOGGER_UNKNOWN", "ignored")

	config := configuration.New()
	require.NoError(t, config.LoadFile(path))
	require.NoError(t, config.LoadFlagSet(flagSet))
	require.NoError(t, config.LoadEnvironmentVars("TEST"))

	// the file wins over flag defaults, env vars win over the file, changed flags win over everything
	require.Equal(t, "error", config.String("logger.level"))
	require.Equal(t, "console", config.String("logger.encoding"))
	require.Equal(t, int64(32), config.Koanf().Int64("mask.width"))
	require.False(t, config.Exists("logger.unknown"))
}
