package main

import (
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/flagset/configuration"
	"github.com/iotaledger/flagset/ierrors"
	"github.com/iotaledger/flagset/logger"
)

const (
	envPrefix = "FLAGCTL"

	configurationKeyConfigFile = "config"
	configurationKeyMaskWidth  = "mask.width"
	configurationKeyMaskValue  = "mask.value"
)

// MaskConfig describes the bitmask the operations are applied to.
type MaskConfig struct {
	// Width is the number of bits of the mask (8, 16, 32 or 64).
	Width int `koanf:"width"`
	// Value is the initial value of the mask.
	Value string `koanf:"value"`
}

// Config is the complete configuration of flagctl.
type Config struct {
	Mask   MaskConfig    `koanf:"mask"`
	Logger logger.Config `koanf:"logger"`
}

func newFlagSet() *flag.FlagSet {
	defaults := logger.DefaultConfig()

	flagSet := configuration.NewUnsortedFlagSet("flagctl", flag.ContinueOnError)
	flagSet.StringP(configurationKeyConfigFile, "c", "", "path to a JSON or YAML config file")
	flagSet.Int(configurationKeyMaskWidth, 64, "width of the bitmask in bits (8, 16, 32 or 64)")
	flagSet.String(configurationKeyMaskValue, "0", "initial value of the bitmask")
	flagSet.String(logger.ConfigurationKeyLevel, "warn", "minimum enabled logging level")
	flagSet.Bool(logger.ConfigurationKeyDisableCaller, true, "stop annotating logs with the caller")
	flagSet.Bool(logger.ConfigurationKeyDisableStacktrace, false, "disable automatic stacktrace capturing")
	flagSet.String(logger.ConfigurationKeyEncoding, defaults.Encoding, "log encoding (console or json)")
	flagSet.StringSlice(logger.ConfigurationKeyOutputPaths, []string{"stderr"}, "log output paths")

	return flagSet
}

// loadConfig merges the config file, the environment and the parsed flags. Flags that were set on the command line
// take precedence over the environment, which takes precedence over the file and the flag defaults.
func loadConfig(flagSet *flag.FlagSet) (*Config, error) {
	config := configuration.New()

	configFile, err := flagSet.GetString(configurationKeyConfigFile)
	if err != nil {
		return nil, err
	}
	if configFile != "" {
		if err := config.LoadFile(configFile); err != nil {
			return nil, ierrors.Wrap(err, "failed to load config file")
		}
	}

	if err := config.LoadFlagSet(flagSet); err != nil {
		return nil, ierrors.Wrap(err, "failed to load flags")
	}
	if err := config.LoadEnvironmentVars(envPrefix); err != nil {
		return nil, ierrors.Wrap(err, "failed to load environment variables")
	}
	// changed flags override the environment
	if err := config.LoadFlagSet(flagSet); err != nil {
		return nil, ierrors.Wrap(err, "failed to load flags")
	}

	cfg := &Config{}
	if err := config.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
