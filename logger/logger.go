package logger

import (
	"go.uber.org/zap"

	"github.com/iotaledger/flagset/ierrors"
)

// ErrInvalidLevel is returned if the configured log level is unknown.
var ErrInvalidLevel = ierrors.New("invalid log level")

// NewRootLogger creates a new root logger from the provided configuration.
func NewRootLogger(cfg Config) (*zap.SugaredLogger, error) {
	defaults := DefaultConfig()
	if cfg.Encoding == "" {
		cfg.Encoding = defaults.Encoding
	}
	if len(cfg.OutputPaths) == 0 {
		cfg.OutputPaths = defaults.OutputPaths
	}

	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, ierrors.Wrapf(ErrInvalidLevel, "%q", cfg.Level)
	}

	zapCfg := zap.Config{
		Level:             level,
		DisableCaller:     cfg.DisableCaller,
		DisableStacktrace: cfg.DisableStacktrace,
		Encoding:          cfg.Encoding,
		EncoderConfig:     defaultEncoderConfig,
		OutputPaths:       cfg.OutputPaths,
		ErrorOutputPaths:  []string{"stderr"},
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to build logger")
	}

	return logger.Sugar(), nil
}

// NewNopLogger returns a logger that discards all messages.
func NewNopLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
