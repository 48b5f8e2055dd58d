package logger

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/stencil-dev/stencil-cli/internal/constants"
)

// New creates a new logger instance
func New(opts ...Option) *zerolog.Logger {
	// Default config
	config := &Config{
		output:       os.Stdout,
		level:        zerolog.InfoLevel,
		excludeParts: []string{zerolog.TimestampFieldName, zerolog.LevelFieldName},
		isDev:        true,
	}

	// Apply options
	for _, opt := range opts {
		opt.apply(config)
	}

	logger := zerolog.New(config.output).
		Level(config.level).
		With().
		Logger()

	// Pretty logging for terminal output
	if config.isDev {
		logger = logger.Output(zerolog.ConsoleWriter{
			Out:          config.output,
			PartsExclude: config.excludeParts,
		})
	}

	return &logger
}

// NewConsoleLogger returns the logger used for interactive runs: pretty
// output on stderr so generated-project output stays on stdout.
func NewConsoleLogger() *zerolog.Logger {
	return New(
		WithLevel(constants.DefaultLogLevel),
		WithOutput(os.Stderr),
		WithConsoleWriter(true),
	)
}
