package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	t.Run("New creates working logger", func(t *testing.T) {
		var buf bytes.Buffer

		log := New(
			WithOutput(&buf),
			WithLevel("debug"),
			WithConsoleWriter(false), // Disable pretty printing for test
		)

		log.Info().Msg("test message")

		output := buf.String()
		assert.Contains(t, output, "test message")
		assert.Contains(t, output, "info")
	})

	t.Run("Logger respects log levels", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(
			WithOutput(&buf),
			WithLevel("info"),
			WithConsoleWriter(false),
		)

		log.Debug().Msg("debug message")
		assert.Empty(t, buf.String(), "Debug message should not be logged")

		log.Info().Msg("info message")
		assert.Contains(t, buf.String(), "info message")
	})

	t.Run("Console writer enables pretty logging", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(
			WithOutput(&buf),
			WithLevel("debug"),
			WithConsoleWriter(true),
		)

		log.Info().Msg("pretty message")
		output := buf.String()

		// Console writer uses level abbreviations like "INF" instead of JSON format
		assert.Contains(t, output, "INF")
		assert.NotContains(t, output, `{"level":"info"}`)
	})

	t.Run("Logger with fields", func(t *testing.T) {
		var buf bytes.Buffer
		log := *New(
			WithOutput(&buf),
			WithLevel("debug"),
			WithConsoleWriter(false),
		)

		log = log.With().
			Str("stage", "install").
			Int("attempt", 1).
			Logger()

		log.Info().Msg("test with fields")
		output := buf.String()

		assert.Contains(t, output, "stage")
		assert.Contains(t, output, "install")
		assert.Contains(t, output, "attempt")
		assert.Contains(t, output, "1")
	})
}
