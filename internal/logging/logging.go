// Package logging configures the process-wide structured logger.
package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options controls logger setup.
type Options struct {
	// Debug lowers the level to debug and adds caller information.
	Debug bool
	// Quiet disables all log output.
	Quiet bool
	// NoColor disables ANSI colors in console output.
	NoColor bool
	// Out is the log destination. Defaults to os.Stderr.
	Out io.Writer
}

var (
	debugEnabled   bool
	debugEnabledMu sync.RWMutex
)

func init() {
	Setup(Options{})
}

// Setup configures the global logger. Warnings and errors are always shown
// unless Quiet is set.
func Setup(opts Options) {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	switch {
	case opts.Quiet:
		zerolog.SetGlobalLevel(zerolog.Disabled)
	case opts.Debug:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
	}

	logger := zerolog.New(consoleWriter).With().Timestamp().Logger()
	if opts.Debug {
		logger = logger.With().Caller().Logger()
	}
	log.Logger = logger

	debugEnabledMu.Lock()
	debugEnabled = opts.Debug && !opts.Quiet
	debugEnabledMu.Unlock()

	log.Debug().Bool("debug", opts.Debug).Msg("Logger initialized")
}

// IsDebug reports whether debug logging is enabled.
func IsDebug() bool {
	debugEnabledMu.RLock()
	defer debugEnabledMu.RUnlock()
	return debugEnabled
}

// GetLogger returns a logger tagged with the given component name.
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// LogOperationStart logs the start of an operation and returns a function
// that logs its completion with the elapsed time.
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
