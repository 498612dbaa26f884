package log

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var (
	verbose     = false
	disableLogs = false

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	logger = newLogger()
)

// levelWriter routes errors to stderr and everything else to stdout.
type levelWriter struct {
	out zerolog.ConsoleWriter
	err zerolog.ConsoleWriter
}

func (w levelWriter) Write(p []byte) (int, error) {
	return w.out.Write(p)
}

func (w levelWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level >= zerolog.ErrorLevel {
		return w.err.Write(p)
	}
	return w.out.Write(p)
}

func newLogger() zerolog.Logger {
	console := func(out io.Writer) zerolog.ConsoleWriter {
		return zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    !isTerminal(out),
			TimeFormat: "15:04:05",
		}
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	if disableLogs {
		level = zerolog.Disabled
	}

	return zerolog.New(levelWriter{out: console(stdout), err: console(stderr)}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetVerbose sets the logging verbosity. If true, debug messages are displayed.
func SetVerbose(v bool) {
	verbose = v
	logger = newLogger()
}

// DisableLogs disables all logging.
func DisableLogs() {
	disableLogs = true
	logger = newLogger()
}

// SetOutput replaces the stdout and stderr writers.
func SetOutput(out, errOut io.Writer) {
	stdout = out
	stderr = errOut
	logger = newLogger()
}

// Debugf logs a debug message if verbose is true.
func Debugf(format string, args ...interface{}) {
	logger.Debug().Msgf(format, args...)
}

// Infof logs an info message.
func Infof(format string, args ...interface{}) {
	logger.Info().Msgf(format, args...)
}

// Warnf logs a warning message.
func Warnf(format string, args ...interface{}) {
	logger.Warn().Msgf(format, args...)
}

// Errorf logs an error message.
func Errorf(format string, args ...interface{}) {
	logger.Error().Msgf(format, args...)
}
