// Package logging builds the gitstu logger: charmbracelet/log on stderr,
// optionally teed into a rotating log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/gitstu/gitstu/internal/config"
)

// New creates a logger for the given settings. The returned closer releases
// the log file, if any, and is always non-nil.
func New(settings *config.Settings) (*log.Logger, io.Closer, error) {
	return NewWithWriter(os.Stderr, settings)
}

// NewWithWriter is New with an explicit console writer.
func NewWithWriter(console io.Writer, settings *config.Settings) (*log.Logger, io.Closer, error) {
	var closer io.Closer = nopCloser{}
	writer := console
	timestamps := false

	if settings.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(settings.LogFile), 0750); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
		rotator := newRotator(settings)
		writer = io.MultiWriter(console, rotator)
		closer = rotator
		timestamps = true
	}

	logger := log.NewWithOptions(writer, log.Options{
		Prefix:          "gitstu",
		ReportTimestamp: timestamps,
		TimeFormat:      "2006-01-02 15:04:05.000",
	})

	logger.SetLevel(log.InfoLevel)
	if settings.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	return logger, closer, nil
}

// Discard returns a logger that drops everything, for tests.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

func newRotator(settings *config.Settings) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   settings.LogFile,
		MaxSize:    settings.LogMaxSize,
		MaxBackups: settings.LogMaxBackups,
		MaxAge:     settings.LogMaxAge,
		Compress:   false,
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
