// Package logging routes logrus output to a file so the terminal stays free
// for the interface.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/onair/internal/config"
)

// Setup opens the configured log file and points the standard logrus logger
// at it. The returned closer must be called on exit.
func Setup(cfg config.LogConfig) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(cfg.File, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	Configure(logrus.StandardLogger(), f, cfg.Level)
	return f, nil
}

// Configure sets output, formatter and level on l. Unknown levels fall back
// to info.
func Configure(l *logrus.Logger, w io.Writer, level string) {
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)
}

// Discard silences the standard logger. Used when the log file cannot be
// opened.
func Discard() {
	logrus.SetOutput(io.Discard)
}
