// Package logging builds the application logger. A tray process has no
// console, so output goes to a file in the per-user cache directory.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const (
	appDir  = "chucktray"
	logName = "chucktray.log"
)

// Dir returns the per-user directory for logs and icon files
func Dir() (string, error) {
	cache, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate cache dir: %w", err)
	}
	return filepath.Join(cache, appDir), nil
}

// New returns a logger writing to the log file, or to stderr when the file
// cannot be opened. The returned closer must be called on exit.
func New(level logrus.Level) (*logrus.Logger, io.Closer) {
	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		DisableColors:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	f, err := openLogFile()
	if err != nil {
		logger.SetOutput(os.Stderr)
		logger.WithError(err).Warn("logging to stderr")
		return logger, nopCloser{}
	}
	logger.SetOutput(f)
	return logger, f
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func openLogFile() (*os.File, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log dir: %w", err)
	}
	return os.OpenFile(filepath.Join(dir, logName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}
