package config

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger returns a structured logger writing to w with the level from PONG_LOG_LEVEL.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(GetEnv("PONG_LOG_LEVEL", "info"))
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// NewTerminalLogger returns a logger for programs that own the terminal.
// It writes to PONG_LOG_FILE when set and discards output otherwise, so log
// lines never land on the game screen. The returned close function is never nil.
func NewTerminalLogger(prefix string) (*log.Logger, func() error, error) {
	path := GetEnv("PONG_LOG_FILE", "")
	if path == "" {
		return NewLogger(io.Discard, prefix), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return NewLogger(f, prefix), f.Close, nil
}
