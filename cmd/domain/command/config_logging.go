package command

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pixil98/go-errors"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggingConfig struct {
	Level  string `json:"level" env:"DOMAIN_LOG_LEVEL"`
	Format string `json:"format" env:"DOMAIN_LOG_FORMAT"`

	// File switches output from stderr to a rotated log file.
	File       string `json:"file" env:"DOMAIN_LOG_FILE"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

func (c *LoggingConfig) validate() error {
	el := errors.NewErrorList()

	if _, err := c.level(); err != nil {
		el.Add(fmt.Errorf("logging: %w", err))
	}
	switch strings.ToLower(c.Format) {
	case "", "text", "json":
	default:
		el.Add(fmt.Errorf("logging: unknown format %q", c.Format))
	}
	if c.MaxSizeMB < 0 || c.MaxBackups < 0 || c.MaxAgeDays < 0 {
		el.Add(fmt.Errorf("logging: rotation limits must not be negative"))
	}

	return el.Err()
}

func (c *LoggingConfig) level() (slog.Level, error) {
	var lvl slog.Level
	if c.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return lvl, fmt.Errorf("parsing level: %w", err)
	}
	return lvl, nil
}

func (c *LoggingConfig) writer() io.Writer {
	if c.File == "" {
		return os.Stderr
	}
	return &lumberjack.Logger{
		Filename:   c.File,
		MaxSize:    c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAgeDays,
	}
}

func (c *LoggingConfig) buildLogger(w io.Writer) (*slog.Logger, error) {
	lvl, err := c.level()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if strings.ToLower(c.Format) == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
