// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment-driven defaults. Every field has a flag
// counterpart somewhere; flags win.
type Config struct {
	Symprec   float64 `env:"SPGCELL_SYMPREC" envDefault:"1e-5"`
	LogLevel  string  `env:"SPGCELL_LOG_LEVEL" envDefault:"info"`
	LogFormat string  `env:"SPGCELL_LOG_FORMAT" envDefault:"text"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// setupLogging installs the process-wide logger. Results own stdout, so logs
// go to stderr.
func setupLogging(level, format string) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
