// Package config holds the server configuration and the template seed file.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/erazemk/lynx/internal/ids"
)

// Config is the runtime configuration of the server.
type Config struct {
	Addr           string
	TemplatesPath  string
	LogFile        string
	LogLevel       string
	IDStrategy     string
	DisplayRefresh time.Duration
}

// Defaults.
const (
	DefaultAddr           = ":8080"
	DefaultLogLevel       = "info"
	DefaultDisplayRefresh = 5 * time.Second
)

// Validate checks the configuration and reports every invalid field.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if strings.TrimSpace(c.Addr) == "" {
		errs = errs.Append("addr", fmt.Errorf("listen address is required"))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = errs.Append("log_level", err)
	}
	if _, err := ids.FromName(c.IDStrategy); err != nil {
		errs = errs.Append("ids", err)
	}
	if c.DisplayRefresh < time.Second {
		errs = errs.Append("display_refresh", fmt.Errorf("must be at least 1s, got %s", c.DisplayRefresh))
	}

	return errs.ToError()
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}
