// Package log builds the slog handlers used by the exepath CLI.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

const (
	TextFormat   = "text"
	LogfmtFormat = "logfmt"
	JSONFormat   = "json"
)

var (
	ErrInvalidLevel  = errors.New("invalid log level")
	ErrInvalidFormat = errors.New("invalid log format")
)

// CreateHandler creates a [slog.Handler] writing to w from level and format names.
func CreateHandler(w io.Writer, level, format string) (slog.Handler, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var formatter charmlog.Formatter
	switch strings.ToLower(format) {
	case TextFormat, "":
		formatter = charmlog.TextFormatter
	case LogfmtFormat:
		formatter = charmlog.LogfmtFormatter
	case JSONFormat:
		formatter = charmlog.JSONFormatter
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}

	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           lvl,
		Formatter:       formatter,
		ReportTimestamp: formatter != charmlog.TextFormatter,
	}), nil
}

// ParseLevel maps a level name onto a charmbracelet/log level.
func ParseLevel(level string) (charmlog.Level, error) {
	switch strings.ToLower(level) {
	case "debug", "trace":
		return charmlog.DebugLevel, nil
	case "info", "":
		return charmlog.InfoLevel, nil
	case "warn", "warning":
		return charmlog.WarnLevel, nil
	case "error":
		return charmlog.ErrorLevel, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}
}
