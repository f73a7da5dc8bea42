// Package config loads exepath CLI settings from flags and EXEPATH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "EXEPATH"

const (
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
	KeyOutput    = "output"
)

const (
	OutputPlain = "plain"
	OutputJSON  = "json"
)

var ErrInvalidOutput = errors.New("invalid output format")

// Config holds the settings shared by every exepath command.
type Config struct {
	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
	Output    string `mapstructure:"output"`
}

// AddFlags registers the persistent flags Load reads back.
func AddFlags(fs *pflag.FlagSet) {
	fs.String(KeyLogLevel, "warn", "Set the log level (debug, info, warn, error)")
	fs.String(KeyLogFormat, "text", "Set the log format (text, logfmt, json)")
	fs.StringP(KeyOutput, "o", OutputPlain, "Output format (plain, json)")
}

// Load resolves the configuration. Explicitly set flags win over
// environment variables, which win over flag defaults.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	cfg.Output = strings.ToLower(cfg.Output)
	switch cfg.Output {
	case OutputPlain, OutputJSON:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidOutput, cfg.Output)
	}

	return &cfg, nil
}
