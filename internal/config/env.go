package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envOverrides are the FOOTPRINT_* variables that override file settings.
type envOverrides struct {
	OutputFormat    string `env:"FOOTPRINT_OUTPUT_FORMAT"`
	OutputUnit      string `env:"FOOTPRINT_OUTPUT_UNIT"`
	OutputPrecision *int   `env:"FOOTPRINT_OUTPUT_PRECISION"`
	LogLevel        string `env:"FOOTPRINT_LOG_LEVEL"`
	LogFormat       string `env:"FOOTPRINT_LOG_FORMAT"`
	LogFile         string `env:"FOOTPRINT_LOG_FILE"`
}

// ApplyEnv overlays FOOTPRINT_* environment variables onto cfg. Unset or
// empty variables leave the current value in place.
func ApplyEnv(cfg *Config) error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("%w: parse env: %w", ErrInvalidValue, err)
	}

	if o.OutputFormat != "" {
		cfg.Output.DefaultFormat = o.OutputFormat
	}
	if o.OutputUnit != "" {
		cfg.Output.Unit = o.OutputUnit
	}
	if o.OutputPrecision != nil {
		cfg.Output.Precision = *o.OutputPrecision
	}
	if o.LogLevel != "" {
		cfg.Logging.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		cfg.Logging.Format = o.LogFormat
	}
	if o.LogFile != "" {
		cfg.Logging.File = o.LogFile
	}
	return nil
}
