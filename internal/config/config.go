// Package config loads, validates and persists footprint settings.
//
// Settings come from built-in defaults, then ~/.footprint/config.yaml (or
// $FOOTPRINT_HOME/config.yaml), then FOOTPRINT_* environment variables.
// Command-line flags are applied by the caller on top.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rshade/footprint/internal/emissions"
	"github.com/rshade/footprint/internal/greenops"
)

// Schema version written by this release and the range it accepts.
const (
	CurrentVersion    = "1.0.0"
	versionConstraint = ">= 1.0.0, < 2.0.0"
)

// Output formats.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
)

// Bounds for numeric settings.
const (
	MinPrecision  = 0
	MaxPrecision  = 6
	MinChartWidth = 20
	MaxChartWidth = 200

	defaultPrecision  = 2
	defaultChartWidth = 50
)

const (
	configFileName = "config.yaml"
	homeEnvVar     = "FOOTPRINT_HOME"
	dirName        = ".footprint"
)

// Config is the full settings tree.
type Config struct {
	Version  string            `yaml:"version"`
	Output   OutputConfig      `yaml:"output"`
	Logging  LoggingConfig     `yaml:"logging"`
	Defaults map[string]string `yaml:"defaults,omitempty"`
}

// OutputConfig controls how reports are rendered.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Precision     int    `yaml:"precision"`
	Unit          string `yaml:"unit"`
	ChartWidth    int    `yaml:"chart_width"`
}

// LoggingConfig controls diagnostic logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// New returns the built-in defaults.
func New() *Config {
	return &Config{
		Version: CurrentVersion,
		Output: OutputConfig{
			DefaultFormat: FormatTable,
			Precision:     defaultPrecision,
			Unit:          greenops.DefaultUnit,
			ChartWidth:    defaultChartWidth,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Defaults: map[string]string{},
	}
}

// Load returns defaults overlaid with the file at path (if it exists) and
// the environment. A missing file is not an error unless mustExist is set.
func Load(path string, mustExist bool) (*Config, error) {
	cfg, err := LoadFile(path, mustExist)
	if err != nil {
		return nil, err
	}
	if err = ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile is Load without the environment overlay. It is what
// `config set` edits, so env values are never written back.
func LoadFile(path string, mustExist bool) (*Config, error) {
	cfg := New()
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) || mustExist {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		return cfg, nil
	}
	if err := ShallowMergeYAML(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	header := "# footprint configuration\n# See `footprint config get/set` for the available keys.\n"
	if err = os.WriteFile(path, append([]byte(header), data...), 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// Validate checks every setting and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error

	if err := checkVersion(c.Version); err != nil {
		errs = append(errs, err)
	}

	switch c.Output.DefaultFormat {
	case FormatTable, FormatJSON, FormatNDJSON:
	default:
		errs = append(errs, fmt.Errorf("%w: output.default_format %q (want table, json or ndjson)",
			ErrInvalidValue, c.Output.DefaultFormat))
	}
	if c.Output.Precision < MinPrecision || c.Output.Precision > MaxPrecision {
		errs = append(errs, fmt.Errorf("%w: output.precision %d (want %d-%d)",
			ErrInvalidValue, c.Output.Precision, MinPrecision, MaxPrecision))
	}
	if !greenops.IsRecognizedUnit(c.Output.Unit) {
		errs = append(errs, fmt.Errorf("%w: output.unit %q (want g, kg, t or lb)", ErrInvalidValue, c.Output.Unit))
	}
	if c.Output.ChartWidth < MinChartWidth || c.Output.ChartWidth > MaxChartWidth {
		errs = append(errs, fmt.Errorf("%w: output.chart_width %d (want %d-%d)",
			ErrInvalidValue, c.Output.ChartWidth, MinChartWidth, MaxChartWidth))
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil {
		errs = append(errs, fmt.Errorf("%w: logging.level %q", ErrInvalidValue, c.Logging.Level))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("%w: logging.format %q (want json or console)",
			ErrInvalidValue, c.Logging.Format))
	}

	catalog := emissions.Default()
	for key := range c.Defaults {
		if _, ok := catalog.Lookup(key); !ok {
			errs = append(errs, fmt.Errorf("%w: defaults.%s", emissions.ErrUnknownActivity, key))
		}
	}

	return errors.Join(errs...)
}

// checkVersion accepts an empty version as current.
func checkVersion(v string) error {
	if v == "" {
		return nil
	}
	version, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: version %q is not semver: %w", ErrIncompatibleVersion, v, err)
	}
	constraint, err := semver.NewConstraint(versionConstraint)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}
	if !constraint.Check(version) {
		return fmt.Errorf("%w: version %s does not satisfy %s", ErrIncompatibleVersion, v, versionConstraint)
	}
	return nil
}

// Dir returns the footprint home directory: $FOOTPRINT_HOME or ~/.footprint.
func Dir() (string, error) {
	if dir := os.Getenv(homeEnvVar); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// DefaultPath returns the config file location inside Dir.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}
