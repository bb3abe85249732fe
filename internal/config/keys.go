package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rshade/footprint/internal/emissions"
)

// Settable keys in dotted form. Activity defaults use "defaults.<activity>".
const (
	KeyVersion       = "version"
	KeyOutputFormat  = "output.default_format"
	KeyOutputPrec    = "output.precision"
	KeyOutputUnit    = "output.unit"
	KeyOutputWidth   = "output.chart_width"
	KeyLoggingLevel  = "logging.level"
	KeyLoggingFormat = "logging.format"
	KeyLoggingFile   = "logging.file"

	defaultsPrefix = "defaults."
)

// Keys returns every fixed key in sorted order.
func Keys() []string {
	keys := []string{
		KeyVersion, KeyOutputFormat, KeyOutputPrec, KeyOutputUnit, KeyOutputWidth,
		KeyLoggingLevel, KeyLoggingFormat, KeyLoggingFile,
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value at a dotted key. "defaults" alone lists every
// activity default as activity=value lines.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case KeyVersion:
		return c.Version, nil
	case KeyOutputFormat:
		return c.Output.DefaultFormat, nil
	case KeyOutputPrec:
		return strconv.Itoa(c.Output.Precision), nil
	case KeyOutputUnit:
		return c.Output.Unit, nil
	case KeyOutputWidth:
		return strconv.Itoa(c.Output.ChartWidth), nil
	case KeyLoggingLevel:
		return c.Logging.Level, nil
	case KeyLoggingFormat:
		return c.Logging.Format, nil
	case KeyLoggingFile:
		return c.Logging.File, nil
	case keyDefaults:
		ids := make([]string, 0, len(c.Defaults))
		for id := range c.Defaults {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		lines := make([]string, len(ids))
		for i, id := range ids {
			lines[i] = id + "=" + c.Defaults[id]
		}
		return strings.Join(lines, "\n"), nil
	}

	if id, ok := strings.CutPrefix(key, defaultsPrefix); ok {
		activity, found := emissions.Default().Lookup(id)
		if !found {
			return "", fmt.Errorf("%w: %q", emissions.ErrUnknownActivity, id)
		}
		return c.Defaults[activity.ID], nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

// Set stores value at a dotted key. The result is not validated; call
// Validate before saving.
func (c *Config) Set(key, value string) error {
	switch key {
	case KeyVersion:
		c.Version = value
	case KeyOutputFormat:
		c.Output.DefaultFormat = value
	case KeyOutputPrec:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidValue, key, value)
		}
		c.Output.Precision = n
	case KeyOutputUnit:
		c.Output.Unit = value
	case KeyOutputWidth:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidValue, key, value)
		}
		c.Output.ChartWidth = n
	case KeyLoggingLevel:
		c.Logging.Level = value
	case KeyLoggingFormat:
		c.Logging.Format = value
	case KeyLoggingFile:
		c.Logging.File = value
	default:
		id, ok := strings.CutPrefix(key, defaultsPrefix)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownKey, key)
		}
		activity, found := emissions.Default().Lookup(id)
		if !found {
			return fmt.Errorf("%w: %q", emissions.ErrUnknownActivity, id)
		}
		if c.Defaults == nil {
			c.Defaults = map[string]string{}
		}
		if value == "" {
			delete(c.Defaults, activity.ID)
			return nil
		}
		c.Defaults[activity.ID] = value
	}
	return nil
}
