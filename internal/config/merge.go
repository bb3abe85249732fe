package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML keys.
const (
	keyVersion  = "version"
	keyOutput   = "output"
	keyLogging  = "logging"
	keyDefaults = "defaults"
)

// knownTopLevelKeys lists the YAML keys that map onto Config fields.
// Other keys are ignored during merge.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var knownTopLevelKeys = map[string]bool{
	keyVersion:  true,
	keyOutput:   true,
	keyLogging:  true,
	keyDefaults: true,
}

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto
// target. A key present in the file replaces the whole section; absent keys
// leave target unchanged. Fields missing inside a section keep their
// defaults.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	for key, node := range overlay {
		if !knownTopLevelKeys[key] {
			continue
		}
		if err = unmarshalSection(target, key, &node); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}
	return nil
}

// unmarshalSection decodes one section onto target. Output and logging
// start from the built-in defaults so a partial section only overrides the
// fields it names; defaults replace the whole map.
func unmarshalSection(target *Config, key string, node *yaml.Node) error {
	defaults := New()
	switch key {
	case keyVersion:
		var v string
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Version = v
	case keyOutput:
		v := defaults.Output
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Output = v
	case keyLogging:
		v := defaults.Logging
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Logging = v
	case keyDefaults:
		v := map[string]string{}
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Defaults = v
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}
