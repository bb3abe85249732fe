package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

// GlobalConfig holds the configuration loaded for this process.
var GlobalConfig *Config        //nolint:gochecknoglobals // Singleton pattern for configuration
var globalConfigMu sync.RWMutex //nolint:gochecknoglobals // Protects GlobalConfig and globalConfigInit
var globalConfigInit bool       //nolint:gochecknoglobals // Tracks if global config has been initialized

// LoadGlobalConfig loads the config at path (DefaultPath when empty) into
// GlobalConfig. An explicit path must exist.
func LoadGlobalConfig(path string) (*Config, error) {
	mustExist := path != ""
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg, err := Load(path, mustExist)
	if err != nil {
		return nil, err
	}

	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	GlobalConfig = cfg
	globalConfigInit = true
	return cfg, nil
}

// ResetGlobalConfig drops the loaded configuration so the next
// GetGlobalConfig falls back to defaults and the environment.
func ResetGlobalConfig() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()

	GlobalConfig = nil
	globalConfigInit = false
}

// ResetGlobalConfigForTest resets the global config for testing purposes.
func ResetGlobalConfigForTest() {
	ResetGlobalConfig()
}

// GetGlobalConfig returns the loaded configuration, or defaults overlaid
// with the environment when nothing has been loaded.
func GetGlobalConfig() *Config {
	globalConfigMu.RLock()
	if globalConfigInit {
		cfg := GlobalConfig
		globalConfigMu.RUnlock()
		return cfg
	}
	globalConfigMu.RUnlock()

	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	if !globalConfigInit {
		cfg := New()
		if err := ApplyEnv(cfg); err != nil {
			// Partially applied overrides are dropped.
			cfg = New()
			log.Warn().Err(err).Str("component", "config").Msg("ignoring FOOTPRINT_* environment overrides")
		}
		GlobalConfig = cfg
		globalConfigInit = true
	}
	return GlobalConfig
}

// GetDefaultOutputFormat returns the configured default output format.
func GetDefaultOutputFormat() string {
	return GetGlobalConfig().Output.DefaultFormat
}

// GetDefaults returns a copy of the configured activity defaults.
func GetDefaults() map[string]string {
	src := GetGlobalConfig().Defaults
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// EnsureLogDir creates the parent directory of the configured log file.
// It does nothing when no file is configured.
func EnsureLogDir() error {
	cfg := GetGlobalConfig()
	if cfg.Logging.File == "" {
		return nil
	}
	logDir := filepath.Dir(cfg.Logging.File)
	if err := os.MkdirAll(logDir, 0o700); err != nil {
		return fmt.Errorf("failed to create log directory %q: %w", logDir, err)
	}
	return nil
}
