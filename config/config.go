package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AntoineGaton/dirman/internal/util"
	"gopkg.in/yaml.v3"
)

// CLI verbosity values, mapped onto internal log levels by Merge.
const (
	ErrorVerbose = 1
	WarnVerbose  = 2
	InfoVerbose  = 3
	DebugVerbose = 4
	TraceVerbose = 5
)

// Default configuration constants. See [Config] for field descriptions.
const (
	DefaultColor           = true
	DefaultShowBanner      = true
	DefaultConfirmDeletes  = true
	DefaultListAfterChange = true
	DefaultPromptLabel     = "Enter command"
	DefaultLogLvl          = util.WarnLevel
)

// Config contains runtime configuration values for the directory manager.
type Config struct {
	Color           bool          // Whether to colorize terminal output (Default true)
	ShowBanner      bool          // Whether to print the startup banner (Default true)
	ConfirmDeletes  bool          // Whether destructive deletes prompt for confirmation (Default true)
	ListAfterChange bool          // Whether a full listing follows successful mutations (Default true)
	PromptLabel     string        // Label shown by the interactive command prompt
	LogLvl          util.LogLevel // Internal log level, derived from the verbose override
}

// ConfigOverride uses pointer fields to distinguish between unset and zero
// values when loading partial configuration. See [Config] for field
// descriptions. Verbose is the CLI-facing 1 (error) to 5 (trace) scale.
type ConfigOverride struct {
	Color           *bool   `yaml:"color,omitempty" json:"color,omitempty"`
	ShowBanner      *bool   `yaml:"show_banner,omitempty" json:"show_banner,omitempty"`
	ConfirmDeletes  *bool   `yaml:"confirm_deletes,omitempty" json:"confirm_deletes,omitempty"`
	ListAfterChange *bool   `yaml:"list_after_change,omitempty" json:"list_after_change,omitempty"`
	PromptLabel     *string `yaml:"prompt_label,omitempty" json:"prompt_label,omitempty"`
	Verbose         *int    `yaml:"verbose,omitempty" json:"verbose,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		Color:           DefaultColor,
		ShowBanner:      DefaultShowBanner,
		ConfirmDeletes:  DefaultConfirmDeletes,
		ListAfterChange: DefaultListAfterChange,
		PromptLabel:     DefaultPromptLabel,
		LogLvl:          DefaultLogLvl,
	}
}

// NewConfig creates a Config from defaults merged with override.
// A nil override returns the defaults unchanged.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.Color != nil {
		c.Color = *override.Color
	}
	if override.ShowBanner != nil {
		c.ShowBanner = *override.ShowBanner
	}
	if override.ConfirmDeletes != nil {
		c.ConfirmDeletes = *override.ConfirmDeletes
	}
	if override.ListAfterChange != nil {
		c.ListAfterChange = *override.ListAfterChange
	}
	if override.PromptLabel != nil {
		c.PromptLabel = *override.PromptLabel
	}
	if override.Verbose != nil {
		c.LogLvl = VerboseToLevel(*override.Verbose)
	}
}

// VerboseToLevel converts the CLI 1-5 verbose scale to a log level,
// clamping out-of-range values.
func VerboseToLevel(verbose int) util.LogLevel {
	if verbose < ErrorVerbose {
		verbose = ErrorVerbose
	}
	if verbose > TraceVerbose {
		verbose = TraceVerbose
	}
	levels := [5]util.LogLevel{
		util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel,
	}
	return levels[verbose-1]
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
// This is a convenience function that combines NewDefaultConfig, LoadConfigOverrideFile, and Merge.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Merge(override)
	return cfg, nil
}
