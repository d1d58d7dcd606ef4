// Package config loads the tool configuration: funding-body attribution
// rules, copyright override text, and watch-mode tuning. The file is
// optional; a missing file yields the built-in defaults.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/starlink/prologue/internal/copyright"
)

// Config represents the tool configuration.
type Config struct {
	// WriteDefaults emits placeholder text for missing sections.
	WriteDefaults bool `yaml:"write_defaults"`
	// CopyrightOverride replaces the generated copyright attribution.
	CopyrightOverride string `yaml:"copyright_override,omitempty"`
	// FundingBodies overrides the built-in attribution table.
	FundingBodies []FundingBody `yaml:"funding_bodies,omitempty"`
	Watch         WatchConfig   `yaml:"watch"`
}

// FundingBody attributes an inclusive year range to a copyright holder.
type FundingBody struct {
	Label string `yaml:"label"`
	From  int    `yaml:"from,omitempty"`
	To    int    `yaml:"to,omitempty"`
}

// WatchConfig tunes watch mode.
type WatchConfig struct {
	DebounceSeconds int `yaml:"debounce_seconds"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Watch: WatchConfig{DebounceSeconds: 2},
	}
}

// Load reads configuration from the specified file. Environment
// variables referenced in the YAML are expanded; a .env file alongside
// the process is honored when present.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	config := Default()
	if err := yaml.Unmarshal([]byte(expanded), config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Watch.DebounceSeconds <= 0 {
		config.Watch.DebounceSeconds = 2
	}
	for i, body := range config.FundingBodies {
		if body.Label == "" {
			return nil, fmt.Errorf("funding body %d has no label", i)
		}
	}
	return config, nil
}

// LoadOrDefault loads the file when it exists and falls back to the
// defaults when it does not. Any other read or parse failure is still
// an error.
func LoadOrDefault(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(configPath)
}

// Bodies converts the configured funding bodies to the assembler's
// form, falling back to the historical defaults.
func (c *Config) Bodies() []copyright.FundingBody {
	if len(c.FundingBodies) == 0 {
		return copyright.DefaultBodies
	}
	bodies := make([]copyright.FundingBody, len(c.FundingBodies))
	for i, body := range c.FundingBodies {
		bodies[i] = copyright.FundingBody{Label: body.Label, From: body.From, To: body.To}
	}
	return bodies
}
