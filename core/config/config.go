// Package config loads the application configuration from a YAML file with
// environment-variable fallback for API keys.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/adalundhe/boardroom/core/roles"
)

// Config is the full application configuration.
type Config struct {
	Providers ProvidersConfig `yaml:"providers"`
	Retry     RetryConfig     `yaml:"retry"`
	Panel     PanelConfig     `yaml:"panel"`
	Store     StoreConfig     `yaml:"store"`
}

// ProvidersConfig holds per-backend credentials and defaults.
type ProvidersConfig struct {
	Anthropic ProviderConfig `yaml:"anthropic"`
	OpenAI    ProviderConfig `yaml:"openai"`
}

// ProviderConfig is one backend's settings.
type ProviderConfig struct {
	APIKey    string  `yaml:"api_key"`
	Model     string  `yaml:"model"`
	MaxTokens int     `yaml:"max_tokens"`
	BaseURL   string  `yaml:"base_url"`
	Timeout   timeout `yaml:"timeout"`
}

// RetryConfig mirrors the caller's retry constraints.
type RetryConfig struct {
	MaxRetries int     `yaml:"max_retries"`
	BaseDelay  timeout `yaml:"base_delay"`
}

// PanelConfig selects seats and models for a run.
type PanelConfig struct {
	// Roles is the ordered list of enabled seats.
	Roles []string `yaml:"roles"`
	// Model is the default model for every seat.
	Model string `yaml:"model"`
	// Models overrides the model per seat name.
	Models map[string]string `yaml:"models"`
	// MaxTokens bounds each response.
	MaxTokens int `yaml:"max_tokens"`
	// Timeout caps a whole run. Zero disables the deadline.
	Timeout timeout `yaml:"timeout"`
}

// StoreConfig locates the result database.
type StoreConfig struct {
	Path      string `yaml:"path"`
	CacheSize int    `yaml:"cache_size"`
}

// timeout wraps time.Duration with YAML string parsing ("30s", "5m").
type timeout time.Duration

func (t *timeout) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*t = timeout(d)
	return nil
}

// Duration converts the parsed value.
func (t timeout) Duration() time.Duration {
	return time.Duration(t)
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Retry: RetryConfig{
			MaxRetries: 3,
			BaseDelay:  timeout(2 * time.Second),
		},
		Panel: PanelConfig{
			Model:     "claude-sonnet-4-5-20250901",
			MaxTokens: 4096,
		},
		Store: StoreConfig{
			Path: "boardroom.db",
		},
	}
}

// Load reads the config file at path, layering it over defaults. A missing
// file yields the defaults. API keys absent from the file fall back to the
// ANTHROPIC_API_KEY and OPENAI_API_KEY environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// fall through to env resolution
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	if cfg.Providers.Anthropic.APIKey == "" {
		cfg.Providers.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if cfg.Providers.OpenAI.APIKey == "" {
		cfg.Providers.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	return cfg, cfg.Validate()
}

// Validate checks the parts of the config that are always required.
func (c *Config) Validate() error {
	if c.Panel.Model == "" {
		return fmt.Errorf("panel.model is required")
	}
	for _, name := range c.Panel.Roles {
		if _, err := roles.Parse(name); err != nil {
			return fmt.Errorf("panel.roles: %w", err)
		}
	}
	for name := range c.Panel.Models {
		if _, err := roles.Parse(name); err != nil {
			return fmt.Errorf("panel.models: %w", err)
		}
	}
	return nil
}

// PanelRoles converts the configured role names, defaulting to the full
// panel when none are listed.
func (c *Config) PanelRoles() []roles.Role {
	if len(c.Panel.Roles) == 0 {
		return roles.DefaultOrder()
	}
	out := make([]roles.Role, 0, len(c.Panel.Roles))
	for _, name := range c.Panel.Roles {
		out = append(out, roles.Role(name))
	}
	return out
}

// PanelModels converts the per-seat model overrides.
func (c *Config) PanelModels() map[roles.Role]string {
	if len(c.Panel.Models) == 0 {
		return nil
	}
	out := make(map[roles.Role]string, len(c.Panel.Models))
	for name, model := range c.Panel.Models {
		out[roles.Role(name)] = model
	}
	return out
}
