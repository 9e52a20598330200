// Package config holds the service configuration loaded from a YAML file.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the whatsapp-business-mcp service configuration
type Config struct {
	// BaseURL is the Graph API host
	BaseURL string `yaml:"base_url"`

	// APIVersion is used when a caller omits api_version (e.g. "v16.0").
	// Empty means callers must always supply it.
	APIVersion string `yaml:"api_version"`

	// TokenEnv names the environment variable holding the access token
	TokenEnv string `yaml:"token_env"`

	// DisabledTools lists tool names that are never listed or callable
	DisabledTools []string `yaml:"disabled_tools"`

	// DisabledMethods lists HTTP methods whose tools are disabled
	DisabledMethods []string `yaml:"disabled_methods"`

	// ReadOnly disables every tool that issues a POST or DELETE
	ReadOnly bool `yaml:"read_only"`
}

// DefaultConfig returns the default configuration with every tool enabled
func DefaultConfig() *Config {
	return &Config{
		BaseURL:  "https://graph.facebook.com",
		TokenEnv: "WHATSAPP_BUSINESS_API_KEY",
	}
}

// LoadFile loads configuration from a YAML file. A missing file yields the
// default configuration.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("error opening config file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load loads configuration from an io.Reader
func Load(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading config data: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultConfig().BaseURL
	}
	if cfg.TokenEnv == "" {
		cfg.TokenEnv = DefaultConfig().TokenEnv
	}

	return cfg, nil
}

// IsToolDisabled reports whether the named tool is disabled
func (c *Config) IsToolDisabled(name string) bool {
	for _, disabled := range c.DisabledTools {
		if disabled == name {
			return true
		}
	}
	return false
}

// IsMethodDisabled reports whether tools using the HTTP method are disabled
func (c *Config) IsMethodDisabled(method string) bool {
	method = strings.ToUpper(method)

	if c.ReadOnly && method != "GET" {
		return true
	}
	for _, disabled := range c.DisabledMethods {
		if strings.ToUpper(disabled) == method {
			return true
		}
	}
	return false
}

// Allows reports whether a tool with the given name and method may be
// listed and called
func (c *Config) Allows(name, method string) bool {
	return !c.IsToolDisabled(name) && !c.IsMethodDisabled(method)
}
