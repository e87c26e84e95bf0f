// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration management for appscout with
// support for multiple configuration sources and a well-defined precedence
// order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Organization-specific configuration
//  4. Configuration file
//  5. Built-in defaults
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultPaths returns the configuration files searched when no explicit
// path is given, in order.
func DefaultPaths() []string {
	home := os.Getenv("HOME")
	return []string{
		".appscout.yaml",
		".appscout.yml",
		filepath.Join(home, ".appscout", "config.yaml"),
		filepath.Join(home, ".appscout", "config.yml"),
	}
}

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it loads from
// that specific file. Otherwise, the first existing file from DefaultPaths
// is used.
//
// Returns an error if the specified config file cannot be loaded, but will
// succeed with defaults if no config file is found in standard locations.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		for _, path := range DefaultPaths() {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// EnvConfig returns the built-in defaults with only the environment
// overrides applied.
func EnvConfig() *Config {
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if endpoint := os.Getenv("GITHUB_API_ENDPOINT"); endpoint != "" {
		cfg.GitHub.APIEndpoint = endpoint
	}

	if pageSize := os.Getenv("APPSCOUT_PAGE_SIZE"); pageSize != "" {
		if size, err := parsePositiveInt(pageSize); err == nil {
			cfg.Discovery.PageSize = size
		}
	}
	if includeForks := os.Getenv("APPSCOUT_INCLUDE_FORKS"); includeForks != "" {
		cfg.Discovery.IncludeForks = parseBool(includeForks)
	}

	if level := os.Getenv("APPSCOUT_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
}

// parsePositiveInt parses a string to a positive integer
func parsePositiveInt(s string) (int, error) {
	var i int
	_, err := fmt.Sscanf(s, "%d", &i)
	if err != nil {
		return 0, fmt.Errorf("failed to parse integer from '%s': %w", s, err)
	}
	if i <= 0 {
		return 0, fmt.Errorf("value must be positive, got: %d", i)
	}
	return i, nil
}

// parseBool parses various boolean representations
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "yes" || s == "1" || s == "on"
}

// ForOrg returns the discovery settings for org with any organization
// override applied.
func (c *Config) ForOrg(org string) DiscoveryConfig {
	d := c.Discovery
	if orgConfig, ok := c.Organizations[org]; ok {
		if orgConfig.PageSize > 0 {
			d.PageSize = orgConfig.PageSize
		}
		if orgConfig.IncludeForks != nil {
			d.IncludeForks = *orgConfig.IncludeForks
		}
	}
	return d
}

// Token returns the API token to use. A non-empty flagToken wins; otherwise
// the TokenEnv variables are consulted in order. An empty result means the
// requests go out unauthenticated.
func (c *Config) Token(flagToken string) string {
	if token := strings.TrimSpace(flagToken); token != "" {
		return token
	}
	for _, name := range c.GitHub.TokenEnv {
		if token := strings.TrimSpace(os.Getenv(name)); token != "" {
			return token
		}
	}
	return ""
}

// Validate checks if the configuration contains valid values. It should be
// called after loading configuration to catch invalid settings early.
func (c *Config) Validate() error {
	if c.Discovery.PageSize <= 0 {
		return fmt.Errorf("page size must be positive, got: %d", c.Discovery.PageSize)
	}
	if c.Discovery.PageSize > 100 {
		return fmt.Errorf("page size %d exceeds GitHub API limit of 100", c.Discovery.PageSize)
	}
	for org, orgConfig := range c.Organizations {
		if orgConfig.PageSize < 0 || orgConfig.PageSize > 100 {
			return fmt.Errorf("page size %d for organization %s must be between 1 and 100", orgConfig.PageSize, org)
		}
	}

	if c.GitHub.APIEndpoint == "" {
		return fmt.Errorf("GitHub API endpoint cannot be empty")
	}
	u, err := url.Parse(c.GitHub.APIEndpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("GitHub API endpoint %q must be an absolute http(s) URL", c.GitHub.APIEndpoint)
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log format must be text or json, got: %q", c.Log.Format)
	}

	return nil
}
