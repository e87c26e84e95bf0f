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

// Package config types define the configuration structures used throughout
// appscout. These types represent settings that can be loaded from YAML
// configuration files, environment variables, or command-line flags.
package config

// Config represents the complete configuration for appscout.
type Config struct {
	GitHub        GitHubConfig         `yaml:"github"`
	Discovery     DiscoveryConfig      `yaml:"discovery"`
	Organizations map[string]OrgConfig `yaml:"organizations"`
	Log           LogConfig            `yaml:"log"`
}

// GitHubConfig contains GitHub-specific settings. Pointing APIEndpoint at a
// GitHub Enterprise /api/v3 root lets appscout scan enterprise organizations.
type GitHubConfig struct {
	APIEndpoint string `yaml:"api_endpoint"`

	// TokenEnv lists the environment variables consulted for a token,
	// highest priority first.
	TokenEnv []string `yaml:"token_env"`
}

// DiscoveryConfig controls how organization listings are walked and filtered.
type DiscoveryConfig struct {
	PageSize     int  `yaml:"page_size"`
	IncludeForks bool `yaml:"include_forks"`
}

// OrgConfig holds per-organization overrides.
type OrgConfig struct {
	PageSize     int   `yaml:"page_size"`
	IncludeForks *bool `yaml:"include_forks"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns a Config suitable for public GitHub.com usage.
func DefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			APIEndpoint: "https://api.github.com",
			TokenEnv:    []string{"GITHUB_TOKEN", "GH_TOKEN"},
		},
		Discovery: DiscoveryConfig{
			PageSize:     100,
			IncludeForks: false,
		},
		Organizations: make(map[string]OrgConfig),
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
