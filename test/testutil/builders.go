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

package testutil

import "fmt"

// RepositoryBuilder provides a fluent API for creating test repositories
// in the shape returned by GET /orgs/{org}/repos.
type RepositoryBuilder struct {
	org      string
	name     string
	cloneURL string
	archived bool
	disabled bool
	fork     bool
}

// NewRepositoryBuilder creates a repository builder with defaults
func NewRepositoryBuilder(org, name string) *RepositoryBuilder {
	return &RepositoryBuilder{
		org:      org,
		name:     name,
		cloneURL: fmt.Sprintf("https://github.com/%s/%s.git", org, name),
	}
}

// WithCloneURL overrides the clone URL
func (b *RepositoryBuilder) WithCloneURL(url string) *RepositoryBuilder {
	b.cloneURL = url
	return b
}

// Archived marks the repository as archived
func (b *RepositoryBuilder) Archived() *RepositoryBuilder {
	b.archived = true
	return b
}

// Disabled marks the repository as disabled
func (b *RepositoryBuilder) Disabled() *RepositoryBuilder {
	b.disabled = true
	return b
}

// Fork marks the repository as a fork
func (b *RepositoryBuilder) Fork() *RepositoryBuilder {
	b.fork = true
	return b
}

// Build creates the JSON-ready repository object
func (b *RepositoryBuilder) Build() map[string]interface{} {
	return map[string]interface{}{
		"name":      b.name,
		"full_name": b.org + "/" + b.name,
		"clone_url": b.cloneURL,
		"ssh_url":   fmt.Sprintf("git@github.com:%s/%s.git", b.org, b.name),
		"html_url":  fmt.Sprintf("https://github.com/%s/%s", b.org, b.name),
		"archived":  b.archived,
		"disabled":  b.disabled,
		"fork":      b.fork,
	}
}

// GenerateRepositories creates n active repositories named app0..app(n-1)
func GenerateRepositories(org string, n int) []map[string]interface{} {
	repos := make([]map[string]interface{}, 0, n)
	for i := 0; i < n; i++ {
		repos = append(repos, NewRepositoryBuilder(org, fmt.Sprintf("app%d", i)).Build())
	}
	return repos
}
