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

package github

import (
	"context"
	"fmt"

	scouterrors "github.com/sirseerhq/appscout/internal/errors"
)

// MockClient is a mock implementation of the GitHub Client interface for testing.
// Repositories are served in pages of opts.PerPage, mirroring the REST API.
type MockClient struct {
	// Repositories to serve across all pages
	Repositories []Repository

	// Error to return on every call
	Error error

	// FailOnPage makes the given page return FailError (or a network error).
	FailOnPage int
	FailError  error

	// Behavior flags
	ShouldFailAuth     bool
	ShouldFailNotFound bool

	// Track calls for verification
	CallCount      int
	LastOrg        string
	LastOpts       ListOptions
	PagesRequested []int
}

// NewMockClient creates a new mock client with default test data
func NewMockClient() *MockClient {
	return &MockClient{
		Repositories: generateTestRepositories(),
	}
}

// ListOrgRepositories implements the Client interface
func (m *MockClient) ListOrgRepositories(ctx context.Context, org string, opts ListOptions) (*RepositoryPage, error) {
	opts = opts.normalized()

	m.CallCount++
	m.LastOrg = org
	m.LastOpts = opts
	m.PagesRequested = append(m.PagesRequested, opts.Page)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if m.ShouldFailAuth {
		return nil, fmt.Errorf("authentication failed: %w", scouterrors.ErrInvalidToken)
	}

	if m.ShouldFailNotFound || org == "nonexistent" {
		return nil, fmt.Errorf("organization '%s' not found: %w", org, scouterrors.ErrOrgNotFound)
	}

	if m.Error != nil {
		return nil, m.Error
	}

	if m.FailOnPage > 0 && opts.Page == m.FailOnPage {
		if m.FailError != nil {
			return nil, m.FailError
		}
		return nil, fmt.Errorf("connection reset: %w", scouterrors.ErrNetworkFailure)
	}

	start := (opts.Page - 1) * opts.PerPage
	if start >= len(m.Repositories) {
		return &RepositoryPage{Page: opts.Page, Repositories: []Repository{}}, nil
	}
	end := start + opts.PerPage
	if end > len(m.Repositories) {
		end = len(m.Repositories)
	}

	return &RepositoryPage{
		Page:         opts.Page,
		Repositories: m.Repositories[start:end],
	}, nil
}

// generateTestRepositories creates a small organization listing for testing
func generateTestRepositories() []Repository {
	return []Repository{
		{Name: "frappe", FullName: "acme/frappe", CloneURL: "https://github.com/acme/frappe.git"},
		{Name: "erpnext", FullName: "acme/erpnext", CloneURL: "https://github.com/acme/erpnext.git"},
		{Name: "legacy", FullName: "acme/legacy", CloneURL: "https://github.com/acme/legacy.git", Archived: true},
		{Name: "hrms-fork", FullName: "acme/hrms-fork", CloneURL: "https://github.com/acme/hrms-fork.git", Fork: true},
		{Name: "payments", FullName: "acme/payments", CloneURL: "https://github.com/acme/payments.git"},
	}
}

// MockClientOption allows configuring the mock client
type MockClientOption func(*MockClient)

// WithRepositories sets the repositories to serve
func WithRepositories(repos []Repository) MockClientOption {
	return func(m *MockClient) {
		m.Repositories = repos
	}
}

// WithError makes the client return a specific error
func WithError(err error) MockClientOption {
	return func(m *MockClient) {
		m.Error = err
	}
}

// WithFailureOnPage makes one page fail with err. A nil err yields a network failure.
func WithFailureOnPage(page int, err error) MockClientOption {
	return func(m *MockClient) {
		m.FailOnPage = page
		m.FailError = err
	}
}

// WithAuthFailure makes the client simulate authentication failure
func WithAuthFailure() MockClientOption {
	return func(m *MockClient) {
		m.ShouldFailAuth = true
	}
}

// NewMockClientWithOptions creates a mock client with options
func NewMockClientWithOptions(opts ...MockClientOption) *MockClient {
	mock := NewMockClient()
	for _, opt := range opts {
		opt(mock)
	}
	return mock
}
