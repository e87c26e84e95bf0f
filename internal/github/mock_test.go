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
	"errors"
	"testing"

	scouterrors "github.com/sirseerhq/appscout/internal/errors"
)

var _ Client = (*MockClient)(nil)
var _ Client = (*RESTClient)(nil)

func TestMockClient_Paging(t *testing.T) {
	mock := NewMockClient()
	ctx := context.Background()

	first, err := mock.ListOrgRepositories(ctx, "acme", ListOptions{Page: 1, PerPage: 2})
	if err != nil {
		t.Fatalf("page 1 error = %v", err)
	}
	if len(first.Repositories) != 2 {
		t.Errorf("page 1 returned %d repositories, want 2", len(first.Repositories))
	}

	last, err := mock.ListOrgRepositories(ctx, "acme", ListOptions{Page: 3, PerPage: 2})
	if err != nil {
		t.Fatalf("page 3 error = %v", err)
	}
	if len(last.Repositories) != 1 {
		t.Errorf("page 3 returned %d repositories, want 1", len(last.Repositories))
	}

	empty, err := mock.ListOrgRepositories(ctx, "acme", ListOptions{Page: 4, PerPage: 2})
	if err != nil {
		t.Fatalf("page 4 error = %v", err)
	}
	if len(empty.Repositories) != 0 {
		t.Errorf("page 4 returned %d repositories, want 0", len(empty.Repositories))
	}

	if mock.CallCount != 3 {
		t.Errorf("CallCount = %d, want 3", mock.CallCount)
	}
	if mock.LastOrg != "acme" {
		t.Errorf("LastOrg = %q, want acme", mock.LastOrg)
	}
}

func TestMockClient_Failures(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		mock     *MockClient
		org      string
		page     int
		sentinel error
	}{
		{
			name:     "auth failure",
			mock:     NewMockClientWithOptions(WithAuthFailure()),
			org:      "acme",
			page:     1,
			sentinel: scouterrors.ErrInvalidToken,
		},
		{
			name:     "nonexistent org",
			mock:     NewMockClient(),
			org:      "nonexistent",
			page:     1,
			sentinel: scouterrors.ErrOrgNotFound,
		},
		{
			name:     "failure on page two",
			mock:     NewMockClientWithOptions(WithFailureOnPage(2, nil)),
			org:      "acme",
			page:     2,
			sentinel: scouterrors.ErrNetworkFailure,
		},
		{
			name:     "configured error",
			mock:     NewMockClientWithOptions(WithError(scouterrors.ErrRateLimit)),
			org:      "acme",
			page:     1,
			sentinel: scouterrors.ErrRateLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.mock.ListOrgRepositories(ctx, tt.org, ListOptions{Page: tt.page})
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("error = %v, want %v", err, tt.sentinel)
			}
		})
	}
}

func TestMockClient_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMockClient().ListOrgRepositories(ctx, "acme", ListOptions{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
