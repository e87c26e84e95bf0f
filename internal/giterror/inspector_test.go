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

package giterror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"testing"
)

func TestGitHubErrorInspector_IsAuthError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "401 unauthorized",
			err:  errors.New("401 Unauthorized"),
			want: true,
		},
		{
			name: "bad credentials",
			err:  errors.New("Bad credentials"),
			want: true,
		},
		{
			name: "wrapped auth error",
			err:  fmt.Errorf("failed to list repositories: %w", errors.New("401 Unauthorized")),
			want: true,
		},
		{
			name: "not an auth error",
			err:  errors.New("something went wrong"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsAuthError(tt.err); got != tt.want {
				t.Errorf("IsAuthError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGitHubErrorInspector_IsNotFoundError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"404 not found", errors.New("404 Not Found"), true},
		{"message not found", errors.New("Not Found"), true},
		{"server error", errors.New("500 internal server error"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsNotFoundError(tt.err); got != tt.want {
				t.Errorf("IsNotFoundError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGitHubErrorInspector_IsRateLimitError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"api rate limit", errors.New("API rate limit exceeded for 1.2.3.4"), true},
		{"429 status", errors.New("unexpected status 429"), true},
		{"other", errors.New("bad gateway"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsRateLimitError(tt.err); got != tt.want {
				t.Errorf("IsRateLimitError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGitHubErrorInspector_IsNetworkError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"connection refused", errors.New("dial tcp 127.0.0.1:1: connect: connection refused"), true},
		{"no such host", errors.New("lookup api.example.invalid: no such host"), true},
		{"timeout", errors.New("context deadline exceeded (Client.Timeout exceeded while awaiting headers)"), true},
		{"decode error", errors.New("invalid character 'x'"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsNetworkError(tt.err); got != tt.want {
				t.Errorf("IsNetworkError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGitHubErrorInspector_IsDecodeError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"syntax", errors.New("invalid character '<' looking for beginning of value"), true},
		{"truncated", errors.New("unexpected end of JSON input"), true},
		{"type mismatch", errors.New("json: cannot unmarshal object into Go value of type []github.Repository"), true},
		{"network", errors.New("connection reset by peer"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsDecodeError(tt.err); got != tt.want {
				t.Errorf("IsDecodeError() = %v, want %v", got, tt.want)
			}
		})
	}
}

type statusErr struct {
	auth, notFound, rateLimit bool
}

func (e statusErr) Error() string { return "status error 404 unauthorized rate limit" }
func (e statusErr) IsAuthError() bool { return e.auth }
func (e statusErr) IsNotFoundError() bool { return e.notFound }
func (e statusErr) IsRateLimitError() bool { return e.rateLimit }

func TestErrorChainInspector(t *testing.T) {
	inspector := Default()

	// Typed errors win over the message text, which mentions every category.
	notFound := fmt.Errorf("page 1: %w", statusErr{notFound: true})
	if !inspector.IsNotFoundError(notFound) {
		t.Error("expected typed not found error to be detected")
	}
	if inspector.IsAuthError(notFound) {
		t.Error("typed not found error must not be classified as auth")
	}
	if inspector.IsRateLimitError(notFound) {
		t.Error("typed not found error must not be classified as rate limit")
	}

	rateLimited := statusErr{rateLimit: true}
	if !inspector.IsRateLimitError(rateLimited) {
		t.Error("expected typed rate limit error to be detected")
	}

	// Untyped errors fall back to message matching.
	if !inspector.IsAuthError(errors.New("Bad credentials")) {
		t.Error("expected fallback auth detection")
	}

	netErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("boom")}
	if !inspector.IsNetworkError(fmt.Errorf("request failed: %w", netErr)) {
		t.Error("expected net.Error in chain to be a network error")
	}

	// Transport errors carry the request URL, whose port may look like a status code.
	portErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("127.0.0.1:42901 (401) refused")}
	if inspector.IsRateLimitError(portErr) || inspector.IsAuthError(portErr) {
		t.Error("transport error must not be classified by status code text")
	}

	var payload []string
	decodeErr := json.Unmarshal([]byte("{not json"), &payload)
	if !inspector.IsDecodeError(fmt.Errorf("decode: %w", decodeErr)) {
		t.Error("expected json syntax error to be a decode error")
	}

	typeErr := json.Unmarshal([]byte(`{"message":"x"}`), &payload)
	if !inspector.IsDecodeError(typeErr) {
		t.Error("expected json type error to be a decode error")
	}
}
