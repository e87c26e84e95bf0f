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

// Package testutil provides common test helpers for appscout
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// MockServer provides common mock server configurations for testing
type MockServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*http.Request
}

// Requests returns the requests received so far.
func (m *MockServer) Requests() []*http.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*http.Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// RequestCount returns the number of requests received so far.
func (m *MockServer) RequestCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

func (m *MockServer) record(r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, r.Clone(r.Context()))
}

// NewMockServer creates a mock server around handler that records every request
func NewMockServer(t *testing.T, handler http.HandlerFunc) *MockServer {
	t.Helper()
	m := &MockServer{}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.record(r)
		handler(w, r)
	}))
	t.Cleanup(m.Close)
	return m
}

// OrgServerOptions configures NewOrgServer
type OrgServerOptions struct {
	// FailOnPage answers the given page with FailStatus (default 500).
	FailOnPage int
	FailStatus int

	// MalformedOnPage answers the given page with invalid JSON.
	MalformedOnPage int
}

// NewOrgServer serves repos for org under /orgs/{org}/repos, honoring the
// page and per_page query parameters like the GitHub REST API. Unknown
// organizations get a 404.
func NewOrgServer(t *testing.T, org string, repos []map[string]interface{}, opts OrgServerOptions) *MockServer {
	t.Helper()

	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orgs/"+org+"/repos" {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
			return
		}

		page := queryInt(r, "page", 1)
		perPage := queryInt(r, "per_page", 30)

		if opts.FailOnPage > 0 && page == opts.FailOnPage {
			status := opts.FailStatus
			if status == 0 {
				status = http.StatusInternalServerError
			}
			writeJSON(w, status, map[string]string{"message": http.StatusText(status)})
			return
		}
		if opts.MalformedOnPage > 0 && page == opts.MalformedOnPage {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"name": "broken",`))
			return
		}

		writeJSON(w, http.StatusOK, PageOf(repos, page, perPage))
	})
}

// NewRateLimitServer creates a mock server that answers every request with
// the anonymous rate limit response.
func NewRateLimitServer(t *testing.T) *MockServer {
	t.Helper()
	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "0")
		writeJSON(w, http.StatusForbidden, map[string]string{
			"message": "API rate limit exceeded for 127.0.0.1.",
		})
	})
}

// NewErrorServer creates a mock server that always returns the specified error
func NewErrorServer(t *testing.T, statusCode int) *MockServer {
	t.Helper()
	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(http.StatusText(statusCode)))
	})
}

// PageOf returns the 1-based page of repos for the given page size.
func PageOf(repos []map[string]interface{}, page, perPage int) []map[string]interface{} {
	if page < 1 || perPage < 1 {
		return []map[string]interface{}{}
	}
	start := (page - 1) * perPage
	if start >= len(repos) {
		return []map[string]interface{}{}
	}
	end := start + perPage
	if end > len(repos) {
		end = len(repos)
	}
	return repos[start:end]
}

// AssertRESTRequest validates a repository listing request
func AssertRESTRequest(t *testing.T, r *http.Request, org string) {
	t.Helper()
	if r.Method != http.MethodGet {
		t.Errorf("Expected GET method, got: %s", r.Method)
	}
	if r.URL.Path != "/orgs/"+org+"/repos" {
		t.Errorf("Unexpected path: %s", r.URL.Path)
	}
	if accept := r.Header.Get("Accept"); accept != "application/vnd.github+json" {
		t.Errorf("Expected Accept: application/vnd.github+json, got: %s", accept)
	}
	if ua := r.Header.Get("User-Agent"); !strings.HasPrefix(ua, "appscout/") {
		t.Errorf("Expected appscout User-Agent, got: %s", ua)
	}
}

func queryInt(r *http.Request, name string, fallback int) int {
	if v, err := strconv.Atoi(r.URL.Query().Get(name)); err == nil {
		return v
	}
	return fallback
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
