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
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	scouterrors "github.com/sirseerhq/appscout/internal/errors"
	"github.com/sirseerhq/appscout/internal/giterror"
	"github.com/sirseerhq/appscout/pkg/version"
)

// maxResponseSize caps a single page body (10MB).
const maxResponseSize = 10 * 1024 * 1024

// RESTClient implements the Client interface against the GitHub REST API.
type RESTClient struct {
	httpClient *http.Client
	baseURL    string
	inspector  giterror.Inspector
}

// NewRESTClient creates a new GitHub REST client for the given API endpoint
// (for example https://api.github.com, or a GitHub Enterprise /api/v3 root).
// An empty token sends unauthenticated requests.
func NewRESTClient(token string, endpoint string) *RESTClient {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	return newRESTClient(&http.Client{
		Transport: &authTransport{
			token: token,
			base:  transport,
		},
	}, endpoint)
}

func newRESTClient(httpClient *http.Client, endpoint string) *RESTClient {
	return &RESTClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(endpoint, "/"),
		inspector:  giterror.Default(),
	}
}

// ListOrgRepositories fetches one page of GET /orgs/{org}/repos.
func (c *RESTClient) ListOrgRepositories(ctx context.Context, org string, opts ListOptions) (*RepositoryPage, error) {
	opts = opts.normalized()

	endpoint, err := c.orgReposURL(org, opts)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for organization '%s': %w", org, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.mapError(err, org)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.mapError(newAPIError(resp), org)
	}

	var repos []Repository
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, c.mapError(err, org)
	}

	return &RepositoryPage{
		Page:         opts.Page,
		Repositories: repos,
	}, nil
}

func (c *RESTClient) orgReposURL(org string, opts ListOptions) (string, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid API endpoint %q: %w", c.baseURL, err)
	}

	u := base.JoinPath("orgs", org, "repos")
	q := u.Query()
	q.Set("page", strconv.Itoa(opts.Page))
	q.Set("per_page", strconv.Itoa(opts.PerPage))
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// mapError maps transport and API errors to our domain errors with actionable messages
func (c *RESTClient) mapError(err error, org string) error {
	if err == nil {
		return nil
	}

	// Check rate limit first, as 403 can be both auth and rate limit
	if c.inspector.IsRateLimitError(err) {
		return fmt.Errorf("GitHub API rate limit exceeded. Set GITHUB_TOKEN to raise the limit (%v): %w", err, scouterrors.ErrRateLimit)
	}

	if c.inspector.IsAuthError(err) {
		return fmt.Errorf("GitHub API authentication failed. Check the token in --token, GITHUB_TOKEN or GH_TOKEN (%v): %w", err, scouterrors.ErrInvalidToken)
	}

	if c.inspector.IsNotFoundError(err) {
		return fmt.Errorf("organization '%s' not found. Please check the organization name and your access permissions: %w", org, scouterrors.ErrOrgNotFound)
	}

	if c.inspector.IsDecodeError(err) {
		return fmt.Errorf("failed to decode repository listing (%v): %w", err, scouterrors.ErrMalformedResponse)
	}

	if c.inspector.IsNetworkError(err) {
		return fmt.Errorf("network error connecting to GitHub API (%v): %w", err, scouterrors.ErrNetworkFailure)
	}

	// Generic error
	return fmt.Errorf("failed to list repositories for organization '%s': %w", org, err)
}

// APIError is a non-200 response from the REST API.
type APIError struct {
	StatusCode int
	Message    string

	// RateLimitRemaining is the X-RateLimit-Remaining header, if any.
	RateLimitRemaining string
}

func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{
		StatusCode:         resp.StatusCode,
		RateLimitRemaining: resp.Header.Get("X-RateLimit-Remaining"),
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Message != "" {
		apiErr.Message = payload.Message
	} else {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	return apiErr
}

// Error implements error.
func (e *APIError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Message)
}

// IsRateLimitError reports a primary or secondary rate limit response.
func (e *APIError) IsRateLimitError() bool {
	if e.StatusCode == http.StatusTooManyRequests {
		return true
	}
	return e.StatusCode == http.StatusForbidden &&
		(e.RateLimitRemaining == "0" || strings.Contains(strings.ToLower(e.Message), "rate limit"))
}

// IsAuthError reports a rejected or insufficient token.
func (e *APIError) IsAuthError() bool {
	if e.StatusCode == http.StatusUnauthorized {
		return true
	}
	return e.StatusCode == http.StatusForbidden && !e.IsRateLimitError()
}

// IsNotFoundError reports an unknown organization.
func (e *APIError) IsNotFoundError() bool {
	return e.StatusCode == http.StatusNotFound
}

// limitedReader wraps a ReadCloser with a size limit to prevent excessive memory usage.
type limitedReader struct {
	io.ReadCloser
	limit int64
	read  int64
}

// Read implements io.Reader with size limit enforcement.
func (lr *limitedReader) Read(p []byte) (n int, err error) {
	if lr.read >= lr.limit {
		return 0, fmt.Errorf("response size exceeded limit of %d bytes", lr.limit)
	}

	remaining := lr.limit - lr.read
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err = lr.ReadCloser.Read(p)
	lr.read += int64(n)

	return n, err
}

// authTransport adds authentication, API version headers and a response
// size limit to HTTP requests
type authTransport struct {
	token string
	base  http.RoundTripper
}

// RoundTrip implements http.RoundTripper
func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	req = req.Clone(req.Context())

	if t.token != "" {
		req.Header.Set("Authorization", "Bearer "+t.token)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.Body != nil {
		resp.Body = &limitedReader{
			ReadCloser: resp.Body,
			limit:      maxResponseSize,
		}
	}

	return resp, nil
}
