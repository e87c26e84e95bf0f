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

// Package errors defines sentinel errors for consistent error handling across the application.
// Discovery failures are wrapped around these sentinels so callers can classify them with
// errors.Is when logging partial results.
package errors

import "errors"

// Sentinel errors for consistent error handling
var (
	// ErrInvalidToken indicates GitHub authentication failed.
	ErrInvalidToken = errors.New("invalid github token")

	// ErrOrgNotFound indicates the organization does not exist or is not visible to the token.
	ErrOrgNotFound = errors.New("organization not found")

	// ErrNetworkFailure indicates a network connection problem.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrRateLimit indicates GitHub API rate limit has been exceeded.
	ErrRateLimit = errors.New("github rate limit exceeded")

	// ErrMalformedResponse indicates the API answered with a body that could not be decoded.
	ErrMalformedResponse = errors.New("malformed api response")
)
