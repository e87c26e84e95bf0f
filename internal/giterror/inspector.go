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
	"io"
	"net"
	"strings"
)

// Inspector classifies errors returned while talking to the GitHub REST API.
type Inspector interface {
	// IsAuthError returns true if the error represents an authentication or authorization failure.
	IsAuthError(err error) bool

	// IsNotFoundError returns true if the error represents a resource not found error.
	IsNotFoundError(err error) bool

	// IsRateLimitError returns true if the error represents a rate limit error.
	IsRateLimitError(err error) bool

	// IsNetworkError returns true if the error represents a network connectivity error.
	IsNetworkError(err error) bool

	// IsDecodeError returns true if the response body could not be parsed.
	IsDecodeError(err error) bool
}

// GitHubErrorInspector classifies errors by their message text.
type GitHubErrorInspector struct{}

// NewInspector returns the message-based inspector.
func NewInspector() Inspector {
	return &GitHubErrorInspector{}
}

// IsAuthError implements Inspector.
func (i *GitHubErrorInspector) IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "401") ||
		strings.Contains(errStr, "unauthorized") ||
		strings.Contains(errStr, "bad credentials") ||
		strings.Contains(errStr, "authentication")
}

// IsNotFoundError implements Inspector.
func (i *GitHubErrorInspector) IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "404") ||
		strings.Contains(errStr, "not found")
}

// IsRateLimitError implements Inspector.
func (i *GitHubErrorInspector) IsRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "429")
}

// IsNetworkError implements Inspector.
func (i *GitHubErrorInspector) IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "temporary failure") ||
		strings.Contains(errStr, "dial tcp") ||
		strings.Contains(errStr, "tls handshake") ||
		strings.Contains(errStr, "network is unreachable")
}

// IsDecodeError implements Inspector.
func (i *GitHubErrorInspector) IsDecodeError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "invalid character") ||
		strings.Contains(errStr, "unexpected end of json") ||
		strings.Contains(errStr, "cannot unmarshal")
}

// ErrorChainInspector looks for typed errors in the chain before falling back
// to the base inspector. Errors opt in by implementing methods such as
// IsAuthError() bool, which is how the client's status errors are recognized.
type ErrorChainInspector struct {
	base Inspector
}

// NewErrorChainInspector wraps base with typed error detection.
func NewErrorChainInspector(base Inspector) Inspector {
	return &ErrorChainInspector{base: base}
}

// Default returns the inspector used by the REST client.
func Default() Inspector {
	return NewErrorChainInspector(NewInspector())
}

// IsAuthError implements Inspector.
func (e *ErrorChainInspector) IsAuthError(err error) bool {
	var authErr interface{ IsAuthError() bool }
	if errors.As(err, &authErr) {
		return authErr.IsAuthError()
	}
	if isTransportError(err) {
		return false
	}
	return e.base.IsAuthError(err)
}

// IsNotFoundError implements Inspector.
func (e *ErrorChainInspector) IsNotFoundError(err error) bool {
	var notFoundErr interface{ IsNotFoundError() bool }
	if errors.As(err, &notFoundErr) {
		return notFoundErr.IsNotFoundError()
	}
	if isTransportError(err) {
		return false
	}
	return e.base.IsNotFoundError(err)
}

// IsRateLimitError implements Inspector.
func (e *ErrorChainInspector) IsRateLimitError(err error) bool {
	var rateLimitErr interface{ IsRateLimitError() bool }
	if errors.As(err, &rateLimitErr) {
		return rateLimitErr.IsRateLimitError()
	}
	if isTransportError(err) {
		return false
	}
	return e.base.IsRateLimitError(err)
}

// IsNetworkError implements Inspector.
func (e *ErrorChainInspector) IsNetworkError(err error) bool {
	if isTransportError(err) {
		return true
	}
	return e.base.IsNetworkError(err)
}

// IsDecodeError implements Inspector.
func (e *ErrorChainInspector) IsDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	return e.base.IsDecodeError(err)
}

// isTransportError reports whether the request never produced an HTTP response.
// Such errors embed the request URL, so their text must not be matched against
// status codes.
func isTransportError(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr)
}
