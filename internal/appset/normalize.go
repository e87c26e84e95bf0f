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

package appset

import "strings"

// knownHosts are host fragments that mark a reference as URL-like even without a scheme.
var knownHosts = []string{"github.com", "gitlab.com"}

// urlPrefixes are the scheme prefixes that mark a reference as URL-like.
var urlPrefixes = []string{"http://", "https://", "git@"}

// IsURLLike reports whether ref names a repository location rather than a
// bare app name. Hosts and schemes match in any case.
func IsURLLike(ref string) bool {
	ref = strings.ToLower(ref)
	for _, host := range knownHosts {
		if strings.Contains(ref, host) {
			return true
		}
	}
	for _, prefix := range urlPrefixes {
		if strings.HasPrefix(ref, prefix) {
			return true
		}
	}
	return false
}

// NormalizeURL returns the comparison key of a URL-like reference.
func NormalizeURL(ref string) string {
	key := strings.ToLower(strings.TrimSpace(ref))
	key = strings.TrimSuffix(key, "/")
	return strings.TrimSuffix(key, ".git")
}

// NormalizeName returns the comparison key of a bare app name.
func NormalizeName(ref string) string {
	return strings.ToLower(strings.TrimSpace(ref))
}

// Key returns the comparison key for ref, picking the rule from its classification.
func Key(ref string) string {
	if IsURLLike(ref) {
		return NormalizeURL(ref)
	}
	return NormalizeName(ref)
}
