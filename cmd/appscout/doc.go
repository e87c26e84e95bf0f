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

// Package main implements the appscout command-line interface.
// appscout lists the repositories of a GitHub organization, merges them with
// an explicit list of app URLs or names, drops duplicates and prints the
// result as one space-separated line for a batch installer.
//
// The CLI supports:
//   - Enumerating an organization's active, non-fork repositories (--org)
//   - Merging explicit URLs or bare app names (--apps)
//   - GitHub token authentication via flag or GITHUB_TOKEN / GH_TOKEN
//   - Line or ndjson output to stdout or a file
//
// Usage:
//
//	appscout [--org <org>] [--apps "<url-or-name> ..."] [flags]
//
// Example:
//
//	export GITHUB_TOKEN=your_token
//	appscout --org frappe --apps "erpnext https://github.com/acme/custom.git" | xargs -n1 bench get-app
//
// Exit codes:
//   - 0: Discovery ran, even if the organization listing failed part way
//   - 1: Invalid flags or the result could not be written
package main
