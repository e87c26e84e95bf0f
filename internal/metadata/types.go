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

package metadata

import (
	"time"
)

// RunMetadata is the record of one discovery run: what was asked for, what
// the API returned and what was printed.
type RunMetadata struct {
	Version    string     `json:"appscout_version"`
	RunID      string     `json:"run_id"`
	Parameters RunParams  `json:"parameters"`
	Results    RunResults `json:"results"`
}

// RunParams captures the inputs of a run after config resolution.
type RunParams struct {
	Organization string `json:"organization,omitempty"`
	PageSize     int    `json:"page_size"`
	IncludeForks bool   `json:"include_forks"`
	AppsGiven    int    `json:"apps_given"`
}

// RunResults holds the counters collected while the run executed.
type RunResults struct {
	APICallCount int       `json:"api_calls_made"`
	PagesFetched int       `json:"pages_fetched"`
	ReposListed  int       `json:"repositories_listed"`
	Discovered   int       `json:"repositories_discovered"`
	Emitted      int       `json:"refs_emitted"`
	Complete     bool      `json:"complete"`
	FetchError   string    `json:"fetch_error,omitempty"`
	Duration     string    `json:"run_duration"`
	StartedAt    time.Time `json:"started_at"`
	CompletedAt  time.Time `json:"completed_at"`
}
