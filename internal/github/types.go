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

// Repository is the subset of the REST repository object appscout reads.
type Repository struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	CloneURL string `json:"clone_url"`
	SSHURL   string `json:"ssh_url,omitempty"`
	HTMLURL  string `json:"html_url,omitempty"`
	Archived bool   `json:"archived"`
	Disabled bool   `json:"disabled"`
	Fork     bool   `json:"fork"`
}

// RepositoryPage is a single page of an organization listing.
type RepositoryPage struct {
	Page         int
	Repositories []Repository
}

// ListOptions selects the page to fetch.
type ListOptions struct {
	// Page is the 1-based page index. Values below 1 request the first page.
	Page int

	// PerPage controls how many repositories are returned per page.
	// Defaults to 100, which is also the maximum accepted by GitHub.
	PerPage int
}

const (
	defaultPerPage = 100
	maxPerPage     = 100
)

func (o ListOptions) normalized() ListOptions {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.PerPage <= 0 || o.PerPage > maxPerPage {
		o.PerPage = defaultPerPage
	}
	return o
}
