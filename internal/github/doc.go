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

// Package github provides a client for listing the repositories of a GitHub
// organization through the REST API. It hides paging parameters, authentication
// and error classification behind a small interface.
//
// The package includes:
//   - A Client interface for fetching one page of organization repositories
//   - A REST implementation built on net/http
//   - Mock client for testing
//   - Type definitions for the repository fields appscout consumes
//
// Basic usage:
//
//	client := github.NewRESTClient(os.Getenv("GITHUB_TOKEN"), "https://api.github.com")
//	page, err := client.ListOrgRepositories(ctx, "frappe", github.ListOptions{
//	    Page:    1,
//	    PerPage: 100,
//	})
//	if err != nil {
//	    // Handle error
//	}
//	for _, repo := range page.Repositories {
//	    // Process repository
//	}
package github
