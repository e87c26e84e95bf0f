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

package discover

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"github.com/sirseerhq/appscout/internal/github"
	"github.com/sirupsen/logrus"
)

// Filter decides which repositories are candidates.
type Filter struct {
	// IncludeForks keeps forked repositories. Archived and disabled
	// repositories are always excluded.
	IncludeForks bool
}

// Include reports whether repo is a candidate.
func (f Filter) Include(repo github.Repository) bool {
	if repo.Archived || repo.Disabled {
		return false
	}
	if repo.Fork && !f.IncludeForks {
		return false
	}
	return repo.CloneURL != ""
}

// Fetcher lists the clone URLs of an organization's candidate repositories.
type Fetcher struct {
	client   github.Client
	pageSize int
	filter   Filter
	logger   logrus.FieldLogger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithPageSize sets the number of repositories requested per page.
func WithPageSize(size int) Option {
	return func(f *Fetcher) {
		f.pageSize = size
	}
}

// WithFilter replaces the default inclusion filter.
func WithFilter(filter Filter) Option {
	return func(f *Fetcher) {
		f.filter = filter
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// NewFetcher creates a Fetcher on top of client.
func NewFetcher(client github.Client, opts ...Option) *Fetcher {
	f := &Fetcher{
		client:   client,
		pageSize: 100,
		logger:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the clone URLs of org's candidate repositories in listing
// order. Pages are requested one after another until a page comes back
// empty. A failed page is logged and ends the walk; whatever was collected
// before it is still returned.
func (f *Fetcher) Fetch(ctx context.Context, org string) []string {
	org = strings.TrimSpace(org)
	if org == "" {
		return nil
	}

	var urls []string
	for page := 1; ; page++ {
		result, err := f.client.ListOrgRepositories(ctx, org, github.ListOptions{
			Page:    page,
			PerPage: f.pageSize,
		})
		if err != nil {
			f.logger.WithFields(logrus.Fields{
				"org":  org,
				"page": page,
			}).WithError(err).Error("failed to fetch organization repositories")
			break
		}
		if len(result.Repositories) == 0 {
			break
		}

		included := lo.Filter(result.Repositories, func(repo github.Repository, _ int) bool {
			return f.filter.Include(repo)
		})
		urls = append(urls, lo.Map(included, func(repo github.Repository, _ int) string {
			return repo.CloneURL
		})...)

		f.logger.WithFields(logrus.Fields{
			"org":      org,
			"page":     page,
			"listed":   len(result.Repositories),
			"included": len(included),
		}).Debug("fetched repository page")
	}

	return urls
}
