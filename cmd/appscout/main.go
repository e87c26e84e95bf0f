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

package main

import (
	"fmt"
	"os"

	"github.com/sirseerhq/appscout/pkg/version"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand(newOptions()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "appscout",
		Short: "Discover and deduplicate app repository URLs",
		Long: `appscout lists the repositories of a GitHub organization, merges them
with an explicit list of app URLs or names and prints one deduplicated,
space-separated line suitable for piping into a batch installer.

Archived, disabled and forked repositories are skipped. The first spelling
of every repository wins; later duplicates are dropped silently.

Authentication is optional and raises the API rate limit:
  - Use --token flag to provide token directly
  - Or set GITHUB_TOKEN (or GH_TOKEN) environment variable`,
		Args:          cobra.NoArgs,
		Version:       version.Version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiscover(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	addFlags(rootCmd.Flags(), opts)

	return rootCmd
}
