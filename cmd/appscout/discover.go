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
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirseerhq/appscout/internal/appset"
	"github.com/sirseerhq/appscout/internal/config"
	"github.com/sirseerhq/appscout/internal/discover"
	"github.com/sirseerhq/appscout/internal/github"
	"github.com/sirseerhq/appscout/internal/logging"
	"github.com/sirseerhq/appscout/internal/metadata"
	"github.com/sirseerhq/appscout/internal/output"
	"github.com/sirseerhq/appscout/pkg/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// options holds the parsed command-line flags.
type options struct {
	org          string
	apps         string
	token        string
	configPath   string
	outputFile   string
	format       string
	logLevel     string
	metadataFile string

	// newClient builds the API client; tests replace it.
	newClient func(token, endpoint string) github.Client
}

func newOptions() *options {
	return &options{
		format: output.FormatLine,
		newClient: func(token, endpoint string) github.Client {
			return github.NewRESTClient(token, endpoint)
		},
	}
}

func addFlags(fs *pflag.FlagSet, opts *options) {
	fs.StringVar(&opts.org, "org", "", "GitHub organization to scan")
	fs.StringVar(&opts.apps, "apps", "", "Space-separated list of Git URLs or app names")
	fs.StringVar(&opts.token, "token", "", "GitHub personal access token (overrides GITHUB_TOKEN and GH_TOKEN)")
	fs.StringVar(&opts.configPath, "config", "", "Path to config file (default: .appscout.yaml or ~/.appscout/config.yaml)")
	fs.StringVar(&opts.outputFile, "output", "", "Output file path (default: stdout)")
	fs.StringVar(&opts.format, "format", opts.format, "Output format: line or ndjson")
	fs.StringVar(&opts.logLevel, "log-level", "", "Diagnostic log level (overrides config)")
	fs.StringVar(&opts.metadataFile, "metadata", "", "Write a JSON record of the run to this file")
}

// runDiscover executes a discovery run. Organization listing failures are
// logged and leave a partial result; only invalid flags and output failures
// are returned as errors.
func runDiscover(ctx context.Context, opts *options, stdout, stderr io.Writer) error {
	cfg, cfgErr := loadConfig(opts.configPath)
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}

	logger, err := logging.NewLogger(cfg.Log, stderr)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	if cfgErr != nil {
		logger.WithError(cfgErr).Warn("Ignoring configuration, using built-in defaults")
	}

	writer, err := newWriter(opts, stdout)
	if err != nil {
		return err
	}

	tracker := metadata.New()
	acc := appset.NewAccumulator()
	params := metadata.RunParams{}
	discoveredCount := 0

	if org := strings.TrimSpace(opts.org); org != "" {
		settings := cfg.ForOrg(org)
		params.Organization = org
		params.PageSize = settings.PageSize
		params.IncludeForks = settings.IncludeForks

		discovered := fetchOrg(ctx, cfg, settings, opts, org, tracker, logger)
		discoveredCount = len(discovered)
		kept := acc.AddAll(discovered)
		logger.WithFields(logrus.Fields{
			"org":        org,
			"discovered": len(discovered),
			"kept":       kept,
		}).Info("Discovered organization repositories")
	}

	apps := appset.SplitApps(opts.apps)
	params.AppsGiven = len(apps)
	if kept := acc.AddAll(apps); len(apps) > 0 {
		logger.WithFields(logrus.Fields{
			"given": len(apps),
			"kept":  kept,
		}).Debug("Merged explicit apps")
	}

	writeErr := writer.Write(acc.Items())
	closeErr := writer.Close()
	if writeErr != nil {
		return fmt.Errorf("failed to write output: %w", writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close output: %w", closeErr)
	}

	if opts.metadataFile != "" {
		md := tracker.Generate(version.Version, params, discoveredCount, acc.Len())
		if err := metadata.Save(md, opts.metadataFile); err != nil {
			return fmt.Errorf("failed to save run metadata: %w", err)
		}
	}

	return nil
}

func fetchOrg(ctx context.Context, cfg *config.Config, settings config.DiscoveryConfig, opts *options, org string, tracker *metadata.Tracker, logger logrus.FieldLogger) []string {
	client := &trackingClient{
		Client:  opts.newClient(cfg.Token(opts.token), cfg.GitHub.APIEndpoint),
		tracker: tracker,
	}

	fetcher := discover.NewFetcher(client,
		discover.WithPageSize(settings.PageSize),
		discover.WithFilter(discover.Filter{IncludeForks: settings.IncludeForks}),
		discover.WithLogger(logger),
	)

	return fetcher.Fetch(ctx, org)
}

// loadConfig returns the effective configuration. A config that cannot be
// loaded or fails validation is reported and replaced by the defaults plus
// environment overrides, so discovery still runs.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadConfig(path)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fallback := config.EnvConfig()
		if fallback.Validate() != nil {
			fallback = config.DefaultConfig()
		}
		return fallback, err
	}
	return cfg, nil
}

// trackingClient counts list calls and their outcome for the run record.
type trackingClient struct {
	github.Client
	tracker *metadata.Tracker
}

func (c *trackingClient) ListOrgRepositories(ctx context.Context, org string, opts github.ListOptions) (*github.RepositoryPage, error) {
	c.tracker.IncrementAPICall()
	page, err := c.Client.ListOrgRepositories(ctx, org, opts)
	if err != nil {
		c.tracker.RecordError(err)
		return nil, err
	}
	c.tracker.RecordPage(len(page.Repositories))
	return page, nil
}

func newWriter(opts *options, stdout io.Writer) (output.OutputWriter, error) {
	if opts.outputFile == "" {
		w, err := output.NewWriter(stdout, opts.format)
		if err != nil {
			return nil, fmt.Errorf("invalid --format: %w", err)
		}
		return w, nil
	}

	w, err := output.NewFileWriter(opts.outputFile, opts.format)
	if err != nil {
		return nil, fmt.Errorf("--output %s: %w", opts.outputFile, err)
	}
	return w, nil
}
