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

// Package metadata records what happened during a discovery run: how many
// list calls were made, how many repositories the API returned, whether the
// listing stopped early and how many references were finally printed.
//
// The record is written as an indented JSON file when --metadata is given,
// so scheduled jobs can tell a partial organization listing from a complete
// one without parsing log output.
package metadata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Tracker collects statistics during a run. Create one per run; it is not
// safe for concurrent use.
type Tracker struct {
	startTime    time.Time
	apiCallCount int
	pagesFetched int
	reposListed  int
	fetchErr     error
}

// New creates a new tracker started at the current time.
func New() *Tracker {
	return &Tracker{
		startTime: time.Now(),
	}
}

// IncrementAPICall records that a list request was sent.
func (t *Tracker) IncrementAPICall() {
	t.apiCallCount++
}

// RecordPage records a successfully decoded page with n repositories.
func (t *Tracker) RecordPage(n int) {
	t.pagesFetched++
	t.reposListed += n
}

// RecordError records the error that ended the listing. Only the first one
// is kept.
func (t *Tracker) RecordError(err error) {
	if t.fetchErr == nil {
		t.fetchErr = err
	}
}

// Generate builds the run record. discovered is the number of clone URLs
// that survived filtering and emitted the number of references printed.
func (t *Tracker) Generate(version string, params RunParams, discovered, emitted int) *RunMetadata {
	completedAt := time.Now()

	results := RunResults{
		APICallCount: t.apiCallCount,
		PagesFetched: t.pagesFetched,
		ReposListed:  t.reposListed,
		Discovered:   discovered,
		Emitted:      emitted,
		Complete:     t.fetchErr == nil,
		Duration:     completedAt.Sub(t.startTime).String(),
		StartedAt:    t.startTime,
		CompletedAt:  completedAt,
	}
	if t.fetchErr != nil {
		results.FetchError = t.fetchErr.Error()
	}

	return &RunMetadata{
		Version:    version,
		RunID:      fmt.Sprintf("run-%d", t.startTime.Unix()),
		Parameters: params,
		Results:    results,
	}
}

// Save writes md to path as indented JSON. The file is written to a
// temporary name first and renamed into place.
func Save(md *RunMetadata, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create metadata directory: %w", err)
		}
	}

	tmpFile := path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return fmt.Errorf("failed to create metadata file: %w", err)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(md); err != nil {
		_ = file.Close()
		_ = os.Remove(tmpFile)
		return fmt.Errorf("failed to write metadata: %w", err)
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("failed to close metadata file: %w", err)
	}

	if err := os.Rename(tmpFile, path); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("failed to save metadata file: %w", err)
	}

	return nil
}

// Load reads a run record written by Save.
func Load(path string) (*RunMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata file: %w", err)
	}

	var md RunMetadata
	if err := json.Unmarshal(data, &md); err != nil {
		return nil, fmt.Errorf("failed to parse metadata: %w", err)
	}
	return &md, nil
}
