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

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Supported output formats.
const (
	FormatLine   = "line"
	FormatNDJSON = "ndjson"
)

// Record is the ndjson representation of one reference.
type Record struct {
	Ref string `json:"ref"`
}

// Writer renders references to an io.Writer in one of the supported formats.
type Writer struct {
	mu        sync.Mutex
	output    io.Writer
	format    string
	closeFunc func() error
}

// NewWriter creates a Writer for w. An empty format selects FormatLine.
func NewWriter(w io.Writer, format string) (*Writer, error) {
	format, err := parseFormat(format)
	if err != nil {
		return nil, err
	}
	return &Writer{
		output: w,
		format: format,
	}, nil
}

// NewFileWriter creates a Writer that writes to filename, truncating it.
func NewFileWriter(filename, format string) (*Writer, error) {
	format, err := parseFormat(format)
	if err != nil {
		return nil, err
	}

	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &Writer{
		output:    file,
		format:    format,
		closeFunc: file.Close,
	}, nil
}

func parseFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatLine:
		return FormatLine, nil
	case FormatNDJSON:
		return FormatNDJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want %s or %s)", format, FormatLine, FormatNDJSON)
	}
}

// Write implements OutputWriter.
func (w *Writer) Write(refs []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(refs) == 0 {
		return nil
	}

	switch w.format {
	case FormatNDJSON:
		encoder := json.NewEncoder(w.output)
		encoder.SetEscapeHTML(false)
		for _, ref := range refs {
			if err := encoder.Encode(Record{Ref: ref}); err != nil {
				return fmt.Errorf("failed to write record: %w", err)
			}
		}
	default:
		if _, err := fmt.Fprintln(w.output, strings.Join(refs, " ")); err != nil {
			return fmt.Errorf("failed to write references: %w", err)
		}
	}

	return nil
}

// Close implements OutputWriter.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closeFunc != nil {
		return w.closeFunc()
	}
	return nil
}
