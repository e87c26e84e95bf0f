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

// Accumulator collects references in first-seen order. It is not safe for
// concurrent use; one accumulator belongs to one discovery run.
type Accumulator struct {
	seen  map[string]struct{}
	items []string
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		seen: make(map[string]struct{}),
	}
}

// Add records item unless it is blank or its key was already seen.
// It reports whether item was kept.
func (a *Accumulator) Add(item string) bool {
	if strings.TrimSpace(item) == "" {
		return false
	}

	key := Key(item)
	if key == "" {
		return false
	}
	if _, ok := a.seen[key]; ok {
		return false
	}

	a.seen[key] = struct{}{}
	a.items = append(a.items, item)
	return true
}

// AddAll adds every item in order and returns how many were kept.
func (a *Accumulator) AddAll(items []string) int {
	kept := 0
	for _, item := range items {
		if a.Add(item) {
			kept++
		}
	}
	return kept
}

// Items returns the kept references in first-seen order.
func (a *Accumulator) Items() []string {
	out := make([]string, len(a.items))
	copy(out, a.items)
	return out
}

// Len returns the number of kept references.
func (a *Accumulator) Len() int {
	return len(a.items)
}

// SplitApps splits a raw --apps value on whitespace.
func SplitApps(raw string) []string {
	return strings.Fields(raw)
}
