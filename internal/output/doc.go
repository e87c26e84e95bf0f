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

// Package output renders the final list of repository references.
//
// Two formats are supported. The line format writes every reference on a
// single space-separated line, ready for xargs. The ndjson format writes one
// {"ref": "..."} object per line for tools that prefer structured input.
// An empty list produces no output at all in either format.
//
// Example usage:
//
//	w, err := output.NewWriter(os.Stdout, output.FormatLine)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//
//	if err := w.Write(refs); err != nil {
//	    return err
//	}
package output
