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

// Package appset merges repository references from several sources into a
// duplicate-free list. References are compared by a normalized key while the
// original spelling of the first occurrence is what gets emitted.
//
// A reference is either URL-like (https://github.com/acme/foo.git,
// git@github.com:acme/foo.git) or a bare app name (erpnext). URL-like keys
// ignore case, one trailing slash and a trailing .git suffix. Bare names only
// ignore case and surrounding whitespace.
package appset
