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

import "testing"

func TestIsURLLike(t *testing.T) {
	tests := []struct {
		ref  string
		want bool
	}{
		{"https://github.com/frappe/erpnext", true},
		{"http://git.example.com/acme/app.git", true},
		{"git@github.com:frappe/hrms.git", true},
		{"github.com/frappe/erpnext", true},
		{"gitlab.com/acme/tool", true},
		{"erpnext", false},
		{"erpnext/", false},
		{"ftp://example.com/app", false},
		{"HTTPS://GITHUB.COM/acme/x", true},
		{"Git@GitLab.com:acme/x.git", true},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			if got := IsURLLike(tt.ref); got != tt.want {
				t.Errorf("IsURLLike(%q) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"url with git suffix", "https://github.com/Acme/Foo.git", "https://github.com/acme/foo"},
		{"url with trailing slash", "https://github.com/acme/foo/", "https://github.com/acme/foo"},
		{"url with git suffix and slash", "https://github.com/acme/foo.git/", "https://github.com/acme/foo"},
		{"url with surrounding space", "  https://github.com/acme/foo  ", "https://github.com/acme/foo"},
		{"only one trailing slash stripped", "https://github.com/acme/foo//", "https://github.com/acme/foo/"},
		{"ssh form", "git@github.com:Acme/Foo.git", "git@github.com:acme/foo"},
		{"bare name lowercased", "ERPNext", "erpnext"},
		{"bare name keeps slash", "erpnext/", "erpnext/"},
		{"bare name keeps git suffix", "erpnext.git", "erpnext.git"},
		{"blank", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.ref); got != tt.want {
				t.Errorf("Key(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestAccumulator_FirstSeenWins(t *testing.T) {
	acc := NewAccumulator()

	// Organization results come first, explicit apps afterwards.
	acc.AddAll([]string{"https://github.com/acme/foo.git", "https://github.com/acme/bar.git"})
	acc.AddAll(SplitApps("https://github.com/acme/foo https://github.com/ACME/bar/ hrms"))

	want := []string{"https://github.com/acme/foo.git", "https://github.com/acme/bar.git", "hrms"}
	assertItems(t, acc.Items(), want)
}

func TestAccumulator_URLCaseInsensitive(t *testing.T) {
	acc := NewAccumulator()
	acc.AddAll([]string{"https://github.com/acme/r1.git"})

	kept := acc.AddAll(SplitApps("HTTPS://GITHUB.COM/acme/r1.git Https://GitHub.com/ACME/R1/"))
	if kept != 0 {
		t.Errorf("AddAll() kept %d upper-case spellings, want 0", kept)
	}
	assertItems(t, acc.Items(), []string{"https://github.com/acme/r1.git"})
}

func TestAccumulator_BareNames(t *testing.T) {
	acc := NewAccumulator()
	kept := acc.AddAll(SplitApps("erpnext ERPNext erpnext/"))

	if kept != 2 {
		t.Errorf("AddAll() kept %d, want 2", kept)
	}
	assertItems(t, acc.Items(), []string{"erpnext", "erpnext/"})
}

func TestAccumulator_IgnoresBlankItems(t *testing.T) {
	acc := NewAccumulator()

	for _, item := range []string{"", " ", "\t\n"} {
		if acc.Add(item) {
			t.Errorf("Add(%q) = true, want false", item)
		}
	}
	if acc.Len() != 0 {
		t.Errorf("Len() = %d, want 0", acc.Len())
	}
	if items := acc.Items(); len(items) != 0 {
		t.Errorf("Items() = %v, want empty", items)
	}
}

func TestAccumulator_PreservesOriginalSpelling(t *testing.T) {
	acc := NewAccumulator()
	inputs := []string{"HTTPS://GitHub.com/Acme/Foo.git/", " padded ", "Mixed"}
	acc.AddAll(inputs)

	// Emitted strings are the exact inputs, never their keys.
	assertItems(t, acc.Items(), inputs)
}

func TestAccumulator_NoDuplicateKeys(t *testing.T) {
	inputs := []string{
		"https://github.com/acme/a.git",
		"https://github.com/acme/a",
		"https://github.com/acme/a/",
		"HTTPS://GITHUB.COM/ACME/A.GIT",
		"git@github.com:acme/a.git",
		"git@github.com:acme/a",
		"a", "A", " a", "a/", "a.git",
	}

	acc := NewAccumulator()
	acc.AddAll(inputs)

	seen := make(map[string]bool)
	for _, item := range acc.Items() {
		key := Key(item)
		if seen[key] {
			t.Errorf("duplicate key %q in output", key)
		}
		seen[key] = true

		found := false
		for _, in := range inputs {
			if in == item {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("output %q is not a verbatim input", item)
		}
	}

	want := []string{
		"https://github.com/acme/a.git",
		"git@github.com:acme/a.git",
		"a", "a/", "a.git",
	}
	assertItems(t, acc.Items(), want)
}

func TestAccumulator_ItemsIsACopy(t *testing.T) {
	acc := NewAccumulator()
	acc.Add("erpnext")

	items := acc.Items()
	items[0] = "mutated"

	if got := acc.Items()[0]; got != "erpnext" {
		t.Errorf("Items()[0] = %q after caller mutation, want erpnext", got)
	}
}

func TestSplitApps(t *testing.T) {
	got := SplitApps("  erpnext\thrms\n https://github.com/acme/x  ")
	assertItems(t, got, []string{"erpnext", "hrms", "https://github.com/acme/x"})

	if got := SplitApps(""); len(got) != 0 {
		t.Errorf("SplitApps(\"\") = %v, want empty", got)
	}
}

func assertItems(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d items %q, want %d items %q", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %q, want %q", i, got[i], want[i])
		}
	}
}
