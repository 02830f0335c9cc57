// Copyright 2025 The miyuw Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package entry_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"

	"github.com/atmaca-35/miyuw/entry"
	"github.com/atmaca-35/miyuw/normalize"
)

func mustNew(t *testing.T, words []string, options *entry.Options) *entry.Index {
	t.Helper()

	entries := make(map[string]entry.Definition, len(words))
	for _, w := range words {
		entries[w] = entry.Definition{Text: "05 " + w}
	}
	idx, err := entry.New(entries, options)
	if err != nil {
		t.Fatalf("entry.New: %v", err)
	}
	return idx
}

func TestIndex_FindClosest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		words []string
		query string

		expected   string
		completion string
		ok         bool
	}{
		{
			name:  "empty index",
			words: nil,
			query: "ab",
		},
		{
			name:  "empty query",
			words: []string{"abacı", "ab"},
			query: "",
		},
		{
			name:  "no match",
			words: []string{"abacı", "baba"},
			query: "c",
		},
		{
			name:       "single match",
			words:      []string{"abacı", "baba"},
			query:      "ab",
			expected:   "abacı",
			completion: "acı",
			ok:         true,
		},
		{
			name:       "exact match",
			words:      []string{"abacı", "ab"},
			query:      "ab",
			expected:   "ab",
			completion: "",
			ok:         true,
		},
		{
			name:       "uppercase query",
			words:      []string{"abacı"},
			query:      "ABACI",
			expected:   "abacı",
			completion: "",
			ok:         true,
		},
		{
			name:       "collation c cedilla before d",
			words:      []string{"ad", "aç"},
			query:      "a",
			expected:   "aç",
			completion: "ç",
			ok:         true,
		},
		{
			name:       "collation dotless before dotted",
			words:      []string{"ai", "aı"},
			query:      "a",
			expected:   "aı",
			completion: "ı",
			ok:         true,
		},
		{
			name:       "ascii capital I is dotless",
			words:      []string{"Irmak", "izmir"},
			query:      "ır",
			expected:   "Irmak",
			completion: "mak",
			ok:         true,
		},
		{
			name:  "ascii capital I does not match dotted",
			words: []string{"Irmak"},
			query: "ir",
		},
		{
			name:       "dotted capital I",
			words:      []string{"İzmir", "ırmak"},
			query:      "İZ",
			expected:   "İzmir",
			completion: "mir",
			ok:         true,
		},
		{
			name:       "normalized tie broken by headword",
			words:      []string{"abacı", "Abacı"},
			query:      "aba",
			expected:   "Abacı",
			completion: "cı",
			ok:         true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			idx := mustNew(t, test.words, nil)

			m, ok := idx.FindClosest(test.query)
			if want, got := test.ok, ok; want != got {
				t.Fatalf("FindClosest(%q) ok; want: %v, got: %v", test.query, want, got)
			}
			if diff := cmp.Diff(test.expected, m.Headword()); diff != "" {
				t.Errorf("FindClosest(%q) headword (-want, +got):\n%s", test.query, diff)
			}
			if diff := cmp.Diff(test.completion, m.Completion()); diff != "" {
				t.Errorf("FindClosest(%q) completion (-want, +got):\n%s", test.query, diff)
			}
		})
	}
}

// TestIndex_FindClosest_consistent checks that the match starts with the
// query and that no earlier entry in sort order also does.
func TestIndex_FindClosest_consistent(t *testing.T) {
	t.Parallel()

	words := []string{
		"abacı", "Abacı", "abla", "aç", "ad", "ağaç", "ağabey", "ai", "aı",
		"Irmak", "ırgat", "İzmir", "iğne", "çam", "cam", "can", "ölçü", "oda",
		"Oğuz", "uç", "üç", "şiş", "sis",
	}
	idx := mustNew(t, words, nil)

	queries := []string{
		"a", "ab", "AB", "ağ", "ı", "I", "i", "İ", "c", "ç", "o", "ö", "u", "ü",
		"s", "ş", "x", "abacı",
	}
	for _, q := range queries {
		nq := normalize.String(q)

		var first *entry.Entry
		for e := range idx.All() {
			if strings.HasPrefix(normalize.String(e.Headword), nq) {
				first = e
				break
			}
		}

		m, ok := idx.FindClosest(q)
		if first == nil {
			if ok {
				t.Errorf("FindClosest(%q) = %q; want no match", q, m.Headword())
			}
			continue
		}
		if !ok {
			t.Errorf("FindClosest(%q): no match; want %q", q, first.Headword)
			continue
		}
		if !strings.HasPrefix(m.Normalized, nq) {
			t.Errorf("FindClosest(%q) = %q; does not start with %q", q, m.Normalized, nq)
		}
		if want, got := first, m.Entry; want != got {
			t.Errorf("FindClosest(%q); want: %q, got: %q", q, want.Headword, got.Headword)
		}
	}
}

func TestIndex_All(t *testing.T) {
	t.Parallel()

	idx := mustNew(t, []string{"çam", "can", "dal", "cam", "ad", "aç"}, &entry.Options{
		Locale: language.Turkish,
	})

	var got []string
	for e := range idx.All() {
		got = append(got, e.Headword)
	}

	expected := []string{"aç", "ad", "cam", "can", "çam", "dal"}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("All (-want, +got):\n%s", diff)
	}
	if want, got := 6, idx.Len(); want != got {
		t.Fatalf("Len; want: %d, got: %d", want, got)
	}
}

func TestIndex_Prefix(t *testing.T) {
	t.Parallel()

	idx := mustNew(t, []string{"çam", "can", "dal", "cam", "ad", "aç", "Ca"}, nil)

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{
			name:     "all",
			query:    "",
			expected: []string{"aç", "ad", "Ca", "cam", "can", "çam", "dal"},
		},
		{
			name:     "prefix",
			query:    "ca",
			expected: []string{"Ca", "cam", "can"},
		},
		{
			name:     "none",
			query:    "x",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var got []string
			for m := range idx.Prefix(test.query) {
				got = append(got, m.Headword())
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Prefix(%q) (-want, +got):\n%s", test.query, diff)
			}
		})
	}
}

func TestIndex_Lookup(t *testing.T) {
	t.Parallel()

	idx := mustNew(t, []string{"abacı", "Abacı", "abla"}, nil)

	var got []string
	for _, e := range idx.Lookup("ABACI") {
		got = append(got, e.Headword)
	}

	expected := []string{"Abacı", "abacı"}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("Lookup (-want, +got):\n%s", diff)
	}

	if got := idx.Lookup("abac"); got != nil {
		t.Fatalf("Lookup(%q); want: nil, got: %v", "abac", got)
	}
}

func TestIndex_immutable(t *testing.T) {
	t.Parallel()

	entries := map[string]entry.Definition{
		"abacı": {Text: "05 abacı"},
	}
	idx, err := entry.New(entries, nil)
	if err != nil {
		t.Fatalf("entry.New: %v", err)
	}

	// Modifying the input map does not affect the index.
	entries["abla"] = entry.Definition{Text: "05 abla"}
	delete(entries, "abacı")

	if _, ok := idx.FindClosest("abl"); ok {
		t.Fatalf("FindClosest(%q) matched an entry added after New", "abl")
	}
	m, ok := idx.FindClosest("aba")
	if !ok {
		t.Fatalf("FindClosest(%q): no match", "aba")
	}
	if diff := cmp.Diff("05 abacı", m.Entry.Definition.Text); diff != "" {
		t.Fatalf("Definition (-want, +got):\n%s", diff)
	}
}
