// Copyright 2025 Ian Lewis
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

package index

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type String string

func (s String) String() string {
	return string(s)
}

// tagged is a value whose sort key is shared with other values.
type tagged struct {
	key string
	tag string
}

func (t tagged) String() string {
	return t.key
}

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		index    []String
		query    string
		expected []String
	}{
		{
			name:     "single results",
			index:    []String{"foo", "bar", "baz", "bar"},
			query:    "foo",
			expected: []String{"foo"},
		},
		{
			name:     "multiple results",
			index:    []String{"foo", "bar", "baz", "bar"},
			query:    "bar",
			expected: []String{"bar", "bar"},
		},
		{
			name:     "no results",
			index:    []String{"foo", "bar", "baz", "bar"},
			query:    "none",
			expected: nil,
		},
		{
			name:     "empty index",
			index:    nil,
			query:    "foo",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			index := NewIndex(test.index, strings.Compare, nil)

			if diff := cmp.Diff(test.expected, index.Search(test.query)); diff != "" {
				t.Fatalf("Search (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestIndex_All(t *testing.T) {
	t.Parallel()

	values := []tagged{
		{key: "b", tag: "2"},
		{key: "a", tag: "z"},
		{key: "b", tag: "1"},
		{key: "a", tag: "y"},
	}
	index := NewIndex(values, strings.Compare, func(a, b tagged) int {
		return strings.Compare(a.tag, b.tag)
	})

	var got []tagged
	var ranks []int
	for i, v := range index.All() {
		ranks = append(ranks, i)
		got = append(got, v)
	}

	expected := []tagged{
		{key: "a", tag: "y"},
		{key: "a", tag: "z"},
		{key: "b", tag: "1"},
		{key: "b", tag: "2"},
	}
	if diff := cmp.Diff(expected, got, cmp.AllowUnexported(tagged{})); diff != "" {
		t.Fatalf("All (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3}, ranks); diff != "" {
		t.Fatalf("All ranks (-want, +got):\n%s", diff)
	}
	if want, got := 4, index.Len(); want != got {
		t.Fatalf("Len; want: %d, got: %d", want, got)
	}
	if diff := cmp.Diff(expected[2], index.At(2), cmp.AllowUnexported(tagged{})); diff != "" {
		t.Fatalf("At (-want, +got):\n%s", diff)
	}

	// The input slice is not modified.
	if want, got := "2", values[0].tag; want != got {
		t.Fatalf("input modified; want: %q, got: %q", want, got)
	}
}
