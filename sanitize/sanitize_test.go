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

package sanitize

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "newlines",
			input:    "05 abacı\n06 usta\r\n07 x",
			expected: "05 abacı<br>06 usta<br>07 x",
		},
		{
			name:     "allowed elements",
			input:    "<b>a</b><i>b</i><em>c</em><strong>d</strong>",
			expected: "<b>a</b><i>b</i><em>c</em><strong>d</strong>",
		},
		{
			name:     "disallowed element",
			input:    `<span class="x">a</span><div>b</div>`,
			expected: "ab",
		},
		{
			name:     "script removed",
			input:    "<script>alert(1)</script>abacı",
			expected: "abacı",
		},
		{
			name:     "class kept",
			input:    `<b class="k" style="color:red">a</b>`,
			expected: `<b class="k">a</b>`,
		},
		{
			name:     "link",
			input:    `<a href="https://example.com/x" onclick="y()">y</a>`,
			expected: `<a href="https://example.com/x">y</a>`,
		},
		{
			name:     "relative link",
			input:    `<a href="/abla">abla</a>`,
			expected: `<a href="/abla">abla</a>`,
		},
		{
			name:     "javascript link",
			input:    `<a href="javascript:alert(1)">y</a>`,
			expected: "y",
		},
		{
			name:     "text escaped",
			input:    "a & b < c",
			expected: "a &amp; b &lt; c",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, Sanitize(test.input)); diff != "" {
				t.Fatalf("Sanitize(%q) (-want, +got):\n%s", test.input, diff)
			}
		})
	}
}
