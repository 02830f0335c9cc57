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

// Package sanitize restricts raw definition text to a small set of inline
// formatting tags before it is annotated.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// AllowedElements are the only elements kept by the sanitizer.
var AllowedElements = []string{"b", "i", "em", "strong", "a", "br"}

// AllowedAttrs are the only attributes kept on any allowed element.
var AllowedAttrs = []string{"href", "class"}

// Policy sanitizes definition text. A Policy is safe for concurrent use once
// created.
type Policy struct {
	p *bluemonday.Policy
}

var defaultPolicy = New()

// New returns a new Policy allowing only [AllowedElements] with
// [AllowedAttrs].
func New() *Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(AllowedElements...)
	p.AllowAttrs(AllowedAttrs...).Globally()
	// NOTE: Links may point to other entries by relative URL.
	p.AllowRelativeURLs(true)
	p.AllowURLSchemes("http", "https", "mailto")

	return &Policy{p: p}
}

// Sanitize converts newlines in raw definition text to line breaks and
// removes everything outside the allow-list.
func (p *Policy) Sanitize(raw string) string {
	return p.p.Sanitize(LineBreaks(raw))
}

// Sanitize sanitizes raw definition text using the default policy.
func Sanitize(raw string) string {
	return defaultPolicy.Sanitize(raw)
}

// LineBreaks replaces newlines with <br> tags. "\r\n" counts as a single
// newline.
func LineBreaks(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "<br>")
}
