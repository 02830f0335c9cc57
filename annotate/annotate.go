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

// Package annotate rewrites marker codes embedded in sanitized definition
// text into readable labels.
//
// A marker code is a short token, such as "05", that names the language or
// era of the word that follows it. Annotation runs in passes over the
// tokens returned by a [Scanner]:
//  1. Mark: every whole word that equals a marker code, ignoring case,
//     becomes a marker token. Markup tags and character references are
//     never inspected.
//  2. Expand: a marker followed by whitespace and a word becomes the bold
//     label, the original whitespace and the word wrapped in a styled span.
//     The word ends at whitespace, at a markup tag or at another marker.
//     Opening tags between the whitespace and the word are kept outside the
//     span.
//  3. Cleanup: a marker without a following word is dropped.
//
// Annotation only introduces <b> and <span class="..."> elements.
package annotate

import (
	"errors"
	"fmt"
	"html"
	"strings"
	"unicode/utf8"
)

// WordClass is the class of the span that wraps an annotated word.
const WordClass = "purple"

var (
	errEmptyCode     = errors.New("empty marker code")
	errInvalidCode   = errors.New("invalid marker code")
	errDuplicateCode = errors.New("duplicate marker code")
)

// Annotator annotates definition text using a fixed marker table. An
// Annotator is immutable and safe for concurrent use.
type Annotator struct {
	markers []Marker

	// labels maps lowercase marker codes to labels.
	labels map[string]string
}

var defaultAnnotator = mustNew(DefaultMarkers)

func mustNew(markers []Marker) *Annotator {
	a, err := New(markers)
	if err != nil {
		panic(err)
	}
	return a
}

// New returns a new Annotator for the given marker table. Each code must be
// a non-empty word made of letters, digits and '_', and codes must be
// unique ignoring case.
func New(markers []Marker) (*Annotator, error) {
	a := &Annotator{
		markers: make([]Marker, len(markers)),
		labels:  make(map[string]string, len(markers)),
	}
	copy(a.markers, markers)

	for _, m := range markers {
		if m.Code == "" {
			return nil, errEmptyCode
		}
		for _, r := range m.Code {
			if r == utf8.RuneError || !isWordRune(r) {
				return nil, fmt.Errorf("%w: %q", errInvalidCode, m.Code)
			}
		}
		code := strings.ToLower(m.Code)
		if _, ok := a.labels[code]; ok {
			return nil, fmt.Errorf("%w: %q", errDuplicateCode, m.Code)
		}
		a.labels[code] = m.Label
	}

	return a, nil
}

// Default returns the Annotator for [DefaultMarkers].
func Default() *Annotator {
	return defaultAnnotator
}

// Annotate annotates text using [DefaultMarkers].
func Annotate(text string) string {
	return defaultAnnotator.Annotate(text)
}

// Markers returns the marker table.
func (a *Annotator) Markers() []Marker {
	markers := make([]Marker, len(a.markers))
	copy(markers, a.markers)
	return markers
}

// Annotate returns text with its marker codes expanded. text must already
// be sanitized.
func (a *Annotator) Annotate(text string) string {
	tokens, err := a.mark(text)
	if err != nil {
		return text
	}
	return a.expand(tokens)
}

// mark tokenizes text and turns words matching a marker code into marker
// tokens.
func (a *Annotator) mark(text string) ([]Token, error) {
	var tokens []Token
	s := NewScanner(strings.NewReader(text), len(text)+1)
	for s.Scan() {
		t := s.Token()
		if t.Kind == KindWord {
			if _, ok := a.labels[strings.ToLower(t.Text)]; ok {
				t.Kind = KindMarker
			}
		}
		tokens = append(tokens, t)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

// expand expands marker tokens and drops markers that have no following
// word.
func (a *Annotator) expand(tokens []Token) string {
	var b strings.Builder
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		if t.Kind != KindMarker {
			b.WriteString(t.Text)
			continue
		}

		space := i + 1
		if space >= len(tokens) || tokens[space].Kind != KindSpace {
			continue
		}

		start := space + 1
		for start < len(tokens) && tokens[start].Kind == KindTag && isOpeningTag(tokens[start].Text) {
			start++
		}
		end := start
		for end < len(tokens) && isWordPart(tokens[end].Kind) {
			end++
		}
		if end == start {
			continue
		}

		b.WriteString("<b>")
		b.WriteString(html.EscapeString(a.labels[strings.ToLower(t.Text)]))
		b.WriteString("</b>")
		for _, t := range tokens[space:start] {
			b.WriteString(t.Text)
		}
		b.WriteString(`<span class="` + WordClass + `">`)
		for _, t := range tokens[start:end] {
			b.WriteString(t.Text)
		}
		b.WriteString("</span>")

		i = end - 1
	}
	return b.String()
}

func isWordPart(k Kind) bool {
	return k == KindWord || k == KindPunct || k == KindEntity
}

// isOpeningTag returns true if tag opens an element that can wrap a word.
// Line breaks end a word and are not opening tags.
func isOpeningTag(tag string) bool {
	name := strings.TrimPrefix(tag, "<")
	if strings.HasPrefix(name, "/") || strings.HasSuffix(tag, "/>") {
		return false
	}
	if i := strings.IndexFunc(name, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('A' <= r && r <= 'Z')
	}); i >= 0 {
		name = name[:i]
	}
	return name != "" && !strings.EqualFold(name, "br")
}
