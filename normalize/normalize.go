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

// Package normalize canonicalizes Turkish text for case-insensitive
// comparison. Normalized text is only used for comparison and is never
// displayed.
package normalize

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/atmaca-35/miyuw/internal/folding"
)

// Folder returns a new [transform.Transformer] that composes the text to
// NFC, folds the dotted and dotless capital I and then lowercases the text.
// Lowercasing can leave a base letter next to a combining mark it composes
// with, so the result is composed to NFC again. The returned transformer is
// not safe for concurrent use.
func Folder() transform.Transformer {
	return transform.Chain(norm.NFC, folding.DotFolder{}, cases.Lower(language.Und), norm.NFC)
}

// String returns the normalized form of s. String is idempotent.
func String(s string) string {
	if s == "" {
		return s
	}
	// NOTE: Neither transformer returns an error other than the short
	// buffer errors handled by transform.String.
	n, _, err := transform.String(Folder(), s)
	if err != nil {
		return s
	}
	return n
}
