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

// Package folding implements text transformers used when comparing
// headwords.
package folding

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

const (
	// dottedCapitalI is LATIN CAPITAL LETTER I WITH DOT ABOVE.
	dottedCapitalI = 'İ'

	// dotlessSmallI is LATIN SMALL LETTER DOTLESS I.
	dotlessSmallI = 'ı'
)

// DotFolder folds the Turkish dotted and dotless capital I to their
// lowercase forms. 'İ' becomes 'i' and the ASCII 'I' becomes 'ı'. All other
// input, including invalid UTF-8, is copied unchanged.
//
// Generic lowercasing maps both capitals to a dotted 'i' so DotFolder must
// run before it.
type DotFolder struct{}

// Transform implements [transform.Transformer.Transform].
func (DotFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		c, size := utf8.DecodeRune(src[nSrc:])

		var out []byte
		switch c {
		case dottedCapitalI:
			out = []byte{'i'}
		case 'I':
			out = utf8.AppendRune(nil, dotlessSmallI)
		default:
			// NOTE: copy the source bytes rather than re-encoding c so that
			// invalid sequences survive as-is.
			out = src[nSrc : nSrc+size]
		}

		if nDst+len(out) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out)
		nSrc += size
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (DotFolder) Reset() {}
