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

package annotate

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"
)

// maxEntityLen is the longest character reference the scanner recognizes,
// not counting the leading '&'.
const maxEntityLen = 32

// Kind is the kind of a token.
type Kind int

const (
	// KindPunct is a single rune that is neither a word rune nor whitespace.
	KindPunct Kind = iota

	// KindWord is a run of word runes (letters, digits, marks and '_').
	KindWord

	// KindSpace is a run of whitespace.
	KindSpace

	// KindTag is a markup tag such as "<b>" or "</a>".
	KindTag

	// KindEntity is a character reference such as "&amp;" or "&#39;".
	KindEntity

	// KindMarker is a word that matched a marker code. It is never returned
	// by the Scanner and is only produced by the mark pass.
	KindMarker
)

// Token is a lexical token of sanitized definition text.
type Token struct {
	Kind Kind
	Text string
}

// Scanner splits sanitized definition text into tokens. Concatenating the
// text of all tokens yields the input.
type Scanner struct {
	s *bufio.Scanner
}

// NewScanner returns a new Scanner reading from r. maxTokenSize bounds the
// size of a single token.
func NewScanner(r io.Reader, maxTokenSize int) *Scanner {
	s := &Scanner{
		s: bufio.NewScanner(r),
	}
	if maxTokenSize > bufio.MaxScanTokenSize {
		s.s.Buffer(make([]byte, 0, 4096), maxTokenSize)
	}
	s.s.Split(splitToken)
	return s
}

// Scan advances the scanner to the next token. It returns false if the scan
// stops either by reaching the end of the input or an error.
func (s *Scanner) Scan() bool {
	return s.s.Scan()
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	if err := s.s.Err(); err != nil {
		return fmt.Errorf("scanning definition: %w", err)
	}
	return nil
}

// Token returns the current token.
func (s *Scanner) Token() Token {
	b := s.s.Bytes()
	return Token{
		Kind: kindOf(b),
		Text: string(b),
	}
}

func kindOf(b []byte) Kind {
	switch {
	case len(b) > 1 && b[0] == '<' && b[len(b)-1] == '>':
		return KindTag
	case len(b) > 2 && b[0] == '&' && b[len(b)-1] == ';':
		return KindEntity
	}

	r, _ := utf8.DecodeRune(b)
	switch {
	case unicode.IsSpace(r):
		return KindSpace
	case isWordRune(r):
		return KindWord
	default:
		return KindPunct
	}
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

func isEntityByte(c byte) bool {
	return c == '#' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// splitToken splits definition text into tokens.
func splitToken(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	switch data[0] {
	case '<':
		if i := bytes.IndexByte(data, '>'); i >= 0 {
			return i + 1, data[:i+1], nil
		}
		if !atEOF {
			// Request more data.
			return 0, nil, nil
		}
		// An unterminated '<' is plain text.
		return 1, data[:1], nil
	case '&':
		i := 1
		for i < len(data) && i <= maxEntityLen && isEntityByte(data[i]) {
			i++
		}
		if i > 1 && i < len(data) && data[i] == ';' {
			return i + 1, data[:i+1], nil
		}
		if i == len(data) && i <= maxEntityLen && !atEOF {
			// Request more data.
			return 0, nil, nil
		}
		return 1, data[:1], nil
	}

	if !atEOF && !utf8.FullRune(data) {
		// Request more data.
		return 0, nil, nil
	}

	r, size := utf8.DecodeRune(data)
	var in func(rune) bool
	switch {
	case unicode.IsSpace(r):
		in = unicode.IsSpace
	case isWordRune(r):
		in = isWordRune
	default:
		return size, data[:size], nil
	}

	i := size
	for i < len(data) {
		if !atEOF && !utf8.FullRune(data[i:]) {
			// Request more data.
			return 0, nil, nil
		}
		r, n := utf8.DecodeRune(data[i:])
		if !in(r) {
			return i, data[:i], nil
		}
		i += n
	}

	if atEOF {
		return i, data[:i], nil
	}

	// Request more data.
	return 0, nil, nil
}
