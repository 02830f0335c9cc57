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

package entry

// Definition is the definition record of a headword.
type Definition struct {
	// Text is the definition prose. It may contain two-digit marker codes,
	// a small set of inline formatting tags and literal newlines.
	Text string `json:"a" msgpack:"a"`
}

// Entry is a dictionary entry.
type Entry struct {
	// Headword is the original, unnormalized key.
	Headword string

	// Definition is the entry's definition.
	Definition Definition
}

// String returns a string representation of the Entry.
func (e *Entry) String() string {
	return e.Headword + "\n" + e.Definition.Text + "\n"
}

// Match is the result of a prefix query.
type Match struct {
	// Query is the normalized query.
	Query string

	// Normalized is the normalized headword of the matched entry.
	Normalized string

	// Entry is the matched entry.
	Entry *Entry
}

// Headword returns the original headword of the matched entry.
func (m Match) Headword() string {
	if m.Entry == nil {
		return ""
	}
	return m.Entry.Headword
}

// Completion returns the part of the normalized headword that follows the
// normalized query.
func (m Match) Completion() string {
	if len(m.Query) > len(m.Normalized) {
		return ""
	}
	return m.Normalized[len(m.Query):]
}
