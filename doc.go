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

// Package miyuw implements incremental search over an etymological
// dictionary of Turkic languages.
//
// A dictionary is distributed as a single JSON document that maps headwords
// to definition records:
//
//	{
//	  "abacı": {"a": "05 abacı\n06 usta"},
//	  ...
//	}
//
// The definition text may contain two-digit marker codes, such as "05",
// that name the language of the word that follows them. See the annotate
// package for how markers are expanded.
//
// The same document may also be encoded as MessagePack (.msgpack). Either
// encoding can be stored as is, gzip compressed (.gz) or dictzip compressed
// (.dz). [Open] picks the decoders from the file extension and returns an
// [entry.Index] that can be passed to a [search.Controller].
package miyuw
