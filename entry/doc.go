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

// Package entry implements the in-memory headword index.
//
// An index is built once from a mapping of headwords to definitions and is
// immutable afterwards. Every headword is projected to its normalized form
// when the index is built. The projection is kept in two structures:
//  1. A sorted array ordered by locale-aware collation of the normalized
//     headwords. Ties are broken by the normalized bytes and then by the
//     original headword, so the order is total.
//  2. A prefix tree over the normalized headwords that maps each key to the
//     ranks of its entries in the sorted array.
//
// Prefix queries use the tree to find candidate entries and return the one
// with the lowest rank, which is the first entry in sort order whose
// normalized headword starts with the normalized query.
package entry
