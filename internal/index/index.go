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
	"fmt"
	"iter"
	"slices"
	"sort"
)

// Index is a generic sorted array index. Values are ordered by comparing
// their String values and, when those compare equal, by an optional
// tiebreak function. An Index is immutable and safe for concurrent use as
// long as cmp is.
type Index[V fmt.Stringer] struct {
	// index is sorted by cmp and then tiebreak.
	index []V

	cmp func(string, string) int
}

// NewIndex creates an index from the given slice and comparison function.
// cmp(a, b) should return a negative number when a < b, a positive number when
// a > b and zero when a == b or a and b are incomparable in the sense of a
// strict weak ordering. tiebreak orders values whose strings compare equal
// and may be nil, in which case the input order is kept.
func NewIndex[V fmt.Stringer](index []V, cmp func(string, string) int, tiebreak func(V, V) int) *Index[V] {
	sorted := make([]V, len(index))
	copy(sorted, index)
	slices.SortStableFunc(sorted, func(a, b V) int {
		if c := cmp(a.String(), b.String()); c != 0 {
			return c
		}
		if tiebreak != nil {
			return tiebreak(a, b)
		}
		return 0
	})

	return &Index[V]{
		index: sorted,
		cmp:   cmp,
	}
}

// Len returns the number of values in the index.
func (idx *Index[V]) Len() int {
	return len(idx.index)
}

// At returns the i'th value in sort order.
func (idx *Index[V]) At(i int) V {
	return idx.index[i]
}

// All returns an iterator over the values in sort order along with their
// rank.
func (idx *Index[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i, v := range idx.index {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Search performs a binary search over the index and returns the values
// whose string compares equal to query.
func (idx *Index[V]) Search(query string) []V {
	i, found := sort.Find(len(idx.index), func(i int) int {
		return idx.cmp(query, idx.index[i].String())
	})

	if !found {
		return nil
	}

	j := i
	//nolint:revive // This block increments j.
	for ; j < len(idx.index) && idx.cmp(query, idx.index[j].String()) == 0; j++ {
	}
	return idx.index[i:j]
}
