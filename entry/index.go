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

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync"

	"github.com/tchap/go-patricia/v2/patricia"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"

	"github.com/atmaca-35/miyuw/internal/index"
	"github.com/atmaca-35/miyuw/normalize"
)

// Options are options for building an Index.
type Options struct {
	// Locale is the locale whose collation orders headwords.
	Locale language.Tag

	// Folder returns a [transform.Transformer] that normalizes headwords
	// and queries.
	Folder func() transform.Transformer
}

// DefaultOptions are the options used when nil options are passed to New.
var DefaultOptions = &Options{
	Locale: language.Turkish,
	Folder: normalize.Folder,
}

type foldedEntry struct {
	folded string
	entry  *Entry
}

func (e *foldedEntry) String() string {
	return e.folded
}

// Index is an immutable headword index. Its methods are safe for concurrent
// use.
type Index struct {
	// sorted is sorted by collation of the folded headword.
	sorted *index.Index[*foldedEntry]

	// ranks maps folded headwords to the ranks of their entries in sorted.
	ranks *patricia.Trie

	// foldTransformer performs folding on text.
	foldTransformer func() transform.Transformer

	// mu guards coll, which is not safe for concurrent use.
	mu   sync.Mutex
	coll *collate.Collator
}

// New builds an Index from a mapping of headwords to definitions.
func New(entries map[string]Definition, options *Options) (*Index, error) {
	if options == nil {
		options = DefaultOptions
	}

	idx := &Index{
		foldTransformer: DefaultOptions.Folder,
		ranks:           patricia.NewTrie(),
	}
	if options.Folder != nil {
		idx.foldTransformer = options.Folder
	}
	locale := options.Locale
	if locale == language.Und {
		locale = DefaultOptions.Locale
	}
	idx.coll = collate.New(locale)

	words := make([]*foldedEntry, 0, len(entries))
	for headword, def := range entries {
		folded, err := idx.fold(headword)
		if err != nil {
			return nil, fmt.Errorf("folding headword %q: %w", headword, err)
		}
		words = append(words, &foldedEntry{
			folded: folded,
			entry: &Entry{
				Headword:   headword,
				Definition: def,
			},
		})
	}

	idx.sorted = index.NewIndex(words, idx.compare, func(a, b *foldedEntry) int {
		if c := strings.Compare(a.folded, b.folded); c != 0 {
			return c
		}
		return strings.Compare(a.entry.Headword, b.entry.Headword)
	})

	for rank, w := range idx.sorted.All() {
		// NOTE: The empty key can never be matched by a non-empty query.
		if w.folded == "" {
			continue
		}
		key := patricia.Prefix(w.folded)
		if item := idx.ranks.Get(key); item != nil {
			idx.ranks.Set(key, append(item.([]int), rank))
			continue
		}
		idx.ranks.Insert(key, []int{rank})
	}

	return idx, nil
}

// Len returns the number of entries in the index.
func (idx *Index) Len() int {
	return idx.sorted.Len()
}

// All returns an iterator over all entries in sort order.
func (idx *Index) All() iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for _, w := range idx.sorted.All() {
			if !yield(w.entry) {
				return
			}
		}
	}
}

// FindClosest returns the first entry in sort order whose normalized
// headword starts with the normalized query. The second return value is
// false if the query is empty or no entry matches.
func (idx *Index) FindClosest(query string) (Match, bool) {
	if query == "" {
		return Match{}, false
	}
	folded, err := idx.fold(query)
	if err != nil || folded == "" {
		return Match{}, false
	}

	best := -1
	//nolint:errcheck // the visitor never returns an error.
	idx.ranks.VisitSubtree(patricia.Prefix(folded), func(_ patricia.Prefix, item patricia.Item) error {
		// Ranks are appended in increasing order.
		if r := item.([]int)[0]; best < 0 || r < best {
			best = r
		}
		return nil
	})
	if best < 0 {
		return Match{}, false
	}

	w := idx.sorted.At(best)
	return Match{
		Query:      folded,
		Normalized: w.folded,
		Entry:      w.entry,
	}, true
}

// Prefix returns an iterator over all entries whose normalized headword
// starts with the normalized query, in sort order. An empty query matches
// every entry.
func (idx *Index) Prefix(query string) iter.Seq[Match] {
	folded, err := idx.fold(query)
	if err != nil {
		return func(func(Match) bool) {}
	}

	var ranks []int
	if folded == "" {
		for i := range idx.sorted.Len() {
			ranks = append(ranks, i)
		}
	} else {
		//nolint:errcheck // the visitor never returns an error.
		idx.ranks.VisitSubtree(patricia.Prefix(folded), func(_ patricia.Prefix, item patricia.Item) error {
			ranks = append(ranks, item.([]int)...)
			return nil
		})
		slices.Sort(ranks)
	}

	return func(yield func(Match) bool) {
		for _, r := range ranks {
			w := idx.sorted.At(r)
			if !yield(Match{Query: folded, Normalized: w.folded, Entry: w.entry}) {
				return
			}
		}
	}
}

// Lookup returns the entries whose normalized headword collates equal to
// the normalized word.
func (idx *Index) Lookup(word string) []*Entry {
	folded, err := idx.fold(word)
	if err != nil {
		return nil
	}

	var entries []*Entry
	for _, w := range idx.sorted.Search(folded) {
		entries = append(entries, w.entry)
	}
	return entries
}

func (idx *Index) fold(s string) (string, error) {
	folded, _, err := transform.String(idx.foldTransformer(), s)
	if err != nil {
		return "", fmt.Errorf("folding %q: %w", s, err)
	}
	return folded, nil
}

func (idx *Index) compare(a, b string) int {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return idx.coll.CompareString(a, b)
}
