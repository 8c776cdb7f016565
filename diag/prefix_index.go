// Package diag provides read-only introspection over a built
// subledger.EncodingTable, for callers that want to inspect dictionary
// structure without reaching into the package's internals.
package diag

import (
	"sort"

	"github.com/tchap/go-patricia/v2/patricia"
	"github.com/tindandelion/subledger"
)

// Entry pairs a dictionary substring with its wire index.
type Entry struct {
	Index     int
	Substring string
}

// PrefixIndex is a byte-trie view over an EncodingTable's entries, built
// once at construction, answering "which dictionary entries share this
// prefix" queries via patricia.Trie.VisitSubtree.
type PrefixIndex struct {
	trie *patricia.Trie
}

// NewPrefixIndex walks table's entries and indexes them by their raw byte
// representation.
func NewPrefixIndex(table *subledger.EncodingTable) *PrefixIndex {
	trie := patricia.NewTrie()
	for i := 0; i < table.Len(); i++ {
		s := table.Get(i)
		trie.Set(patricia.Prefix(s.String()), i)
	}
	return &PrefixIndex{trie: trie}
}

// WithPrefix returns every dictionary entry whose substring begins with
// prefix, ordered by wire index.
func (p *PrefixIndex) WithPrefix(prefix string) []Entry {
	var entries []Entry
	_ = p.trie.VisitSubtree(patricia.Prefix(prefix), func(key patricia.Prefix, item patricia.Item) error {
		idx, ok := item.(int)
		if !ok {
			return nil
		}
		entries = append(entries, Entry{Index: idx, Substring: string(key)})
		return nil
	})
	sort.Slice(entries, func(i, j int) bool { return entries[i].Index < entries[j].Index })
	return entries
}
