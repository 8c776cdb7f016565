package subledger

// EncodingTable is the immutable dictionary shared by an Encoder and a
// Decoder. It holds the same substrings in two forms: an indexed sequence
// (wire index -> substring) and a trie (substring -> wire index), so that
// FindMatch runs in time proportional to the matched text rather than to
// the dictionary's size.
type EncodingTable struct {
	entries []Substring
	index   *Trie[int]
}

// NewEncodingTable sorts substrings by the canonical Substring order
// (length descending, then lexicographic ascending) and builds the
// position index over the sorted sequence. Sorting first, rather than
// relying on insertion order, makes index assignment deterministic
// regardless of how the selector produced its candidates.
func NewEncodingTable(substrings []Substring) *EncodingTable {
	entries := make([]Substring, len(substrings))
	copy(entries, substrings)
	SortSubstrings(entries)

	index := NewTrie[int]()
	for i, s := range entries {
		index.Insert(s, i)
	}

	return &EncodingTable{entries: entries, index: index}
}

// Len reports the number of entries.
func (t *EncodingTable) Len() int {
	return len(t.entries)
}

// Get returns the substring at position index.
func (t *EncodingTable) Get(index int) Substring {
	return t.entries[index]
}

// FindMatch returns the wire index and substring of the longest registered
// entry that is a prefix of text.
func (t *EncodingTable) FindMatch(text string) (int, Substring, bool) {
	key, idx, ok := t.index.FindMatch(text)
	if !ok {
		return 0, "", false
	}
	return idx, key, true
}

// substrings returns the sorted entries, for tests that need to inspect
// the canonical order directly rather than through Get/FindMatch.
func (t *EncodingTable) substrings() []Substring {
	return t.entries
}
