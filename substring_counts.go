package subledger

// SubstringCounts is a substring→occurrence-count map backed by a Trie, so
// that the longest substring registered as a prefix of arbitrary text can be
// found in time proportional to the match length rather than the map size.
type SubstringCounts struct {
	trie *Trie[int]
}

// NewSubstringCounts returns an empty counts map.
func NewSubstringCounts() *SubstringCounts {
	return &SubstringCounts{trie: NewTrie[int]()}
}

// Len reports the number of distinct substrings tracked.
func (c *SubstringCounts) Len() int {
	return c.trie.Len()
}

// Insert sets s's count, overwriting any prior value.
func (c *SubstringCounts) Insert(s Substring, count int) {
	c.trie.Insert(s, count)
}

// ContainsKey reports whether s has a tracked count.
func (c *SubstringCounts) ContainsKey(s Substring) bool {
	_, ok := c.trie.Get(s)
	return ok
}

// GetCountMutPtr returns a pointer to s's count for in-place increment, or
// nil if s is not tracked.
func (c *SubstringCounts) GetCountMutPtr(s Substring) *int {
	return c.trie.GetMutPtr(s)
}

// FindMatch returns the SubstringCount for the longest tracked substring
// that is a prefix of text.
func (c *SubstringCounts) FindMatch(text string) (SubstringCount, bool) {
	key, count, ok := c.trie.FindMatch(text)
	if !ok {
		return SubstringCount{}, false
	}
	return SubstringCount{Value: key, Count: count}, true
}

// Each visits every (substring, count) pair, in unspecified order.
func (c *SubstringCounts) Each(fn func(Substring, int) bool) {
	c.trie.Each(fn)
}

// Retain keeps only the entries for which predicate returns true.
func (c *SubstringCounts) Retain(predicate func(Substring, int) bool) {
	c.trie.Retain(predicate)
}

// SubstringCount pairs a substring with its observed occurrence count.
type SubstringCount struct {
	Value Substring
	Count int
}
