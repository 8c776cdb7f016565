package subledger

import "sort"

// Substring is a non-empty UTF-8 string tracked by the ledger and, later,
// the encoding table. Construction from an empty string is a programmer
// error and panics immediately rather than propagating a zero value.
//
// Substrings order by byte length descending, then lexicographically
// ascending: longest match wins, ties break alphabetically. This is the
// canonical order used everywhere a deterministic substring sequence is
// needed (see EncodingTable).
type Substring string

// NewSubstring wraps s as a Substring. s must be non-empty.
func NewSubstring(s string) Substring {
	if s == "" {
		panic("subledger: cannot construct a Substring from an empty string")
	}
	return Substring(s)
}

// substringFromRune builds a single-character Substring.
func substringFromRune(r rune) Substring {
	return Substring(string(r))
}

// String returns the underlying text.
func (s Substring) String() string {
	return string(s)
}

// Len returns the length in bytes (not runes).
func (s Substring) Len() int {
	return len(s)
}

// Concat returns the Substring formed by appending other's bytes to s.
func (s Substring) Concat(other Substring) Substring {
	return Substring(string(s) + string(other))
}

// MatchesStart reports whether text begins with s.
func (s Substring) MatchesStart(text string) bool {
	return len(text) >= len(s) && text[:len(s)] == string(s)
}

// Less implements the canonical ordering: length descending, then
// lexicographic ascending.
func (s Substring) Less(other Substring) bool {
	if len(s) != len(other) {
		return len(s) > len(other)
	}
	return s < other
}

// SortSubstrings orders a slice in place by the canonical Substring order.
func SortSubstrings(substrings []Substring) {
	sort.Slice(substrings, func(i, j int) bool {
		return substrings[i].Less(substrings[j])
	})
}
