package subledger

import "sort"

// SubstringSelector turns a SubstringLedger's final counts into an ordered
// set of at most numStrings substrings, ready for an EncodingTable. The two
// shipped variants differ only in ranking key; both apply the same
// soundness filters first.
type SubstringSelector interface {
	Select(counts *SubstringCounts) []Substring
}

// ByFrequency ranks candidates by raw occurrence count, descending.
type ByFrequency struct {
	EncodedSize int
	NumStrings  int
}

// Select implements SubstringSelector.
func (s ByFrequency) Select(counts *SubstringCounts) []Substring {
	candidates := filterCandidates(counts, s.EncodedSize)
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Count > candidates[j].Count
	})
	return truncateToSubstrings(candidates, s.NumStrings)
}

// ByCompressionGain ranks candidates by the bytes saved if every occurrence
// of the substring were replaced by an encoded reference, descending;
// zero-gain candidates are dropped.
type ByCompressionGain struct {
	EncodedSize int
	NumStrings  int
}

// Select implements SubstringSelector.
func (s ByCompressionGain) Select(counts *SubstringCounts) []Substring {
	candidates := filterCandidates(counts, s.EncodedSize)

	type ranked struct {
		value SubstringCount
		gain  int
	}
	rankedCandidates := make([]ranked, 0, len(candidates))
	for _, c := range candidates {
		gain := compressionGain(c.Value, c.Count, s.EncodedSize)
		if gain > 0 {
			rankedCandidates = append(rankedCandidates, ranked{value: c, gain: gain})
		}
	}
	sort.Slice(rankedCandidates, func(i, j int) bool {
		return rankedCandidates[i].gain > rankedCandidates[j].gain
	})

	out := make([]SubstringCount, len(rankedCandidates))
	for i, r := range rankedCandidates {
		out[i] = r.value
	}
	return truncateToSubstrings(out, s.NumStrings)
}

func compressionGain(s Substring, count, encodedSize int) int {
	gain := s.Len()*count - encodedSize*count
	if gain < 0 {
		return 0
	}
	return gain
}

// filterCandidates drops entries that can never pay for themselves: a
// single occurrence never recoups the cost of a dictionary entry, and a
// substring no longer than an encoded reference is never worth replacing.
func filterCandidates(counts *SubstringCounts, encodedSize int) []SubstringCount {
	var out []SubstringCount
	counts.Each(func(s Substring, count int) bool {
		if count <= 1 {
			return true
		}
		if s.Len() <= encodedSize {
			return true
		}
		out = append(out, SubstringCount{Value: s, Count: count})
		return true
	})
	return out
}

func truncateToSubstrings(candidates []SubstringCount, numStrings int) []Substring {
	if len(candidates) > numStrings {
		candidates = candidates[:numStrings]
	}
	out := make([]Substring, len(candidates))
	for i, c := range candidates {
		out[i] = c.Value
	}
	return out
}
