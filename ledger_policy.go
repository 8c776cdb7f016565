package subledger

import (
	"math"
	"sort"
)

// LedgerPolicy controls two decisions made during induction: whether two
// adjacent matches should be merged into a new ledger entry, and how to
// prune the ledger when space is tight. CaptureAll and LimitLedgerSize are
// the two shipped variants; callers pass one to EncodeWithPolicy.
type LedgerPolicy interface {
	// ShouldMerge reports whether a match with count xCount, immediately
	// followed by a match with count yCount, should have its
	// concatenation promoted into a new ledger entry.
	ShouldMerge(xCount, yCount int, counts *SubstringCounts) bool

	// Cleanup runs before a fresh substring is inserted into counts and
	// may prune entries in place.
	Cleanup(counts *SubstringCounts)
}

// CaptureAll never prunes and always merges. The dictionary grows without
// bound, tracking every repeated substring the induction pass encounters.
type CaptureAll struct{}

// ShouldMerge always returns true.
func (CaptureAll) ShouldMerge(int, int, *SubstringCounts) bool { return true }

// Cleanup is a no-op.
func (CaptureAll) Cleanup(*SubstringCounts) {}

// LimitLedgerSize bounds the ledger to MaxSize entries, trading dictionary
// completeness for a predictable memory ceiling. Merges grow exclusive as
// the ledger fills, and cleanup prunes below-median entries once there's no
// longer room to spare.
type LimitLedgerSize struct {
	MaxSize int
}

// ShouldMerge returns false once the ledger is full; otherwise both counts
// must meet the merge threshold computed from how much free space remains.
func (p LimitLedgerSize) ShouldMerge(xCount, yCount int, counts *SubstringCounts) bool {
	if p.isFull(counts) {
		return false
	}
	threshold := p.mergeThreshold(counts)
	return xCount >= threshold && yCount >= threshold
}

// Cleanup is a no-op while at least two free slots remain; otherwise it
// retains only entries at or above the median count.
func (p LimitLedgerSize) Cleanup(counts *SubstringCounts) {
	if !p.shouldCleanup(counts) {
		return
	}
	median := calcMedianCount(collectCounts(counts))
	counts.Retain(func(_ Substring, count int) bool { return count >= median })
}

func (p LimitLedgerSize) freeSpace(counts *SubstringCounts) int {
	return p.MaxSize - counts.Len()
}

func (p LimitLedgerSize) isFull(counts *SubstringCounts) bool {
	return counts.Len() >= p.MaxSize
}

func (p LimitLedgerSize) shouldCleanup(counts *SubstringCounts) bool {
	return p.freeSpace(counts) < 2
}

func (p LimitLedgerSize) mergeThreshold(counts *SubstringCounts) int {
	freeSpace := p.freeSpace(counts)
	if freeSpace <= 0 {
		return math.MaxInt
	}
	return ceilDiv(p.MaxSize, freeSpace)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func collectCounts(counts *SubstringCounts) []int {
	out := make([]int, 0, counts.Len())
	counts.Each(func(_ Substring, count int) bool {
		out = append(out, count)
		return true
	})
	return out
}

// calcMedianCount returns the median of counts per the ledger's pruning
// rule: for a single entry it is that entry's own count; for two or more,
// it is the value at index len/2-1 of the ascending-sorted multiset.
func calcMedianCount(counts []int) int {
	if len(counts) == 1 {
		return counts[0]
	}
	sorted := make([]int, len(counts))
	copy(sorted, counts)
	sort.Ints(sorted)
	return sorted[len(sorted)/2-1]
}
