package subledger

// SubstringLedger owns a SubstringCounts map and the policy governing its
// growth. The Builder is its only mutator; once induction finishes, the
// ledger is handed to a SubstringSelector and drained into an EncodingTable.
type SubstringLedger struct {
	counts *SubstringCounts
	policy LedgerPolicy
}

// NewSubstringLedger returns an empty ledger governed by policy.
func NewSubstringLedger(policy LedgerPolicy) *SubstringLedger {
	return &SubstringLedger{counts: NewSubstringCounts(), policy: policy}
}

// Len reports the number of distinct substrings currently tracked.
func (l *SubstringLedger) Len() int {
	return l.counts.Len()
}

// Contains reports whether s has an entry in the ledger.
func (l *SubstringLedger) Contains(s Substring) bool {
	return l.counts.ContainsKey(s)
}

// FindLongestMatch delegates to the underlying counts map.
func (l *SubstringLedger) FindLongestMatch(text string) (SubstringCount, bool) {
	return l.counts.FindMatch(text)
}

// ShouldMerge delegates to the policy.
func (l *SubstringLedger) ShouldMerge(xCount, yCount int) bool {
	return l.policy.ShouldMerge(xCount, yCount, l.counts)
}

// IncrementCount bumps s's count if present; otherwise it runs the policy's
// cleanup and inserts s fresh with count 1. Growth events are exactly the
// points at which cleanup-driven eviction can occur.
func (l *SubstringLedger) IncrementCount(s Substring) {
	if ptr := l.counts.GetCountMutPtr(s); ptr != nil {
		*ptr++
		return
	}
	l.policy.Cleanup(l.counts)
	l.counts.Insert(s, 1)
}

// BuildEncodingTable hands the ledger's counts to selector and wraps the
// result in an EncodingTable. The ledger itself is left unchanged.
func (l *SubstringLedger) BuildEncodingTable(selector SubstringSelector) *EncodingTable {
	return NewEncodingTable(selector.Select(l.counts))
}
