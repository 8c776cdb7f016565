package subledger

import (
	"unicode/utf8"

	"github.com/tindandelion/subledger/internal/tlog"
)

// Build drives a single pass over text, inducing a SubstringLedger governed
// by policy. This is the only place a ledger is mutated; once Build
// returns, the ledger is ready to be handed to a SubstringSelector.
func Build(text string, policy LedgerPolicy) *SubstringLedger {
	return buildTraced(text, policy, nil)
}

func buildTraced(text string, policy LedgerPolicy, logger tlog.Logger) *SubstringLedger {
	state := &buildState{tail: text, ledger: NewSubstringLedger(policy), logger: logger}
	for state.tail != "" {
		state.step()
	}
	return state.ledger
}

// buildState carries the three pieces of state a single-pass induction
// needs: the unconsumed tail of the input, the ledger under construction,
// and an optional carry — a previously-resolved match whose processing was
// deferred to the next step so it doesn't get looked up twice.
type buildState struct {
	tail   string
	ledger *SubstringLedger
	carry  *SubstringCount
	logger tlog.Logger
}

func (st *buildState) log() tlog.Logger {
	if st.logger == nil {
		return tlog.Nop
	}
	return st.logger
}

func (st *buildState) step() {
	m, ok := st.resolveMatch()
	if !ok {
		st.consumeSingleRune()
		return
	}
	st.applyMatch(m)
}

func (st *buildState) resolveMatch() (SubstringCount, bool) {
	if st.carry != nil {
		m := *st.carry
		st.carry = nil
		return m, true
	}
	return st.ledger.FindLongestMatch(st.tail)
}

// applyMatch implements step 3 of a build step: increment the match,
// advance past it, look ahead for the next match to carry forward, and
// merge the two matches into a new ledger entry when the policy allows it.
func (st *buildState) applyMatch(m SubstringCount) {
	s, c := m.Value, m.Count
	st.ledger.IncrementCount(s)

	rest := st.tail[s.Len():]
	follow, followOK := st.ledger.FindLongestMatch(rest)
	if followOK {
		st.carry = &follow
	} else {
		st.carry = nil
	}

	if followOK && st.ledger.ShouldMerge(c, follow.Count) {
		merged := s.Concat(follow.Value)
		st.log().Debug("merge", "x", string(s), "y", string(follow.Value), "into", string(merged))
		st.ledger.IncrementCount(merged)

		// Cleanup triggered by the insert above may have evicted the
		// substring we just carried forward.
		if !st.ledger.Contains(follow.Value) {
			st.log().Debug("carry evicted by cleanup", "substring", string(follow.Value))
			st.carry = nil
		}
	}

	st.tail = rest
}

func (st *buildState) consumeSingleRune() {
	r, size := utf8.DecodeRuneInString(st.tail)
	st.ledger.IncrementCount(substringFromRune(r))
	st.tail = st.tail[size:]
	st.carry = nil
}
