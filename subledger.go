// Package subledger implements a lossless text compressor that learns its
// dictionary from the input itself: a single pass over the text induces a
// ledger of frequently co-occurring substrings, a selector trims and ranks
// that ledger into a fixed-size table, and an encoder rewrites the text as
// a mixture of literal UTF-8 bytes and two-byte dictionary references.
package subledger

// defaultMaxLedgerSize bounds induction memory under the default policy.
const defaultMaxLedgerSize = 65536

// Encode compresses text using the default policy (LimitLedgerSize with a
// 65,536-entry ledger cap) and the default selector (rank by frequency).
// It is sugar for EncodeWithPolicy with those defaults.
func Encode(text string) ([]byte, *EncodingTable) {
	bytes, table, _ := EncodeWithPolicy(text, LimitLedgerSize{MaxSize: defaultMaxLedgerSize}, defaultSelector())
	return bytes, table
}

// EncodeWithPolicy compresses text under an explicit policy and selector,
// returning the encoded bytes, the dictionary those bytes reference, and
// the final ledger size (before selection trimmed it down) for callers
// that want visibility into induction behavior.
func EncodeWithPolicy(text string, policy LedgerPolicy, selector SubstringSelector, opts ...Option) ([]byte, *EncodingTable, int) {
	cfg := newConfig(opts...)

	ledger := buildTraced(text, policy, cfg.Logger)
	ledgerSize := ledger.Len()
	table := ledger.BuildEncodingTable(selector)
	bytes := encodeBytesTraced(text, table, cfg.Logger)

	return bytes, table, ledgerSize
}

// Decode reverses Encode/EncodeWithPolicy given the table they produced.
func Decode(data []byte, table *EncodingTable) (string, error) {
	return DecodeBytes(data, table)
}

func defaultSelector() SubstringSelector {
	return ByFrequency{EncodedSize: EncodedSize, NumStrings: NumStrings}
}
