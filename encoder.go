package subledger

import (
	"fmt"
	"unicode/utf8"

	"github.com/tindandelion/subledger/internal/tlog"
)

// EncodeBytes serializes text against table, replacing every longest-match
// substring with a two-byte reference and emitting everything else as
// literal UTF-8 scalars. table must have no more than NumStrings entries;
// that invariant is the selector's responsibility to uphold, so a violation
// here is a caller/selector bug, not a recoverable input error.
func EncodeBytes(text string, table *EncodingTable) []byte {
	return encodeBytesTraced(text, table, tlog.Nop)
}

func encodeBytesTraced(text string, table *EncodingTable, logger tlog.Logger) []byte {
	if table.Len() > NumStrings {
		panic(fmt.Sprintf("subledger: %v: table has %d entries, max %d", ErrDictionaryTooLarge, table.Len(), NumStrings))
	}
	if logger == nil {
		logger = tlog.Nop
	}

	out := make([]byte, 0, len(text))
	tail := text
	for tail != "" {
		if idx, s, ok := table.FindMatch(tail); ok {
			ref := IndexStart + idx
			out = append(out, byte(ref>>8), byte(ref))
			logger.Debug("reference", "substring", string(s), "index", idx)
			tail = tail[s.Len():]
			continue
		}

		_, size := utf8.DecodeRuneInString(tail)
		out = append(out, tail[:size]...)
		tail = tail[size:]
	}
	return out
}
