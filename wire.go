package subledger

// Wire format constants: a reference is two bytes (H, L) with H in
// [0xF5, 0xFF]; decoded index = ((H - 0xF5) << 8) | L. The range
// 0xF5-0xFF never collides with a valid UTF-8 leading byte (0x00-0x7F,
// 0xC2-0xF4), so no escape sequence is needed.
const (
	IndexStart  = 0xF500
	IndexEnd    = 0xFFFF
	NumStrings  = IndexEnd - IndexStart // 2,815 addressable dictionary slots
	EncodedSize = 2

	refLeadMin = 0xF5
)
