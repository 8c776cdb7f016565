package subledger

import "testing"

func TestEncodeBytesLiteralOnly(t *testing.T) {
	table := NewEncodingTable(nil)
	got := EncodeBytes("abc", table)
	want := []byte{0x61, 0x62, 0x63}
	if string(got) != string(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestEncodeBytesWithReference(t *testing.T) {
	table := NewEncodingTable([]Substring{"abc"})
	got := EncodeBytes("abcabc", table)
	want := []byte{0xF5, 0x00, 0xF5, 0x00}
	if string(got) != string(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestEncodeBytesMixedLiteralsAndReferences(t *testing.T) {
	table := NewEncodingTable([]Substring{"abc", "def"})
	got := EncodeBytes("abcxyzdef", table)
	want := []byte{0xF5, 0x00, 0x78, 0x79, 0x7A, 0xF5, 0x01}
	if string(got) != string(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestEncodeBytesIndexBeyondFirstByte(t *testing.T) {
	entries := make([]Substring, 0, 258)
	// Pad the dictionary with 256 longer filler entries so "bb" and "cc"
	// land at positions 256 and 257 once sorted
	// by the canonical (length desc, lex asc) order.
	for i := 0; i < 256; i++ {
		entries = append(entries, syntheticLongSubstring(i))
	}
	entries = append(entries, "bb", "cc")

	table := NewEncodingTable(entries)
	bbIdx, _, ok := table.FindMatch("bbccabc")
	if !ok {
		t.Fatal("expected a match for bb")
	}
	if bbIdx < 256 {
		t.Fatalf("expected bb to land at index >= 256, got %d", bbIdx)
	}

	got := EncodeBytes("bbccabc", table)
	if len(got) < 4 {
		t.Fatalf("expected at least two references, got %v", got)
	}
	if got[0] < 0xF6 {
		t.Fatalf("expected high lead byte > 0xF5 for index >= 256, got %#x", got[0])
	}
}

func syntheticLongSubstring(i int) Substring {
	base := "zzzzzzzzzz"
	return Substring(base + string(rune('a'+(i%26))) + string(rune('A'+(i/26))))
}

func TestEncodeBytesEmptyInput(t *testing.T) {
	table := NewEncodingTable(nil)
	got := EncodeBytes("", table)
	if len(got) != 0 {
		t.Fatalf("want empty output, got %v", got)
	}
}

func TestEncodeBytesUnicode(t *testing.T) {
	table := NewEncodingTable([]Substring{"こんにちは", "世界"})
	text := "こんにちは世界"
	got := EncodeBytes(text, table)
	decoded, err := DecodeBytes(got, table)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if decoded != text {
		t.Fatalf("want %q, got %q", text, decoded)
	}
}

func TestEncodeBytesPanicsWhenTableTooLarge(t *testing.T) {
	entries := make([]Substring, NumStrings+1)
	for i := range entries {
		entries[i] = syntheticLongSubstring(i)
	}
	table := NewEncodingTable(entries)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for oversized dictionary")
		}
	}()
	EncodeBytes("abc", table)
}
