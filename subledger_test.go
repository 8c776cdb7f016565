package subledger_test

import (
	"testing"

	"github.com/tindandelion/subledger"
)

func roundTrip(t *testing.T, text string) {
	t.Helper()
	encoded, table := subledger.Encode(text)
	decoded, err := subledger.Decode(encoded, table)
	if err != nil {
		t.Fatalf("decode(%q): unexpected error: %v", text, err)
	}
	if decoded != text {
		t.Fatalf("round trip mismatch: want %q, got %q", text, decoded)
	}
}

func TestRoundTripASCII(t *testing.T) {
	roundTrip(t, "abc")
}

func TestRoundTripRepeatedSubstring(t *testing.T) {
	roundTrip(t, "abcabcabcabc")
}

func TestRoundTripUnicode(t *testing.T) {
	roundTrip(t, "こんにちはこんにちは世界世界")
}

func TestRoundTripParagraphUnderBothPolicies(t *testing.T) {
	text := "low low low low low lowest lowest newer newer newer newer newer newer wider wider wider new new"

	for _, tc := range []struct {
		name     string
		policy   subledger.LedgerPolicy
		selector subledger.SubstringSelector
	}{
		{"CaptureAll", subledger.CaptureAll{}, subledger.ByFrequency{EncodedSize: subledger.EncodedSize, NumStrings: subledger.NumStrings}},
		{"LimitLedgerSize", subledger.LimitLedgerSize{MaxSize: 65536}, subledger.ByFrequency{EncodedSize: subledger.EncodedSize, NumStrings: subledger.NumStrings}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			encoded, table, _ := subledger.EncodeWithPolicy(text, tc.policy, tc.selector)
			decoded, err := subledger.Decode(encoded, table)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if decoded != text {
				t.Fatalf("round trip mismatch: want %q, got %q", text, decoded)
			}
		})
	}
}

func TestEmptyInputRoundTrips(t *testing.T) {
	encoded, table := subledger.Encode("")
	if len(encoded) != 0 {
		t.Fatalf("want empty output, got %v", encoded)
	}
	if table.Len() != 0 {
		t.Fatalf("want empty dictionary, got len %d", table.Len())
	}
	decoded, err := subledger.Decode(encoded, table)
	if err != nil || decoded != "" {
		t.Fatalf("want empty string, got %q, %v", decoded, err)
	}
}

func TestSingleScalarEmitsOneLiteral(t *testing.T) {
	encoded, table := subledger.Encode("x")
	if string(encoded) != "x" {
		t.Fatalf("want literal x, got %v", encoded)
	}
	decoded, err := subledger.Decode(encoded, table)
	if err != nil || decoded != "x" {
		t.Fatalf("want x, got %q, %v", decoded, err)
	}
}

func TestAllDistinctScalarsProduceNoDictionary(t *testing.T) {
	text := "abcdefghij"
	encoded, table := subledger.Encode(text)
	if table.Len() != 0 {
		t.Fatalf("want empty dictionary (all counts == 1), got len %d", table.Len())
	}
	if string(encoded) != text {
		t.Fatalf("want pure literal passthrough, got %v", encoded)
	}
}

func TestByCompressionGainRoundTrips(t *testing.T) {
	text := "the quick brown fox the quick brown fox the quick brown fox"
	encoded, table, _ := subledger.EncodeWithPolicy(
		text,
		subledger.LimitLedgerSize{MaxSize: 1024},
		subledger.ByCompressionGain{EncodedSize: subledger.EncodedSize, NumStrings: subledger.NumStrings},
	)
	decoded, err := subledger.Decode(encoded, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded != text {
		t.Fatalf("round trip mismatch: want %q, got %q", text, decoded)
	}
}

func TestSelectedSubstringsMeetSoundnessInvariant(t *testing.T) {
	text := "banana banana banana bandana bandana"
	_, table := subledger.Encode(text)
	for i := 0; i < table.Len(); i++ {
		s := table.Get(i)
		if s.Len() <= subledger.EncodedSize {
			t.Fatalf("entry %q violates len > encodedSize", s)
		}
	}
}

func TestBoundedBlowup(t *testing.T) {
	text := "abcdefghijklmnopqrstuvwxyz"
	encoded, _ := subledger.Encode(text)
	if len(encoded) > 4*len(text) {
		t.Fatalf("encoded length %d exceeds 4x input length %d", len(encoded), len(text))
	}
}
