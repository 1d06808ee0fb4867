package encoding

import "testing"

func TestDecodeValidUTF8RoundTrips(t *testing.T) {
	data := []byte("héllo wörld")
	text, name := Decode(data)
	if name != UTF8 || text != string(data) {
		t.Fatalf("got %q/%v", text, name)
	}
}

func TestDecodeUTF8BOMDetected(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("hello")...)
	name, confidence := Detect(data)
	if name != UTF8 || confidence != 1.0 {
		t.Fatalf("got %v/%v", name, confidence)
	}
}

func TestDecodeInvalidUTF8FallsBackToLatin1(t *testing.T) {
	// 0xE9 is 'é' in Latin-1 but a truncated three-byte lead byte in UTF-8.
	data := []byte{'c', 'a', 'f', 0xE9}
	text, name := Decode(data)
	if name != Latin1 {
		t.Fatalf("expected latin-1 fallback, got %v", name)
	}
	if text != "café" {
		t.Fatalf("expected café, got %q", text)
	}
}

func TestDecodeNeverFailsOnGarbageBytes(t *testing.T) {
	data := []byte{0xFF, 0xFE, 0xFD, 'h', 'i'}
	// Looks like a UTF-16LE BOM (0xFF 0xFE) but the remaining bytes are
	// an odd-length, non-UTF-16 stream; the chain must still produce text
	// (the UTF-16 decode substitutes U+FFFD for the odd byte, and latin-1
	// accepts any byte) rather than erroring.
	text, _ := Decode(data)
	if text == "" {
		t.Fatalf("expected some decoded text, not empty")
	}
}
