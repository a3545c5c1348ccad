package store

import (
	"math"
	"testing"
)

func TestEncodeDecodeVector_RoundTrip(t *testing.T) {
	orig := []float32{0.0, 1.5, -2.25, 3.75, float32(math.Inf(-1))}

	b := EncodeVector(orig)
	if len(b) != len(orig)*4 {
		t.Fatalf("blob length = %d, want %d", len(b), len(orig)*4)
	}

	decoded, err := DecodeVector(b)
	if err != nil {
		t.Fatalf("DecodeVector failed: %v", err)
	}
	if len(decoded) != len(orig) {
		t.Fatalf("decoded length = %d, want %d", len(decoded), len(orig))
	}
	for i := range orig {
		if math.Float32bits(decoded[i]) != math.Float32bits(orig[i]) {
			t.Fatalf("decoded[%d] = %v, want %v", i, decoded[i], orig[i])
		}
	}
}

func TestEncodeDecodeVector_Empty(t *testing.T) {
	if b := EncodeVector(nil); len(b) != 0 {
		t.Fatalf("expected empty blob for nil vector, got len=%d", len(b))
	}
	vec, err := DecodeVector(nil)
	if err != nil {
		t.Fatalf("DecodeVector(nil) failed: %v", err)
	}
	if len(vec) != 0 {
		t.Fatalf("expected empty vector for nil blob, got len=%d", len(vec))
	}
}

func TestDecodeVector_BadLength(t *testing.T) {
	if _, err := DecodeVector([]byte{1, 2, 3}); err == nil {
		t.Fatalf("DecodeVector with 3 bytes succeeded, want error")
	}
}
