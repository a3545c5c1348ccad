package word2vec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

// writeBinary builds a word2vec binary fixture in memory.
func writeBinary(t *testing.T, words []string, vectors [][]float32) []byte {
	t.Helper()
	var buf bytes.Buffer
	dim := 0
	if len(vectors) > 0 {
		dim = len(vectors[0])
	}
	fmt.Fprintf(&buf, "%d %d\n", len(words), dim)
	for i, w := range words {
		buf.WriteString(w)
		buf.WriteByte(' ')
		for _, v := range vectors[i] {
			var b [4]byte
			binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
			buf.Write(b[:])
		}
	}
	return buf.Bytes()
}

func TestReadBinary_RoundTrip(t *testing.T) {
	words := []string{"the", "of", "and"}
	vectors := [][]float32{
		{1.0, -2.5, 3.25, 0.1},
		{0.0, float32(math.Inf(1)), -0.0, 1e-8},
		{42.42, -1e10, 7, 0.5},
	}
	data := writeBinary(t, words, vectors)

	gotWords, gotVectors, err := ReadBinary(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadBinary failed: %v", err)
	}
	if len(gotWords) != 3 {
		t.Fatalf("got %d words, want 3", len(gotWords))
	}
	for i, w := range words {
		if gotWords[i] != w {
			t.Fatalf("word[%d] = %q, want %q", i, gotWords[i], w)
		}
		for j, v := range vectors[i] {
			// Binary round-trip is bit-exact.
			if math.Float32bits(gotVectors[i][j]) != math.Float32bits(v) {
				t.Fatalf("vector[%d][%d] = %v (bits %x), want %v (bits %x)",
					i, j, gotVectors[i][j], math.Float32bits(gotVectors[i][j]), v, math.Float32bits(v))
			}
		}
	}
}

func TestReadBinary_NewlinesBeforeTokens(t *testing.T) {
	// Some binary files separate records with '\n'; the newline is dropped
	// and never becomes part of a token.
	words := []string{"dog", "cat"}
	vectors := [][]float32{{1, 2}, {3, 4}}
	plain := writeBinary(t, words, vectors)

	// Inject a newline before the second token.
	marker := []byte("cat ")
	idx := bytes.Index(plain, marker)
	if idx < 0 {
		t.Fatalf("fixture does not contain %q", marker)
	}
	data := append(append(append([]byte(nil), plain[:idx]...), '\n'), plain[idx:]...)

	gotWords, _, err := ReadBinary(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadBinary failed: %v", err)
	}
	if gotWords[1] != "cat" {
		t.Fatalf("word[1] = %q, want %q", gotWords[1], "cat")
	}
}

func TestReadBinary_ExactRecordLength(t *testing.T) {
	// A record for "dog" with layer1_size=4 consumes exactly 5 (token+space)
	// + 16 payload bytes; the next record must start right after.
	words := []string{"dog", "cat"}
	vectors := [][]float32{{1, 2, 3, 4}, {5, 6, 7, 8}}
	data := writeBinary(t, words, vectors)

	wantLen := len("2 4\n") + 2*(4+16+1)
	if len(data) != wantLen {
		t.Fatalf("fixture length = %d, want %d", len(data), wantLen)
	}
	gotWords, gotVectors, err := ReadBinary(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadBinary failed: %v", err)
	}
	if gotWords[1] != "cat" || gotVectors[1][0] != 5 {
		t.Fatalf("second record = (%q, %v), want (cat, [5 6 7 8])", gotWords[1], gotVectors[1])
	}
}

func TestReadBinary_TruncatedPayload(t *testing.T) {
	words := []string{"dog"}
	vectors := [][]float32{{1, 2, 3, 4}}
	data := writeBinary(t, words, vectors)

	// Drop the last payload byte: 15 of the required 16 remain.
	_, _, err := ReadBinary(bytes.NewReader(data[:len(data)-1]))
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("ReadBinary with short payload = %v, want ErrTruncated", err)
	}
}

func TestReadBinary_TruncatedToken(t *testing.T) {
	data := []byte("2 2\n")
	data = append(data, writeBinary(t, []string{"dog"}, [][]float32{{1, 2}})[len("1 2\n"):]...)
	// Second record is missing entirely.
	_, _, err := ReadBinary(bytes.NewReader(data))
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("ReadBinary with missing record = %v, want ErrTruncated", err)
	}
}

func TestReadHeader_Malformed(t *testing.T) {
	for _, input := range []string{"", "3\n", "3 2 1\n", "three two\n", "-1 2\n"} {
		_, _, err := ReadBinary(strings.NewReader(input))
		if !errors.Is(err, ErrMalformedHeader) {
			t.Fatalf("ReadBinary(%q) = %v, want ErrMalformedHeader", input, err)
		}
	}
}
