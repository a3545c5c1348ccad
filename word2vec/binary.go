package word2vec

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// float32Size is the payload size of one vector component.
const float32Size = 4

// ReadBinary parses the word2vec binary format: a "<vocab_size> <layer1_size>"
// header line, then vocab_size records of a space-terminated token followed by
// exactly layer1_size packed little-endian float32 values. Newline bytes
// inside a token position are dropped; some binary files separate records
// with '\n', some do not.
//
// It returns the tokens and the matrix in file order, so row i belongs to
// tokens[i].
func ReadBinary(r io.Reader) ([]string, [][]float32, error) {
	br := bufio.NewReader(r)
	rows, dim, err := readHeader(br)
	if err != nil {
		return nil, nil, err
	}

	words := make([]string, 0, rows)
	vectors := make([][]float32, rows)
	payload := make([]byte, dim*float32Size)
	for rec := 0; rec < rows; rec++ {
		word, err := readToken(br)
		if err != nil {
			return nil, nil, fmt.Errorf("record %d: %w", rec, err)
		}
		if _, err := io.ReadFull(br, payload); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, nil, fmt.Errorf("record %d (%q): %w", rec, word, ErrTruncated)
			}
			return nil, nil, err
		}
		vec := make([]float32, dim)
		for i := range vec {
			bits := binary.LittleEndian.Uint32(payload[i*float32Size:])
			vec[i] = math.Float32frombits(bits)
		}
		words = append(words, word)
		vectors[rec] = vec
	}
	return words, vectors, nil
}

// readToken consumes bytes until the terminating space, which is not part of
// the token. Newlines are dropped rather than terminating the token.
func readToken(br *bufio.Reader) (string, error) {
	var buf []byte
	for {
		ch, err := br.ReadByte()
		if err != nil {
			if err == io.EOF {
				return "", ErrTruncated
			}
			return "", err
		}
		if ch == ' ' {
			return string(buf), nil
		}
		if ch != '\n' {
			buf = append(buf, ch)
		}
	}
}

// readHeader parses the "<vocab_size> <layer1_size>" line shared by both
// format variants.
func readHeader(br *bufio.Reader) (rows, dim int, err error) {
	line, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, 0, err
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, strings.TrimSpace(line))
	}
	rows, errRows := strconv.Atoi(fields[0])
	dim, errDim := strconv.Atoi(fields[1])
	if errRows != nil || errDim != nil || rows < 0 || dim < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, strings.TrimSpace(line))
	}
	return rows, dim, nil
}
