package word2vec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadText parses the word2vec text format: the common header line, then
// vocab_size lines of "<token> <f_1> ... <f_layer1_size>". A line with the
// wrong field count, or a field that does not parse as a float32, yields
// ErrMalformedRecord wrapped with the 0-based line number.
//
// It returns the tokens and the matrix in file order, so row i belongs to
// tokens[i].
func ReadText(r io.Reader) ([]string, [][]float32, error) {
	br := bufio.NewReader(r)
	rows, dim, err := readHeader(br)
	if err != nil {
		return nil, nil, err
	}

	sc := bufio.NewScanner(br)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	words := make([]string, 0, rows)
	vectors := make([][]float32, rows)
	for line := 0; line < rows; line++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, nil, err
			}
			return nil, nil, fmt.Errorf("line %d: %w", line, ErrTruncated)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != dim+1 {
			return nil, nil, fmt.Errorf("line %d: %w: got %d fields, want %d (is this really the text format?)",
				line, ErrMalformedRecord, len(fields), dim+1)
		}
		vec := make([]float32, dim)
		for i, field := range fields[1:] {
			v, err := strconv.ParseFloat(field, 32)
			if err != nil {
				return nil, nil, fmt.Errorf("line %d: %w: %q is not a float32",
					line, ErrMalformedRecord, field)
			}
			vec[i] = float32(v)
		}
		words = append(words, fields[0])
		vectors[line] = vec
	}
	return words, vectors, nil
}
