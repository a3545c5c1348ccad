package word2vec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/viant/wordvec/vocab"
)

// ReadVocab parses a word2vec vocabulary file (one "<token> <count>" line per
// token, as written by the C tool's -save-vocab flag) into a counted
// vocabulary. A line that does not split into exactly two fields yields
// ErrMalformedRecord; a count that is not a non-negative integer yields
// ErrInvalidCount. Both carry the 0-based line number.
func ReadVocab(r io.Reader) (*vocab.Counted, error) {
	sc := bufio.NewScanner(r)
	counts := make(map[string]int)
	line := 0
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: %w: got %d fields, want 2",
				line, ErrMalformedRecord, len(fields))
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("line %d: %w: %q", line, ErrInvalidCount, fields[1])
		}
		counts[fields[0]] = n
		line++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return vocab.NewCounted(counts)
}
