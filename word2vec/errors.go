package word2vec

import "errors"

// Sentinel errors for format violations. Wrapped variants carry the 0-based
// record or line number; match with errors.Is. I/O errors from the underlying
// source are propagated unchanged.
var (
	// ErrMalformedHeader is returned when the first line is not exactly two
	// decimal integers.
	ErrMalformedHeader = errors.New("word2vec: malformed header")

	// ErrMalformedRecord is returned when a text record does not split into
	// token plus layer1_size floats, or when a vocabulary line does not split
	// into token plus count.
	ErrMalformedRecord = errors.New("word2vec: malformed record")

	// ErrInvalidCount is returned when a vocabulary file count is not a
	// non-negative integer.
	ErrInvalidCount = errors.New("word2vec: invalid count")

	// ErrTruncated is returned when the input ends before the number of
	// records promised by the header has been read. Short binary payloads are
	// never zero-padded.
	ErrTruncated = errors.New("word2vec: truncated input")
)
