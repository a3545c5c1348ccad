package vocab

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by vocabulary operations. Wrapped variants carry
// the offending token; match with errors.Is.
var (
	// ErrNotFound is returned when a token is not part of the vocabulary.
	ErrNotFound = errors.New("vocab: token not found")

	// ErrDuplicateToken is returned when a token list contains the same token
	// twice. Duplicates would break the token/index bijection, so construction
	// rejects them instead of keeping the first occurrence.
	ErrDuplicateToken = errors.New("vocab: duplicate token")
)

// Vocabulary maps tokens to dense indices in [0, Len()). Words() returns the
// tokens in index order, so Words()[i] is the token whose index is i.
type Vocabulary interface {
	// Len returns the number of tokens.
	Len() int

	// Index returns the dense index of token, or false when absent.
	Index(token string) (int, bool)

	// Contains reports whether token is part of the vocabulary.
	Contains(token string) bool

	// Words returns the tokens in index order. The returned slice is a copy.
	Words() []string

	// Remove deletes token and shifts the indices above it down by one so the
	// remaining indices stay dense. Returns ErrNotFound when absent.
	Remove(token string) error

	// MostFrequent returns a new, independent vocabulary holding the k most
	// frequent tokens, preserving their relative order. k is clamped to Len();
	// k <= 0 is an error.
	MostFrequent(k int) (Vocabulary, error)
}

// clampK validates a top-k request against a vocabulary of n tokens.
func clampK(k, n int) (int, error) {
	if k <= 0 {
		return 0, fmt.Errorf("vocab: k must be positive, got %d", k)
	}
	if k > n {
		k = n
	}
	return k, nil
}
