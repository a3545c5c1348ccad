package embedding

import (
	"errors"
	"fmt"

	"github.com/viant/wordvec/vocab"
)

// ErrDimensionMismatch is returned when a vocabulary and a vector matrix
// disagree on the number of rows, or when the matrix rows are ragged.
var ErrDimensionMismatch = errors.New("embedding: vocabulary and vector shape mismatch")

// Embedding maps a vocabulary to d-dimensional points. Row i of the matrix is
// the vector of the token whose vocabulary index is i; every mutating
// operation maintains that correspondence.
type Embedding struct {
	vocab   vocab.Vocabulary
	vectors [][]float32
	dim     int
}

// New validates that the vocabulary and matrix agree and wraps them in an
// Embedding. The matrix is used as-is, not copied; the caller hands over
// ownership.
func New(v vocab.Vocabulary, vectors [][]float32) (*Embedding, error) {
	if v == nil {
		return nil, fmt.Errorf("embedding: vocabulary is nil")
	}
	if v.Len() != len(vectors) {
		return nil, fmt.Errorf("%w: vocabulary has %d tokens but %d vector rows",
			ErrDimensionMismatch, v.Len(), len(vectors))
	}
	dim := 0
	if len(vectors) > 0 {
		dim = len(vectors[0])
	}
	for i := range vectors {
		if len(vectors[i]) != dim {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d",
				ErrDimensionMismatch, i, len(vectors[i]), dim)
		}
	}
	return &Embedding{vocab: v, vectors: vectors, dim: dim}, nil
}

// Get returns the vector for token. The returned slice is the stored row, not
// a copy. Absent tokens yield an error matching vocab.ErrNotFound.
func (e *Embedding) Get(token string) ([]float32, error) {
	i, ok := e.vocab.Index(token)
	if !ok {
		return nil, fmt.Errorf("%w: %q", vocab.ErrNotFound, token)
	}
	return e.vectors[i], nil
}

// Contains reports whether token has a vector.
func (e *Embedding) Contains(token string) bool { return e.vocab.Contains(token) }

// Len returns the number of tokens.
func (e *Embedding) Len() int { return e.vocab.Len() }

// Dim returns the vector dimensionality.
func (e *Embedding) Dim() int { return e.dim }

// Shape returns the matrix dimensions: rows (tokens) and columns (vector
// dimensionality).
func (e *Embedding) Shape() (rows, cols int) { return len(e.vectors), e.dim }

// Words returns the tokens in vocabulary order.
func (e *Embedding) Words() []string { return e.vocab.Words() }

// Vocabulary returns the owned vocabulary.
func (e *Embedding) Vocabulary() vocab.Vocabulary { return e.vocab }

// Remove deletes token and its vector row, shifting the rows above it so row
// i stays aligned with vocabulary index i. Cost is linear in the vocabulary
// size; avoid calling it for many tokens in a loop.
func (e *Embedding) Remove(token string) error {
	i, ok := e.vocab.Index(token)
	if !ok {
		return fmt.Errorf("%w: %q", vocab.ErrNotFound, token)
	}
	if err := e.vocab.Remove(token); err != nil {
		return err
	}
	e.vectors = append(e.vectors[:i], e.vectors[i+1:]...)
	return nil
}

// Iterate calls fn for each (token, vector) pair in vocabulary order until fn
// returns false. The sequence is re-derived from current state, so iteration
// can be restarted at any time.
func (e *Embedding) Iterate(fn func(token string, vector []float32) bool) {
	for i, w := range e.vocab.Words() {
		if !fn(w, e.vectors[i]) {
			return
		}
	}
}

// MostFrequent returns a new, independent embedding restricted to the k most
// frequent tokens. The receiver is left untouched; the returned instance
// shares no rows with it.
func (e *Embedding) MostFrequent(k int) (*Embedding, error) {
	v, rows, err := e.mostFrequent(k)
	if err != nil {
		return nil, err
	}
	return &Embedding{vocab: v, vectors: rows, dim: e.dim}, nil
}

// MostFrequentInPlace trims the receiver to the k most frequent tokens.
func (e *Embedding) MostFrequentInPlace(k int) error {
	v, rows, err := e.mostFrequent(k)
	if err != nil {
		return err
	}
	e.vocab, e.vectors = v, rows
	return nil
}

func (e *Embedding) mostFrequent(k int) (vocab.Vocabulary, [][]float32, error) {
	v, err := e.vocab.MostFrequent(k)
	if err != nil {
		return nil, nil, err
	}
	words := v.Words()
	rows := make([][]float32, len(words))
	for i, w := range words {
		src, err := e.Get(w)
		if err != nil {
			return nil, nil, err
		}
		rows[i] = append([]float32(nil), src...)
	}
	return v, rows, nil
}
