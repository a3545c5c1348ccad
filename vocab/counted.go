package vocab

import (
	"fmt"
	"sort"
)

// Counted is a vocabulary carrying per-token frequency counts. Indices follow
// descending count; ties are broken lexicographically so construction is
// deterministic.
type Counted struct {
	words  []string
	index  map[string]int
	counts map[string]int
}

// NewCounted builds a counted vocabulary from a token to count mapping.
// Counts must be non-negative.
func NewCounted(counts map[string]int) (*Counted, error) {
	words := make([]string, 0, len(counts))
	for w, c := range counts {
		if c < 0 {
			return nil, fmt.Errorf("vocab: negative count %d for token %q", c, w)
		}
		words = append(words, w)
	}
	sort.Slice(words, func(a, b int) bool {
		ca, cb := counts[words[a]], counts[words[b]]
		if ca != cb {
			return ca > cb
		}
		return words[a] < words[b]
	})
	index := make(map[string]int, len(words))
	for i, w := range words {
		index[w] = i
	}
	kept := make(map[string]int, len(counts))
	for w, c := range counts {
		kept[w] = c
	}
	return &Counted{words: words, index: index, counts: kept}, nil
}

// Len returns the number of tokens.
func (c *Counted) Len() int { return len(c.words) }

// Index returns the dense index of token, or false when absent.
func (c *Counted) Index(token string) (int, bool) {
	i, ok := c.index[token]
	return i, ok
}

// Contains reports whether token is part of the vocabulary.
func (c *Counted) Contains(token string) bool {
	_, ok := c.index[token]
	return ok
}

// Words returns the tokens in index order (descending count).
func (c *Counted) Words() []string { return append([]string(nil), c.words...) }

// Count returns the frequency count recorded for token.
func (c *Counted) Count(token string) (int, bool) {
	n, ok := c.counts[token]
	return n, ok
}

// Remove deletes token and re-densifies the indices above it.
func (c *Counted) Remove(token string) error {
	i, ok := c.index[token]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, token)
	}
	c.words = append(c.words[:i], c.words[i+1:]...)
	delete(c.index, token)
	delete(c.counts, token)
	for j := i; j < len(c.words); j++ {
		c.index[c.words[j]] = j
	}
	return nil
}

// MostFrequent returns a new counted vocabulary holding the k tokens with the
// highest counts, in the same relative order.
func (c *Counted) MostFrequent(k int) (Vocabulary, error) {
	k, err := clampK(k, len(c.words))
	if err != nil {
		return nil, err
	}
	kept := make(map[string]int, k)
	for _, w := range c.words[:k] {
		kept[w] = c.counts[w]
	}
	return NewCounted(kept)
}

var _ Vocabulary = (*Counted)(nil)
