package vocab

import "fmt"

// Ordered is a vocabulary whose indices follow the order in which tokens were
// supplied. Files produced by the word2vec tool list tokens in descending
// frequency order, so for such sources the supply order doubles as a
// frequency ranking.
type Ordered struct {
	words []string
	index map[string]int
}

// NewOrdered builds an ordered vocabulary from a token list. The list must
// contain no duplicates; otherwise ErrDuplicateToken is returned with the
// position of the second occurrence.
func NewOrdered(words []string) (*Ordered, error) {
	index := make(map[string]int, len(words))
	for i, w := range words {
		if _, ok := index[w]; ok {
			return nil, fmt.Errorf("%w: %q at position %d", ErrDuplicateToken, w, i)
		}
		index[w] = i
	}
	return &Ordered{words: append([]string(nil), words...), index: index}, nil
}

// Len returns the number of tokens.
func (o *Ordered) Len() int { return len(o.words) }

// Index returns the dense index of token, or false when absent.
func (o *Ordered) Index(token string) (int, bool) {
	i, ok := o.index[token]
	return i, ok
}

// Contains reports whether token is part of the vocabulary.
func (o *Ordered) Contains(token string) bool {
	_, ok := o.index[token]
	return ok
}

// Words returns the tokens in index order.
func (o *Ordered) Words() []string { return append([]string(nil), o.words...) }

// Remove deletes token and re-densifies the indices above it.
func (o *Ordered) Remove(token string) error {
	i, ok := o.index[token]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, token)
	}
	o.words = append(o.words[:i], o.words[i+1:]...)
	delete(o.index, token)
	for j := i; j < len(o.words); j++ {
		o.index[o.words[j]] = j
	}
	return nil
}

// MostFrequent returns a new vocabulary holding the first k tokens, relying
// on the supply order being a descending frequency ranking.
func (o *Ordered) MostFrequent(k int) (Vocabulary, error) {
	k, err := clampK(k, len(o.words))
	if err != nil {
		return nil, err
	}
	return NewOrdered(o.words[:k])
}

var _ Vocabulary = (*Ordered)(nil)
