package word2vec

import (
	"io"
	"os"

	"github.com/viant/wordvec/embedding"
	"github.com/viant/wordvec/vocab"
)

// Load reads projection weights in word2vec format from vectors and returns
// them as an embedding. When binary is true the binary variant is parsed,
// otherwise the text variant.
//
// counts may be nil. When given, it is parsed as a "<token> <count>"
// vocabulary file and the embedding is backed by a counted vocabulary; the
// counts file must describe the same tokens in the same descending-frequency
// order the vectors were written in. Without counts, an ordered vocabulary is
// built from the parsed token list; a duplicate token in the source fails
// with vocab.ErrDuplicateToken.
//
// Load never closes the readers it is given; ownership stays with the
// caller.
func Load(vectors io.Reader, counts io.Reader, binary bool) (*embedding.Embedding, error) {
	var v vocab.Vocabulary
	if counts != nil {
		counted, err := ReadVocab(counts)
		if err != nil {
			return nil, err
		}
		v = counted
	}

	var (
		words []string
		rows  [][]float32
		err   error
	)
	if binary {
		words, rows, err = ReadBinary(vectors)
	} else {
		words, rows, err = ReadText(vectors)
	}
	if err != nil {
		return nil, err
	}

	if v == nil {
		ordered, err := vocab.NewOrdered(words)
		if err != nil {
			return nil, err
		}
		v = ordered
	}
	return embedding.New(v, rows)
}

// LoadFile opens path (and countsPath, when non-empty) and delegates to Load.
// Files opened here are closed on every return path. An empty countsPath
// means no vocabulary file.
func LoadFile(path, countsPath string, binary bool) (*embedding.Embedding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var counts io.Reader
	if countsPath != "" {
		cf, err := os.Open(countsPath)
		if err != nil {
			return nil, err
		}
		defer cf.Close()
		counts = cf
	}
	return Load(f, counts, binary)
}
