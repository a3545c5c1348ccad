package store

import (
	"encoding/binary"
	"fmt"

	"github.com/boltdb/bolt"

	"github.com/viant/wordvec/embedding"
)

// Bucket layout: vectors maps token to its BLOB, order maps the big-endian
// vocabulary index to the token (big-endian keys keep bolt's cursor order
// equal to index order), counts maps token to a big-endian uint64 and is only
// populated for counted vocabularies.
var (
	bucketVectors = []byte("vectors")
	bucketOrder   = []byte("order")
	bucketCounts  = []byte("counts")
)

// Bolt persists one embedding table per BoltDB file.
type Bolt struct {
	db *bolt.DB
}

// OpenBolt opens (creating if necessary) a BoltDB file at path.
func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	return &Bolt{db: db}, nil
}

// Close releases the underlying database file.
func (b *Bolt) Close() error { return b.db.Close() }

// Save replaces the stored table with emb's rows in a single update
// transaction.
func (b *Bolt) Save(emb *embedding.Embedding) error {
	if emb == nil {
		return fmt.Errorf("store: embedding is nil")
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketVectors, bucketOrder, bucketCounts} {
			if tx.Bucket(name) != nil {
				if err := tx.DeleteBucket(name); err != nil {
					return err
				}
			}
		}
		vectors, err := tx.CreateBucket(bucketVectors)
		if err != nil {
			return err
		}
		order, err := tx.CreateBucket(bucketOrder)
		if err != nil {
			return err
		}
		var countsBucket *bolt.Bucket
		counts, _ := emb.Vocabulary().(counter)
		if counts != nil {
			if countsBucket, err = tx.CreateBucket(bucketCounts); err != nil {
				return err
			}
		}

		idx := uint64(0)
		var putErr error
		emb.Iterate(func(token string, vec []float32) bool {
			if putErr = vectors.Put([]byte(token), EncodeVector(vec)); putErr != nil {
				return false
			}
			var key [8]byte
			binary.BigEndian.PutUint64(key[:], idx)
			if putErr = order.Put(key[:], []byte(token)); putErr != nil {
				return false
			}
			if countsBucket != nil {
				if c, ok := counts.Count(token); ok {
					var val [8]byte
					binary.BigEndian.PutUint64(val[:], uint64(c))
					if putErr = countsBucket.Put([]byte(token), val[:]); putErr != nil {
						return false
					}
				}
			}
			idx++
			return true
		})
		return putErr
	})
}

// Load reads the stored table back into an embedding, restoring a counted
// vocabulary when counts cover every token.
func (b *Bolt) Load() (*embedding.Embedding, error) {
	var (
		words   []string
		vectors [][]float32
	)
	counts := make(map[string]int)
	err := b.db.View(func(tx *bolt.Tx) error {
		order := tx.Bucket(bucketOrder)
		vecs := tx.Bucket(bucketVectors)
		if order == nil || vecs == nil {
			return fmt.Errorf("store: no embedding saved in this database")
		}
		countsBucket := tx.Bucket(bucketCounts)
		return order.ForEach(func(_, token []byte) error {
			blob := vecs.Get(token)
			if blob == nil {
				return fmt.Errorf("store: token %q has no vector", token)
			}
			vec, err := DecodeVector(blob)
			if err != nil {
				return err
			}
			words = append(words, string(token))
			vectors = append(vectors, vec)
			if countsBucket != nil {
				if val := countsBucket.Get(token); len(val) == 8 {
					counts[string(token)] = int(binary.BigEndian.Uint64(val))
				}
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return assemble(words, vectors, counts)
}
