package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/viant/wordvec/embedding"
	"github.com/viant/wordvec/vocab"
)

const embeddingsSchema = `
CREATE TABLE IF NOT EXISTS embeddings (
    idx INTEGER PRIMARY KEY,
    token TEXT NOT NULL UNIQUE,
    count INTEGER,
    vector BLOB NOT NULL
);
`

// counter is the optional capability of vocabularies that carry frequency
// counts (vocab.Counted satisfies it).
type counter interface {
	Count(token string) (int, bool)
}

// SQLite persists one embedding table per database table. Rows are keyed by
// the vocabulary index so a load reproduces the saved order; the count column
// is NULL for vocabularies without frequency counts.
type SQLite struct {
	db *sql.DB
}

// NewSQLite creates a SQLite-backed store and ensures the embeddings schema
// exists in the provided database.
func NewSQLite(db *sql.DB) (*SQLite, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is nil")
	}
	if _, err := db.Exec(embeddingsSchema); err != nil {
		return nil, err
	}
	return &SQLite{db: db}, nil
}

// Save replaces the table contents with emb's rows in a single transaction.
func (s *SQLite) Save(ctx context.Context, emb *embedding.Embedding) error {
	if emb == nil {
		return fmt.Errorf("store: embedding is nil")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM embeddings`); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO embeddings(idx, token, count, vector) VALUES(?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	counts, _ := emb.Vocabulary().(counter)
	idx := 0
	var insertErr error
	emb.Iterate(func(token string, vec []float32) bool {
		var count any
		if counts != nil {
			if c, ok := counts.Count(token); ok {
				count = c
			}
		}
		if _, err := stmt.ExecContext(ctx, idx, token, count, EncodeVector(vec)); err != nil {
			insertErr = err
			return false
		}
		idx++
		return true
	})
	if insertErr != nil {
		return insertErr
	}
	return tx.Commit()
}

// Load reads the table back into an embedding. When every row carries a
// count the result is backed by a counted vocabulary, otherwise by an
// ordered one.
func (s *SQLite) Load(ctx context.Context) (*embedding.Embedding, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT token, count, vector FROM embeddings ORDER BY idx`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		words   []string
		vectors [][]float32
	)
	counts := make(map[string]int)
	for rows.Next() {
		var (
			token string
			count sql.NullInt64
			blob  []byte
		)
		if err := rows.Scan(&token, &count, &blob); err != nil {
			return nil, err
		}
		vec, err := DecodeVector(blob)
		if err != nil {
			return nil, err
		}
		words = append(words, token)
		vectors = append(vectors, vec)
		if count.Valid {
			counts[token] = int(count.Int64)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return assemble(words, vectors, counts)
}

// assemble builds an embedding from loaded rows, restoring a counted
// vocabulary when counts cover every token. The counted vocabulary defines
// its own order, so rows are re-gathered by token to keep row i aligned with
// index i.
func assemble(words []string, vectors [][]float32, counts map[string]int) (*embedding.Embedding, error) {
	if len(words) > 0 && len(counts) == len(words) {
		counted, err := vocab.NewCounted(counts)
		if err != nil {
			return nil, err
		}
		byToken := make(map[string][]float32, len(words))
		for i, w := range words {
			byToken[w] = vectors[i]
		}
		ordered := make([][]float32, 0, counted.Len())
		for _, w := range counted.Words() {
			ordered = append(ordered, byToken[w])
		}
		return embedding.New(counted, ordered)
	}
	orderedVocab, err := vocab.NewOrdered(words)
	if err != nil {
		return nil, err
	}
	return embedding.New(orderedVocab, vectors)
}
