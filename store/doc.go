// Package store persists embedding tables. It includes:
//   - Vector BLOB codec (little-endian float32, the word2vec payload layout)
//   - SQLite: durable storage in a relational table, one row per token
//   - Bolt: durable storage in BoltDB buckets
//
// Both backends keep the vocabulary order and, for counted vocabularies, the
// per-token frequency counts, so a load reproduces the saved embedding.
package store
