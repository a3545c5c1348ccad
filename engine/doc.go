// Package engine provides a helper for opening SQLite databases with the
// pure-Go modernc.org/sqlite driver, shared by the embedding store and its
// tests. It intentionally keeps a thin surface.
package engine
