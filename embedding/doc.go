// Package embedding provides the in-memory embedding table: a vocabulary
// paired with a dense matrix of float32 vectors where row i belongs to the
// token whose vocabulary index is i. It supports lookup, membership,
// iteration, deletion, and frequency-based trimming.
package embedding
