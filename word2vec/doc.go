// Package word2vec loads embedding tables from the exchange format written by
// the original C word2vec tool, in both its binary and text variants, plus
// the "<token> <count>" vocabulary files produced by its -save-vocab flag.
//
// Both variants start with a text header "<vocab_size> <layer1_size>". The
// text variant follows with one whitespace-separated line per token; the
// binary variant interleaves a space-terminated token with a fixed-length
// payload of packed little-endian float32 values.
package word2vec
