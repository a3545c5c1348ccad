// Package vocab provides vocabularies: bijective mappings between tokens and
// dense row indices in [0, Len()). It includes:
//   - Vocabulary interface consumed by the embedding container
//   - Ordered: indices follow the order tokens were supplied in
//   - Counted: indices follow descending frequency, with per-token counts
package vocab
