// Package gcc implements a lossless Huffman text codec with pluggable
// preprocessing transforms and a versioned binary container format.
//
// # Overview
//
// Every container version shares one entropy-coding core: per-stream byte
// frequencies drive a deterministic prefix-code tree, and symbols are
// packed MSB-first into a bitstream whose final-byte bit count is stored
// explicitly. The versions differ only in how raw text is turned into
// symbol streams first:
//
//   - v1 (ModeRaw): the raw bytes, coded directly.
//   - v2 (ModeClassSplit): a per-byte vowel/consonant/other mask plus the
//     vowel and remaining bytes as three independent streams.
//   - v3 (ModeSyllable): pseudo-syllable and non-letter block tokens,
//     replaced by vocabulary IDs; the ID stream is coded.
//   - v4 (ModeWord): like v3, but whole words instead of syllables.
//
// Tokenizing modes carry their vocabulary inside the container and are
// limited to 256 distinct tokens; richer inputs fail compression with
// ErrVocabularyOverflow rather than truncate.
//
// # Basic Usage
//
//	comp, err := gcc.Compress(data, gcc.ModeWord)
//	if err != nil {
//		// e.g. gcc.ErrVocabularyOverflow
//	}
//	orig, err := gcc.Decompress(comp)
//
// Compression is deterministic: the same input and mode always produce a
// byte-identical container. Decoding validates the container exhaustively
// (magic, version, declared counts, payload sizes) and never attempts
// partial recovery; see ErrFormat and ErrDecodeConsistency.
//
// # What This Is Not
//
// The codec is an experiment in preprocessing for entropy coding, not a
// competitive general-purpose compressor. Inputs are treated as raw bytes;
// only ASCII letters get special treatment by the splitting transforms.
package gcc
