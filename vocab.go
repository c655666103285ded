package gcc

import "bytes"

const (
	// maxVocabSize caps the number of distinct tokens a tokenizing mode may
	// produce: token IDs must fit the byte-valued symbol space.
	maxVocabSize = 256
	// maxTokenLen caps a single token at what its 16-bit length prefix can
	// describe.
	maxTokenLen = 0xFFFF
)

// vocabulary is the bijection between tokens and small integer IDs. IDs are
// assigned in order of first occurrence during a single forward pass; after
// that pass (or after deserialization) the vocabulary is read-only.
type vocabulary struct {
	tokens [][]byte
	ids    map[string]byte
}

func newVocabulary() *vocabulary {
	return &vocabulary{ids: make(map[string]byte)}
}

// vocabularyFromTokens wraps tokens read back from a container. The reverse
// index is not built: decoding only resolves IDs.
func vocabularyFromTokens(tokens [][]byte) *vocabulary {
	return &vocabulary{tokens: tokens}
}

// intern returns the ID of tok, assigning the next free one on first sight.
// The token bytes are copied, so tok may alias the caller's input buffer.
func (v *vocabulary) intern(tok []byte) (byte, error) {
	if id, ok := v.ids[string(tok)]; ok {
		return id, nil
	}
	if len(v.tokens) >= maxVocabSize {
		return 0, ErrVocabularyOverflow
	}
	if len(tok) > maxTokenLen {
		return 0, ErrTokenTooLong
	}
	id := byte(len(v.tokens))
	v.tokens = append(v.tokens, bytes.Clone(tok))
	v.ids[string(tok)] = id
	return id, nil
}

// resolve returns the token for id. An ID beyond the built range means the
// container was corrupted or produced by something else entirely.
func (v *vocabulary) resolve(id byte) ([]byte, error) {
	if int(id) >= len(v.tokens) {
		return nil, ErrDecodeConsistency
	}
	return v.tokens[id], nil
}

func (v *vocabulary) size() int { return len(v.tokens) }
