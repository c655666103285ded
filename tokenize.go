package gcc

// tokenizer turns text into a stream of vocabulary IDs, one per token.
// Maximal runs of non-letters are always single tokens. Maximal runs of
// ASCII letters are either kept whole (words) or cut into pseudo-syllables:
// a syllable closes immediately after each vowel, and a trailing
// consonant-only remainder becomes its own token. Tokens are exact byte
// runs, so joining is plain concatenation in ID order.
type tokenizer struct {
	syllables bool
}

func (t tokenizer) split(data []byte) (*streamSet, error) {
	vocab := newVocabulary()
	var ids []byte
	emit := func(tok []byte) error {
		id, err := vocab.intern(tok)
		if err != nil {
			return err
		}
		ids = append(ids, id)
		return nil
	}

	for i := 0; i < len(data); {
		start := i
		if isASCIILetter(data[i]) {
			for i < len(data) && isASCIILetter(data[i]) {
				i++
			}
			if t.syllables {
				if err := emitSyllables(data[start:i], emit); err != nil {
					return nil, err
				}
				continue
			}
		} else {
			for i < len(data) && !isASCIILetter(data[i]) {
				i++
			}
		}
		if err := emit(data[start:i]); err != nil {
			return nil, err
		}
	}
	return &streamSet{streams: [][]byte{ids}, vocab: vocab}, nil
}

// emitSyllables cuts a letter-only run into pseudo-syllables. Not phonetic,
// just a deterministic cut rule shared by encoder and tests.
func emitSyllables(run []byte, emit func([]byte) error) error {
	start := 0
	for i, b := range run {
		if isVowel(b) {
			if err := emit(run[start : i+1]); err != nil {
				return err
			}
			start = i + 1
		}
	}
	if start < len(run) {
		return emit(run[start:])
	}
	return nil
}

// join concatenates the vocabulary entry of every decoded ID. Token
// boundaries are implicit in the bytes; nothing is re-tokenized.
func (t tokenizer) join(set *streamSet) ([]byte, error) {
	var out []byte
	for _, id := range set.streams[0] {
		tok, err := set.vocab.resolve(id)
		if err != nil {
			return nil, err
		}
		out = append(out, tok...)
	}
	return out, nil
}
