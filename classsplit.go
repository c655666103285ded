package gcc

// Mask symbols written by classSplit, one per input byte.
const (
	maskVowel     = 'V'
	maskConsonant = 'C'
	maskOther     = 'O'
)

// classSplit splits text into three streams: a mask tagging every byte as
// vowel, consonant, or other; the vowel bytes in order; and all remaining
// bytes in order. Case is preserved, classification is case-insensitive,
// and only ASCII letters count as letters. Consonants and non-letters
// share the second stream: the mask alone decides which stream each
// position is pulled from on join.
type classSplit struct{}

// Stream indices within the classSplit streamSet.
const (
	csMask = iota
	csVowels
	csOther
)

func (classSplit) split(data []byte) (*streamSet, error) {
	mask := make([]byte, len(data))
	var vowels, other []byte
	for i, b := range data {
		switch {
		case isVowel(b):
			mask[i] = maskVowel
			vowels = append(vowels, b)
		case isASCIILetter(b):
			mask[i] = maskConsonant
			other = append(other, b)
		default:
			mask[i] = maskOther
			other = append(other, b)
		}
	}
	return &streamSet{streams: [][]byte{mask, vowels, other}}, nil
}

// join rebuilds the original bytes by walking the mask and pulling the next
// byte from the vowel stream on a vowel tag, from the other stream on
// anything else. Stream lengths that do not line up with the mask's tag
// counts mean the container lied about itself.
func (classSplit) join(set *streamSet) ([]byte, error) {
	mask, vowels, other := set.streams[csMask], set.streams[csVowels], set.streams[csOther]
	out := make([]byte, 0, len(mask))
	iv, io := 0, 0
	for _, m := range mask {
		if m == maskVowel {
			if iv >= len(vowels) {
				return nil, ErrDecodeConsistency
			}
			out = append(out, vowels[iv])
			iv++
		} else {
			if io >= len(other) {
				return nil, ErrDecodeConsistency
			}
			out = append(out, other[io])
			io++
		}
	}
	if iv != len(vowels) || io != len(other) {
		return nil, ErrDecodeConsistency
	}
	return out, nil
}
