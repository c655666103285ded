package gcc

// streamSet carries the symbol streams a transform produced from (or needs
// to rebuild) the raw bytes, plus the vocabulary for tokenizing transforms.
// Stream order is fixed per transform and mirrored by its container layout.
type streamSet struct {
	streams [][]byte
	vocab   *vocabulary
}

// A transform turns raw bytes into one or more symbol streams before
// entropy coding, and joins decoded streams back into the original bytes.
// Container codecs select the transform by container version; nothing
// dispatches on runtime type.
type transform interface {
	split(data []byte) (*streamSet, error)
	join(set *streamSet) ([]byte, error)
}

// identity passes the raw bytes through as a single stream.
type identity struct{}

func (identity) split(data []byte) (*streamSet, error) {
	return &streamSet{streams: [][]byte{data}}, nil
}

func (identity) join(set *streamSet) ([]byte, error) {
	return set.streams[0], nil
}

func isASCIILetter(b byte) bool {
	return b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z'
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}
