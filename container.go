package gcc

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Mode selects the preprocessing transform, and with it the container
// format version the compressed output carries.
type Mode uint8

const (
	// ModeRaw Huffman-codes the input bytes as a single stream (container v1).
	ModeRaw Mode = 1
	// ModeClassSplit codes a vowel/consonant/other mask and the vowel and
	// remaining byte streams separately (container v2).
	ModeClassSplit Mode = 2
	// ModeSyllable codes vocabulary IDs of pseudo-syllable and non-letter
	// block tokens (container v3).
	ModeSyllable Mode = 3
	// ModeWord codes vocabulary IDs of whole-word and non-letter block
	// tokens (container v4).
	ModeWord Mode = 4
)

// String names the mode the way the original steps were numbered.
func (m Mode) String() string {
	switch m {
	case ModeRaw:
		return "raw"
	case ModeClassSplit:
		return "class-split"
	case ModeSyllable:
		return "syllables"
	case ModeWord:
		return "words"
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

const (
	containerMagic = "GCC"
	freqTableSize  = 256 * 4

	// headerV1Size is the fixed portion of a v1 container:
	// magic, version, N, frequency table, last-bits byte.
	headerV1Size = 3 + 1 + 8 + freqTableSize + 1
)

// Compress runs data through the mode's transform and entropy-codes the
// resulting streams into a self-describing container.
func Compress(data []byte, mode Mode) ([]byte, error) {
	c, err := codecFor(mode)
	if err != nil {
		return nil, err
	}
	return c.encode(data)
}

// Decompress restores the original bytes from a container of any supported
// version. The magic and version are validated before anything else is read.
func Decompress(comp []byte) ([]byte, error) {
	mode, r, err := parseHeader(comp)
	if err != nil {
		return nil, err
	}
	c, err := codecFor(mode)
	if err != nil {
		return nil, err
	}
	return c.decode(r)
}

// DecompressMode is Decompress restricted to one expected container
// version; a container of any other version is rejected as ErrBadVersion.
func DecompressMode(comp []byte, mode Mode) ([]byte, error) {
	got, r, err := parseHeader(comp)
	if err != nil {
		return nil, err
	}
	if got != mode {
		return nil, fmt.Errorf("%w: container is v%d, want v%d", ErrBadVersion, uint8(got), uint8(mode))
	}
	c, err := codecFor(mode)
	if err != nil {
		return nil, err
	}
	return c.decode(r)
}

// codec pairs a transform with a serialization layout. One implementation
// exists per container version.
type codec interface {
	encode(data []byte) ([]byte, error)
	decode(r *byteReader) ([]byte, error)
}

func codecFor(mode Mode) (codec, error) {
	switch mode {
	case ModeRaw:
		return rawCodec{}, nil
	case ModeClassSplit:
		return classSplitCodec{}, nil
	case ModeSyllable:
		return tokenCodec{version: ModeSyllable, tok: tokenizer{syllables: true}}, nil
	case ModeWord:
		return tokenCodec{version: ModeWord, tok: tokenizer{}}, nil
	}
	return nil, fmt.Errorf("%w: v%d", ErrBadVersion, uint8(mode))
}

func parseHeader(comp []byte) (Mode, *byteReader, error) {
	if len(comp) < len(containerMagic) || string(comp[:len(containerMagic)]) != containerMagic {
		return 0, nil, ErrBadMagic
	}
	if len(comp) < len(containerMagic)+1 {
		return 0, nil, errFormat("missing version byte")
	}
	mode := Mode(comp[len(containerMagic)])
	if _, err := codecFor(mode); err != nil {
		return 0, nil, err
	}
	return mode, &byteReader{buf: comp, pos: len(containerMagic) + 1}, nil
}

func appendHeader(out []byte, mode Mode) []byte {
	out = append(out, containerMagic...)
	return append(out, byte(mode))
}

func appendFreq(out []byte, freq *frequencyTable) []byte {
	for _, c := range freq {
		out = binary.BigEndian.AppendUint32(out, c)
	}
	return out
}

// byteReader is a cursor over the container bytes past the validated
// header. Every read that would pass the end fails as a format error.
type byteReader struct {
	buf []byte
	pos int
}

func (r *byteReader) need(n int) error {
	if n < 0 || len(r.buf)-r.pos < n {
		return errFormat("truncated at offset %d", r.pos)
	}
	return nil
}

func (r *byteReader) u8() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

func (r *byteReader) u16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v, nil
}

func (r *byteReader) u64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return v, nil
}

func (r *byteReader) take(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *byteReader) rest() []byte {
	b := r.buf[r.pos:]
	r.pos = len(r.buf)
	return b
}

func (r *byteReader) remaining() int { return len(r.buf) - r.pos }

func (r *byteReader) freq() (*frequencyTable, error) {
	raw, err := r.take(freqTableSize)
	if err != nil {
		return nil, err
	}
	var freq frequencyTable
	for i := range freq {
		freq[i] = binary.BigEndian.Uint32(raw[i*4:])
	}
	return &freq, nil
}

// encodedStream is one entropy-coded sub-stream awaiting serialization.
type encodedStream struct {
	freq     *frequencyTable
	lastBits uint8
	payload  []byte
}

// rawCodec implements the v1 layout:
//
//	MAGIC(3) VERSION(1)=1 N:u64 FREQ[256]:u32 LASTBITS:u8 DATA...
type rawCodec struct{}

func (rawCodec) encode(data []byte) ([]byte, error) {
	set, err := identity{}.split(data)
	if err != nil {
		return nil, err
	}
	freq, lastBits, payload, err := encodeStream(set.streams[0])
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, headerV1Size+len(payload))
	out = appendHeader(out, ModeRaw)
	out = binary.BigEndian.AppendUint64(out, uint64(len(data)))
	out = appendFreq(out, freq)
	out = append(out, lastBits)
	return append(out, payload...), nil
}

func (rawCodec) decode(r *byteReader) ([]byte, error) {
	n, err := r.u64()
	if err != nil {
		return nil, err
	}
	freq, err := r.freq()
	if err != nil {
		return nil, err
	}
	lastBits, err := r.u8()
	if err != nil {
		return nil, err
	}
	data, err := decodeStream(freq, r.rest(), n, lastBits)
	if err != nil {
		return nil, err
	}
	return identity{}.join(&streamSet{streams: [][]byte{data}})
}

// classSplitCodec implements the v2 layout:
//
//	MAGIC VERSION=2 N:u64 LEN_V:u64 LEN_C:u64
//	3 x { FREQ[256]:u32 LASTBITS:u8 SIZE:u64 }   (mask, vowels, other)
//	the three payloads in the same order
//
// The three sub-streams have no data dependency on each other, so both
// directions fan out one goroutine per stream; the join is the barrier.
type classSplitCodec struct{}

func (classSplitCodec) encode(data []byte) ([]byte, error) {
	set, err := classSplit{}.split(data)
	if err != nil {
		return nil, err
	}
	var (
		parts [3]encodedStream
		g     errgroup.Group
	)
	for i, stream := range set.streams {
		i, stream := i, stream
		g.Go(func() error {
			freq, lastBits, payload, err := encodeStream(stream)
			if err != nil {
				return err
			}
			parts[i] = encodedStream{freq: freq, lastBits: lastBits, payload: payload}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	size := 4 + 3*8 + 3*(freqTableSize+1+8)
	for _, p := range parts {
		size += len(p.payload)
	}
	out := make([]byte, 0, size)
	out = appendHeader(out, ModeClassSplit)
	out = binary.BigEndian.AppendUint64(out, uint64(len(data)))
	out = binary.BigEndian.AppendUint64(out, uint64(len(set.streams[csVowels])))
	out = binary.BigEndian.AppendUint64(out, uint64(len(set.streams[csOther])))
	for _, p := range parts {
		out = appendFreq(out, p.freq)
		out = append(out, p.lastBits)
		out = binary.BigEndian.AppendUint64(out, uint64(len(p.payload)))
	}
	for _, p := range parts {
		out = append(out, p.payload...)
	}
	return out, nil
}

func (classSplitCodec) decode(r *byteReader) ([]byte, error) {
	var counts [3]uint64
	for i := range counts {
		n, err := r.u64()
		if err != nil {
			return nil, err
		}
		counts[i] = n
	}
	var (
		parts    [3]encodedStream
		payloads [3]uint64
	)
	for i := range parts {
		freq, err := r.freq()
		if err != nil {
			return nil, err
		}
		lastBits, err := r.u8()
		if err != nil {
			return nil, err
		}
		size, err := r.u64()
		if err != nil {
			return nil, err
		}
		parts[i] = encodedStream{freq: freq, lastBits: lastBits}
		payloads[i] = size
	}
	for i := range parts {
		if payloads[i] > uint64(r.remaining()) {
			return nil, errFormat("stream %d payload of %d bytes exceeds buffer", i, payloads[i])
		}
		parts[i].payload, _ = r.take(int(payloads[i]))
	}
	if r.remaining() != 0 {
		return nil, errFormat("%d trailing bytes after payloads", r.remaining())
	}

	var (
		streams [3][]byte
		g       errgroup.Group
	)
	for i := range parts {
		i := i
		g.Go(func() error {
			decoded, err := decodeStream(parts[i].freq, parts[i].payload, counts[i], parts[i].lastBits)
			if err != nil {
				return err
			}
			streams[i] = decoded
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return classSplit{}.join(&streamSet{streams: streams[:]})
}

// tokenCodec implements the v3 and v4 layouts, which differ only in how
// letter runs become tokens:
//
//	MAGIC VERSION=3|4 N_TOKENS:u64 VOCAB_SIZE:u16
//	VOCAB_SIZE x { LEN:u16 TOKEN[LEN] }            (in ID order)
//	FREQ[256]:u32 LASTBITS:u8 DATA...              (the ID stream)
type tokenCodec struct {
	version Mode
	tok     tokenizer
}

func (c tokenCodec) encode(data []byte) ([]byte, error) {
	set, err := c.tok.split(data)
	if err != nil {
		return nil, err
	}
	ids := set.streams[0]
	freq, lastBits, payload, err := encodeStream(ids)
	if err != nil {
		return nil, err
	}
	out := appendHeader(nil, c.version)
	out = binary.BigEndian.AppendUint64(out, uint64(len(ids)))
	out = binary.BigEndian.AppendUint16(out, uint16(set.vocab.size()))
	for id := 0; id < set.vocab.size(); id++ {
		tok, _ := set.vocab.resolve(byte(id))
		out = binary.BigEndian.AppendUint16(out, uint16(len(tok)))
		out = append(out, tok...)
	}
	out = appendFreq(out, freq)
	out = append(out, lastBits)
	return append(out, payload...), nil
}

func (c tokenCodec) decode(r *byteReader) ([]byte, error) {
	nTokens, err := r.u64()
	if err != nil {
		return nil, err
	}
	vocabSize, err := r.u16()
	if err != nil {
		return nil, err
	}
	if vocabSize > maxVocabSize {
		return nil, errFormat("vocabulary size %d exceeds %d", vocabSize, maxVocabSize)
	}
	tokens := make([][]byte, vocabSize)
	for i := range tokens {
		length, err := r.u16()
		if err != nil {
			return nil, err
		}
		if tokens[i], err = r.take(int(length)); err != nil {
			return nil, err
		}
	}
	freq, err := r.freq()
	if err != nil {
		return nil, err
	}
	lastBits, err := r.u8()
	if err != nil {
		return nil, err
	}
	ids, err := decodeStream(freq, r.rest(), nTokens, lastBits)
	if err != nil {
		return nil, err
	}
	return c.tok.join(&streamSet{
		streams: [][]byte{ids},
		vocab:   vocabularyFromTokens(tokens),
	})
}
