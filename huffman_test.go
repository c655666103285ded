package gcc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountSymbols(t *testing.T) {
	freq, err := countSymbols([]byte("abbccc"))
	require.NoError(t, err)
	require.Equal(t, uint32(1), freq['a'])
	require.Equal(t, uint32(2), freq['b'])
	require.Equal(t, uint32(3), freq['c'])
	require.Equal(t, uint64(6), freq.total())
}

func TestBuildTreeEmpty(t *testing.T) {
	freq, err := countSymbols(nil)
	require.NoError(t, err)
	require.Nil(t, buildTree(freq))
}

func TestSingleSymbolGetsOneBitCode(t *testing.T) {
	freq, err := countSymbols([]byte("aaaa"))
	require.NoError(t, err)
	table := buildTree(freq).codes()
	require.Equal(t, bitCode{bits: 1, length: 1}, table['a'])
}

func TestEqualWeightTieBreak(t *testing.T) {
	// Four symbols with equal counts. The merge queue prefers earlier
	// construction order, and leaves are created in ascending symbol
	// order, so the layout is fully determined. This is the wire-level
	// contract: changing it would break every existing container.
	freq, err := countSymbols([]byte("abcd"))
	require.NoError(t, err)
	table := buildTree(freq).codes()
	require.Equal(t, bitCode{bits: 0b00, length: 2}, table['a'])
	require.Equal(t, bitCode{bits: 0b01, length: 2}, table['b'])
	require.Equal(t, bitCode{bits: 0b10, length: 2}, table['c'])
	require.Equal(t, bitCode{bits: 0b11, length: 2}, table['d'])
}

func TestTreeDeterministic(t *testing.T) {
	data := []byte("sphinx of black quartz, judge my vow")
	freq, err := countSymbols(data)
	require.NoError(t, err)
	t1 := buildTree(freq).codes()
	t2 := buildTree(freq).codes()
	require.Equal(t, t1, t2)
}

func TestCodesArePrefixFree(t *testing.T) {
	freq, err := countSymbols([]byte("the quick brown fox jumps over the lazy dog"))
	require.NoError(t, err)
	table := buildTree(freq).codes()

	type code struct {
		bits   uint64
		length uint8
	}
	var codes []code
	for _, c := range table {
		if c.length > 0 {
			codes = append(codes, code{c.bits, c.length})
		}
	}
	for i, a := range codes {
		for j, b := range codes {
			if i == j {
				continue
			}
			if a.length > b.length {
				continue
			}
			// a must not be a prefix of b
			require.NotEqual(t, a.bits, b.bits>>(b.length-a.length),
				"code %0*b is a prefix of %0*b", int(a.length), a.bits, int(b.length), b.bits)
		}
	}
}

func TestStreamRoundTrip(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte("a"),
		[]byte("aaaa"),
		[]byte("abracadabra"),
		[]byte("the quick brown fox jumps over the lazy dog"),
		{0x00, 0xFF, 0x00, 0xFF, 0x80},
	}
	for _, in := range inputs {
		freq, lastBits, payload, err := encodeStream(in)
		require.NoError(t, err)
		out, err := decodeStream(freq, payload, uint64(len(in)), lastBits)
		require.NoError(t, err)
		require.Equal(t, string(in), string(out))
	}
}

func TestStreamRoundTripAllByteValues(t *testing.T) {
	in := make([]byte, 256)
	for i := range in {
		in[i] = byte(i)
	}
	freq, lastBits, payload, err := encodeStream(in)
	require.NoError(t, err)
	require.Equal(t, uint8(8), lastBits) // 256 symbols x 8-bit codes
	require.Len(t, payload, 256)
	out, err := decodeStream(freq, payload, 256, lastBits)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestDecodeStreamCountMismatch(t *testing.T) {
	freq, lastBits, payload, err := encodeStream([]byte("abracadabra"))
	require.NoError(t, err)
	_, err = decodeStream(freq, payload, 12, lastBits)
	require.ErrorIs(t, err, ErrFormat)
}

func TestDecodeStreamSizeMismatch(t *testing.T) {
	freq, lastBits, payload, err := encodeStream([]byte("abracadabra"))
	require.NoError(t, err)
	_, err = decodeStream(freq, payload[:len(payload)-1], 11, lastBits)
	require.ErrorIs(t, err, ErrFormat)
	_, err = decodeStream(freq, append(payload, 0), 11, lastBits)
	require.ErrorIs(t, err, ErrFormat)
}

func TestDecodeStreamExhaustedBits(t *testing.T) {
	// Codes: 'c'=0, 'a'=10, 'b'=11 (total 6 bits for "abcc"). A payload of
	// the right size whose bits decode to three long codes runs dry before
	// the fourth declared symbol.
	freq, _, _, err := encodeStream([]byte("abcc"))
	require.NoError(t, err)
	_, err = decodeStream(freq, []byte{0b1111_1100}, 4, 6)
	require.ErrorIs(t, err, ErrDecodeConsistency)
}

func TestDecodeStreamEmpty(t *testing.T) {
	freq, err := countSymbols(nil)
	require.NoError(t, err)
	out, err := decodeStream(freq, nil, 0, 0)
	require.NoError(t, err)
	require.Empty(t, out)

	_, err = decodeStream(freq, []byte{0}, 0, 8)
	require.ErrorIs(t, err, ErrFormat)
}
