package gcc

// bitWriter packs bits into bytes most-significant-bit first. The final
// byte may be partially filled; finish reports how many of its bits are
// real so the reader can stop before the padding.
type bitWriter struct {
	buf   []byte
	cur   byte
	nbits uint8
}

// writeCode appends the low c.length bits of c.bits, most significant first.
func (w *bitWriter) writeCode(c bitCode) {
	for i := int(c.length) - 1; i >= 0; i-- {
		w.writeBit(byte(c.bits>>uint(i)) & 1)
	}
}

func (w *bitWriter) writeBit(bit byte) {
	w.cur = w.cur<<1 | bit
	w.nbits++
	if w.nbits == 8 {
		w.buf = append(w.buf, w.cur)
		w.cur = 0
		w.nbits = 0
	}
}

// finish pads the final byte with zero bits and returns the packed stream
// together with the number of valid bits in its last byte: 0 for an empty
// stream, 8 when the last byte is full, otherwise 1-7.
func (w *bitWriter) finish() (payload []byte, lastBits uint8) {
	if w.nbits > 0 {
		lastBits = w.nbits
		w.buf = append(w.buf, w.cur<<(8-w.nbits))
		w.cur = 0
		w.nbits = 0
	} else if len(w.buf) > 0 {
		lastBits = 8
	}
	return w.buf, lastBits
}

// bitReader yields the bits of a packed stream most-significant-bit first,
// honoring the valid-bit count of the final byte.
type bitReader struct {
	data     []byte
	lastBits uint8
	pos      int
	bit      uint8
}

func newBitReader(payload []byte, lastBits uint8) *bitReader {
	return &bitReader{data: payload, lastBits: lastBits}
}

// readBit returns the next bit, or ok=false once only padding remains.
func (r *bitReader) readBit() (bit byte, ok bool) {
	if r.pos >= len(r.data) {
		return 0, false
	}
	valid := uint8(8)
	if r.pos == len(r.data)-1 {
		valid = r.lastBits
	}
	if r.bit >= valid {
		return 0, false
	}
	bit = r.data[r.pos] >> (7 - r.bit) & 1
	r.bit++
	if r.bit == 8 {
		r.bit = 0
		r.pos++
	}
	return bit, true
}
