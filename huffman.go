package gcc

import (
	"container/heap"
	"math"
)

// frequencyTable holds per-symbol occurrence counts over the full 256-value
// byte domain. The container stores the counters as 32-bit integers, so
// counting fails rather than wrap once a symbol exceeds that range.
type frequencyTable [256]uint32

// countSymbols builds the frequency table for data.
func countSymbols(data []byte) (*frequencyTable, error) {
	var counts [256]uint64
	for _, b := range data {
		counts[b]++
	}
	var freq frequencyTable
	for sym, c := range counts {
		if c > math.MaxUint32 {
			return nil, ErrTooLarge
		}
		freq[sym] = uint32(c)
	}
	return &freq, nil
}

// total returns the number of symbols the table accounts for.
func (f *frequencyTable) total() uint64 {
	var n uint64
	for _, c := range f {
		n += uint64(c)
	}
	return n
}

// treeNode is one slot of a prefixTree arena. Leaves carry a symbol and
// have no children; internal nodes carry the combined weight of their
// subtrees.
type treeNode struct {
	weight uint64
	symbol int16 // 0-255 for leaves, -1 for internal nodes
	left   int32 // arena index, -1 on leaves
	right  int32
}

// prefixTree is a Huffman tree stored in a flat arena. Node indices double
// as construction sequence numbers, which is what makes tie-breaking
// reproducible: the merge queue orders nodes by (weight, index), leaves are
// inserted in ascending symbol order, and every merged parent is appended
// after all existing nodes. Encoder and decoder therefore derive the
// identical tree from the identical frequency table.
type prefixTree struct {
	nodes []treeNode
	root  int32
}

// mergeQueue is a min-heap of arena indices ordered by node weight,
// breaking ties on the lower index (earlier construction).
type mergeQueue struct {
	order []int32
	nodes []treeNode
}

func (q *mergeQueue) Len() int { return len(q.order) }

func (q *mergeQueue) Less(i, j int) bool {
	a, b := q.order[i], q.order[j]
	if q.nodes[a].weight != q.nodes[b].weight {
		return q.nodes[a].weight < q.nodes[b].weight
	}
	return a < b
}

func (q *mergeQueue) Swap(i, j int) { q.order[i], q.order[j] = q.order[j], q.order[i] }

func (q *mergeQueue) Push(x any) { q.order = append(q.order, x.(int32)) }

func (q *mergeQueue) Pop() any {
	old := q.order
	n := len(old)
	x := old[n-1]
	q.order = old[:n-1]
	return x
}

// buildTree constructs the prefix tree for freq. It returns nil when no
// symbol has a nonzero count. When exactly one symbol occurs, a zero-weight
// dummy leaf for the next byte value is added so the real symbol still gets
// a usable 1-bit code and the bit-count arithmetic stays well defined.
func buildTree(freq *frequencyTable) *prefixTree {
	t := &prefixTree{}
	for sym, c := range freq {
		if c > 0 {
			t.nodes = append(t.nodes, treeNode{
				weight: uint64(c),
				symbol: int16(sym),
				left:   -1,
				right:  -1,
			})
		}
	}
	if len(t.nodes) == 0 {
		return nil
	}
	if len(t.nodes) == 1 {
		dummy := (t.nodes[0].symbol + 1) % 256
		t.nodes = append(t.nodes, treeNode{symbol: dummy, left: -1, right: -1})
	}

	q := &mergeQueue{nodes: t.nodes}
	for i := range t.nodes {
		q.order = append(q.order, int32(i))
	}
	heap.Init(q)

	for q.Len() > 1 {
		left := heap.Pop(q).(int32)
		right := heap.Pop(q).(int32)
		t.nodes = append(t.nodes, treeNode{
			weight: t.nodes[left].weight + t.nodes[right].weight,
			symbol: -1,
			left:   left,
			right:  right,
		})
		q.nodes = t.nodes
		heap.Push(q, int32(len(t.nodes)-1))
	}
	t.root = heap.Pop(q).(int32)
	return t
}

// bitCode is the prefix code of one symbol: the low length bits of bits,
// most significant first.
type bitCode struct {
	bits   uint64
	length uint8
}

// codeTable maps each symbol to its prefix code. Symbols absent from the
// tree keep a zero-length code and must not be encoded.
type codeTable [256]bitCode

// codes derives the code table by root-to-leaf traversal: 0 for the left
// branch, 1 for the right. With 32-bit counters the deepest possible leaf
// sits well above 64 levels of headroom, so a uint64 pattern suffices.
func (t *prefixTree) codes() *codeTable {
	var table codeTable
	var walk func(idx int32, bits uint64, depth uint8)
	walk = func(idx int32, bits uint64, depth uint8) {
		n := t.nodes[idx]
		if n.left < 0 && n.right < 0 {
			table[n.symbol] = bitCode{bits: bits, length: depth}
			return
		}
		walk(n.left, bits<<1, depth+1)
		walk(n.right, bits<<1|1, depth+1)
	}
	walk(t.root, 0, 0)
	return &table
}

// encodeStream Huffman-codes data into a packed bitstream. It returns the
// frequency table the decoder needs to rebuild the tree, the valid-bit
// count of the final payload byte, and the payload itself.
func encodeStream(data []byte) (freq *frequencyTable, lastBits uint8, payload []byte, err error) {
	freq, err = countSymbols(data)
	if err != nil {
		return nil, 0, nil, err
	}
	tree := buildTree(freq)
	if tree == nil {
		return freq, 0, nil, nil
	}
	table := tree.codes()
	var w bitWriter
	for _, b := range data {
		w.writeCode(table[b])
	}
	payload, lastBits = w.finish()
	return freq, lastBits, payload, nil
}

// decodeStream rebuilds the prefix tree from freq and decodes exactly n
// symbols from payload. The payload size and lastBits are fully determined
// by freq, so any mismatch with what the container declares is a format
// error; a well-sized payload that still runs dry mid-code is reported as
// decode inconsistency.
func decodeStream(freq *frequencyTable, payload []byte, n uint64, lastBits uint8) ([]byte, error) {
	if freq.total() != n {
		return nil, errFormat("declared %d symbols, frequency table has %d", n, freq.total())
	}
	tree := buildTree(freq)
	if tree == nil {
		if len(payload) != 0 || lastBits != 0 {
			return nil, errFormat("payload present for empty stream")
		}
		return nil, nil
	}
	table := tree.codes()
	var totalBits uint64
	for sym, c := range freq {
		totalBits += uint64(c) * uint64(table[sym].length)
	}
	wantSize := (totalBits + 7) / 8
	wantLast := uint8(totalBits % 8)
	if wantLast == 0 {
		wantLast = 8
	}
	if uint64(len(payload)) != wantSize || lastBits != wantLast {
		return nil, errFormat("payload size %d bits %d, want %d bits %d",
			len(payload), lastBits, wantSize, wantLast)
	}

	out := make([]byte, 0, n)
	r := newBitReader(payload, lastBits)
	node := tree.root
	for uint64(len(out)) < n {
		bit, ok := r.readBit()
		if !ok {
			return nil, ErrDecodeConsistency
		}
		if bit == 0 {
			node = tree.nodes[node].left
		} else {
			node = tree.nodes[node].right
		}
		cur := tree.nodes[node]
		if cur.left < 0 && cur.right < 0 {
			out = append(out, byte(cur.symbol))
			node = tree.root
		}
	}
	return out, nil
}
