package huffstring

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Decoder decodes bitstrings against a fixed ReverseCodeTable.  The table is
// compiled into a binary trie, so each digit is consumed exactly once and a
// dead end is detected at the digit that causes it.
//
// A Decoder is immutable once initialized and may be shared between
// goroutines.
type Decoder struct {
	nodes    []decoderNode
	numCodes int
	minSize  int
	maxSize  int
}

// NewDecoder is a convenience function that allocates and initializes a
// Decoder.
func NewDecoder(rt ReverseCodeTable) (*Decoder, error) {
	d := new(Decoder)
	if err := d.Init(rt); err != nil {
		return nil, err
	}
	return d, nil
}

// Init initializes this Decoder from a table of codes.
//
// The table must be prefix-free, every code must be a non-empty string of '0'
// and '1' digits, no two codes may name the same Symbol, and every Symbol
// must be valid.  An empty table is permitted; it decodes only the empty
// bitstring.
func (d *Decoder) Init(rt ReverseCodeTable) error {
	keys := make(byCode, 0, len(rt))
	for code := range rt {
		keys = append(keys, code)
	}

	// Shorter codes are inserted first, so a code that turns out to be the
	// prefix of another is always seen while walking the longer one.
	keys.Sort()

	nodes := make([]decoderNode, 1, 2*len(keys)+1)
	nodes[0] = decoderNode{symbol: InvalidSymbol}

	seen := make(map[Symbol]string, len(keys))
	var minSize, maxSize int
	for index, code := range keys {
		if err := checkCode(code); err != nil {
			return err
		}

		symbol := rt[code]
		if symbol < 0 {
			return invalidTablef("code %q maps to invalid symbol %d", code, symbol)
		}
		if other, found := seen[symbol]; found {
			return invalidTablef("symbol %d has two codes, %q and %q", symbol, other, code)
		}
		seen[symbol] = code

		size := len(code)
		if index == 0 {
			minSize, maxSize = size, size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}

		cur := int32(0)
		nodes[cur].observe(size, index == 0)
		for pos := 0; pos < size; pos++ {
			if nodes[cur].symbol != InvalidSymbol {
				return invalidTablef("code %q has code %q as a prefix", code, code[:pos])
			}

			digit := code[pos] - '0'
			next := nodes[cur].child[digit]
			if next == 0 {
				next = int32(len(nodes))
				nodes = append(nodes, decoderNode{symbol: InvalidSymbol, minSize: size, maxSize: size})
				nodes[cur].child[digit] = next
			} else {
				nodes[next].observe(size, false)
			}
			cur = next
		}

		if nodes[cur].symbol != InvalidSymbol || nodes[cur].child != [2]int32{} {
			return invalidTablef("code %q is a prefix of another code", code)
		}
		nodes[cur].symbol = symbol
	}

	*d = Decoder{
		nodes:    nodes,
		numCodes: len(keys),
		minSize:  minSize,
		maxSize:  maxSize,
	}
	return nil
}

// Decode splits bits into codes and returns the corresponding Symbols.
//
// Decoding fails with a *DecodeError if bits contains anything other than '0'
// and '1', if the digits read since the last complete code cannot begin any
// code, or if bits ends partway through a code.  No Symbols are returned on
// failure.
func (d *Decoder) Decode(bits string) ([]Symbol, error) {
	if bits == "" {
		return []Symbol{}, nil
	}
	if len(d.nodes) == 0 {
		return nil, malformedf(0, "", "no codes to match against")
	}

	capacity := len(bits)
	if d.minSize > 1 {
		capacity /= d.minSize
	}
	out := make([]Symbol, 0, capacity)

	cur := int32(0)
	start := 0
	for index := 0; index < len(bits); index++ {
		var digit byte
		switch ch := bits[index]; ch {
		case '0':
			digit = 0
		case '1':
			digit = 1
		default:
			return nil, malformedf(index, bits[start:index], "non-binary digit %q", ch)
		}

		next := d.nodes[cur].child[digit]
		if next == 0 {
			return nil, malformedf(index, bits[start:index+1], "no code begins with the pending digits")
		}
		cur = next

		if symbol := d.nodes[cur].symbol; symbol != InvalidSymbol {
			out = append(out, symbol)
			cur = 0
			start = index + 1
		}
	}

	if cur != 0 {
		dn := d.nodes[cur]
		have := len(bits) - start
		assert.Assertf(dn.minSize > have, "pending %q should have been a complete code", bits[start:])
		if dn.minSize == dn.maxSize {
			return nil, malformedf(len(bits), bits[start:], "truncated code, need %d more bits", dn.minSize-have)
		}
		return nil, malformedf(len(bits), bits[start:], "truncated code, need %d to %d more bits", dn.minSize-have, dn.maxSize-have)
	}

	return out, nil
}

// Len returns the number of codes this Decoder recognizes.
func (d *Decoder) Len() int {
	return d.numCodes
}

// MinSize is the bit length of the shortest legal code.
func (d *Decoder) MinSize() int {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d *Decoder) MaxSize() int {
	return d.maxSize
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.  Every prefix of every code is listed along with
// the Symbol it completes (or -1) and the shortest and longest code lengths
// reachable from it.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	type entry struct {
		index int32
		path  string
	}

	byPath := make(map[string]int32, len(d.nodes))
	keys := make(byCode, 0, len(d.nodes))
	if len(d.nodes) != 0 {
		queue := []entry{{0, ""}}
		for len(queue) != 0 {
			e := queue[0]
			queue = queue[1:]
			byPath[e.path] = e.index
			keys = append(keys, e.path)
			for digit, child := range d.nodes[e.index].child {
				if child != 0 {
					queue = append(queue, entry{child, e.path + string(rune('0'+digit))})
				}
			}
		}
	}
	keys.Sort()

	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	for _, path := range keys {
		dn := d.nodes[byPath[path]]
		fmt.Fprintf(&buf, "\tDecode(%q) = {%d, %d, %d}\n", path, dn.symbol, dn.minSize, dn.maxSize)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the output of Dump as a string.
func (d *Decoder) DebugString() string {
	var buf strings.Builder
	_, _ = d.Dump(&buf)
	return buf.String()
}

// String returns a brief description of this Decoder.
func (d *Decoder) String() string {
	return fmt.Sprintf("(Huffman decoder with %d codes, with lengths of %d .. %d bits)", d.numCodes, d.minSize, d.maxSize)
}

var _ fmt.Stringer = (*Decoder)(nil)

type decoderNode struct {
	// child holds trie indices; 0 means no child, as the root is never a
	// child.
	child   [2]int32
	symbol  Symbol
	minSize int
	maxSize int
}

func (dn *decoderNode) observe(size int, first bool) {
	if first {
		dn.minSize, dn.maxSize = size, size
		return
	}
	if dn.minSize > size {
		dn.minSize = size
	}
	if dn.maxSize < size {
		dn.maxSize = size
	}
}
