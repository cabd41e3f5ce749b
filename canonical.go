package huffstring

import (
	"sort"
)

// NewCanonicalTable constructs the canonical Huffman code for the given code
// lengths, per the algorithm in RFC 1951 Section 3.2.2: Symbols are sorted by
// (length, Symbol) and assigned consecutive code values, shifting left
// whenever the length grows.
//
// The lengths must describe a complete prefix-free code: every length must be
// at least 1, and the lengths must neither over-subscribe nor leave unused
// any part of the code space.  The only exception is a lone Symbol, which
// must have length 1 and is assigned the code "0".  An empty map yields an
// empty Table.
func NewCanonicalTable(sizes map[Symbol]int) (*Table, error) {
	sorted := make(bySize, 0, len(sizes))
	for symbol, size := range sizes {
		if symbol < 0 {
			return nil, invalidTablef("invalid symbol %d", symbol)
		}
		if size < 1 {
			return nil, invalidTablef("invalid bit length for symbol %d: %d", symbol, size)
		}
		sorted = append(sorted, symbolAndSize{symbol, size})
	}
	sorted.Sort()

	codes := make(CodeTable, len(sorted))
	switch len(sorted) {
	case 0:
		return NewTable(codes)

	case 1:
		// permit degenerate code with 1 symbol
		if item := sorted[0]; item.size != 1 {
			return nil, invalidTablef("degenerate Huffman code: lone symbol %d has bit length %d, expected 1", item.symbol, item.size)
		}
		codes[sorted[0].symbol] = "0"
		return NewTable(codes)
	}

	next := make([]byte, 0, sorted[len(sorted)-1].size)
	exhausted := false
	for _, item := range sorted {
		if exhausted {
			return nil, invalidTablef("over-subscribed Huffman code: no %d-bit code left for symbol %d", item.size, item.symbol)
		}
		for len(next) < item.size {
			next = append(next, '0')
		}
		codes[item.symbol] = string(next)
		exhausted = !incrementCode(next)
	}

	// forbid all other degenerate codes
	if !exhausted {
		return nil, invalidTablef("degenerate Huffman code: %q and above are unused", string(next))
	}

	return NewTable(codes)
}

// incrementCode adds one to the binary number held in code, in place.  It
// returns false if the addition overflowed, leaving code all zeros.
func incrementCode(code []byte) bool {
	for index := len(code) - 1; index >= 0; index-- {
		if code[index] == '0' {
			code[index] = '1'
			return true
		}
		code[index] = '0'
	}
	return false
}

// type symbolAndSize + type bySize {{{

type symbolAndSize struct {
	symbol Symbol
	size   int
}

type bySize []symbolAndSize

func (list bySize) Len() int {
	return len(list)
}

func (list bySize) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySize) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.size != b.size {
		return a.size < b.size
	}
	return a.symbol < b.symbol
}

func (list bySize) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySize(nil)

// }}}
