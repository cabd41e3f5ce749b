package huffstring

import (
	"sort"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol to its code, a non-empty string of '0' and '1'
// digits.  No code in a CodeTable is a prefix of another.
type CodeTable map[Symbol]string

// ReverseCodeTable maps each code back to its Symbol.  It is the exact
// inverse of a CodeTable.
type ReverseCodeTable map[string]Symbol

// Invert returns the ReverseCodeTable for this CodeTable.  Duplicate codes are
// not detected here; use NewTable for validation.
func (ct CodeTable) Invert() ReverseCodeTable {
	rt := make(ReverseCodeTable, len(ct))
	for symbol, code := range ct {
		rt[code] = symbol
	}
	return rt
}

// Invert returns the CodeTable for this ReverseCodeTable.
func (rt ReverseCodeTable) Invert() CodeTable {
	ct := make(CodeTable, len(rt))
	for code, symbol := range rt {
		ct[symbol] = code
	}
	return ct
}

// DeriveCodes walks the merge tree rooted at root and assigns each leaf the
// path that leads to it, with '0' for a left edge and '1' for a right edge.
//
// A tree that consists of a single leaf has an empty path to that leaf, which
// could never be told apart when decoding, so the leaf is given the code "0"
// instead.  A nil root yields two empty tables.
func DeriveCodes(root *Node) (CodeTable, ReverseCodeTable) {
	codes := make(CodeTable)
	reverse := make(ReverseCodeTable)

	record := func(symbol Symbol, code string) {
		_, dupe := codes[symbol]
		assert.Assertf(!dupe, "symbol %d appears in more than one leaf", symbol)
		codes[symbol] = code
		reverse[code] = symbol
	}

	if root == nil {
		return codes, reverse
	}
	if root.IsLeaf() {
		record(root.Symbol, "0")
		return codes, reverse
	}

	// Walk the tree with an explicit stack of internal nodes.  path always
	// holds the digits leading from the root to the node on top of the
	// stack.
	//
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		n *Node
		x byte
	}

	stack := make([]stackItem, 0, 16)
	path := make([]byte, 0, 16)

	processChild := func(parent *Node, child *Node, digit byte) {
		assert.Assertf(child != nil, "internal node %v is missing a child", parent)
		path = append(path, digit)
		if child.IsLeaf() {
			record(child.Symbol, string(path))
			path = path[:len(path)-1]
			return
		}
		stack = append(stack, stackItem{n: child})
	}

	stack = append(stack, stackItem{n: root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		n, x := top.n, top.x
		top.x++
		switch x {
		case 0:
			processChild(n, n.Left, '0')
		case 1:
			processChild(n, n.Right, '1')
		case 2:
			stack = stack[:len(stack)-1]
			if len(path) != 0 {
				path = path[:len(path)-1]
			}
		}
	}

	return codes, reverse
}

// checkCode reports why code cannot be used as a Huffman code, if it can't.
func checkCode(code string) error {
	if code == "" {
		return invalidTablef("empty code")
	}
	for index := 0; index < len(code); index++ {
		if ch := code[index]; ch != '0' && ch != '1' {
			return invalidTablef("code %q has non-binary digit %q at index %d", code, ch, index)
		}
	}
	return nil
}

// type byCode {{{

type byCode []string

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

var _ sort.Interface = byCode(nil)

// }}}
