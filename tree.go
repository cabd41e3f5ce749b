package huffstring

import (
	"container/heap"
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman merge tree.
//
// A leaf has no children and carries the Symbol it stands for.  An internal
// node has exactly two children, carries InvalidSymbol, and its Freq is the
// sum of its children's.
type Node struct {
	Freq   uint64
	Symbol Symbol
	Left   *Node
	Right  *Node
}

// IsLeaf returns true iff this node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// String returns a compact representation of the subtree rooted at n.
func (n *Node) String() string {
	if n == nil {
		return "nil"
	}
	if n.IsLeaf() {
		return fmt.Sprintf("%d:%d", n.Symbol, n.Freq)
	}
	return fmt.Sprintf("(%s %s)", n.Left, n.Right)
}

var _ fmt.Stringer = (*Node)(nil)

// BuildTree counts the Symbols in seq and builds a merge tree from the
// counts.  It returns nil if seq is empty.  Every Symbol must lie in
// 0 .. MaxSymbol.
func BuildTree(seq []Symbol) *Node {
	return BuildTreeFromFrequencies(CountFrequencies(seq))
}

// BuildTreeFromFrequencies builds a merge tree by repeatedly combining the two
// live nodes with the lowest frequencies.  The first node removed becomes the
// left child and the second becomes the right child.  It returns nil if ft is
// empty, and a lone leaf if ft holds exactly one Symbol.  Every Symbol must
// lie in 0 .. MaxSymbol and have a non-zero count.
//
// Ties are broken deterministically: leaves come before internal nodes,
// leaves are ordered by Symbol, and internal nodes are ordered by when they
// were created.
func BuildTreeFromFrequencies(ft FrequencyTable) *Node {
	symbols := ft.Symbols()
	if len(symbols) == 0 {
		return nil
	}

	// Step 1: build a minheap of leaves.

	items := make([]rankedNode, 0, len(symbols))
	for _, symbol := range symbols {
		assert.Assertf(symbol >= 0, "invalid symbol %d", symbol)
		freq := ft[symbol]
		assert.Assertf(freq != 0, "symbol %d has frequency 0", symbol)
		items = append(items, rankedNode{
			node: &Node{Freq: freq, Symbol: symbol},
			rank: uint64(uint32(symbol)),
		})
	}

	h := nodeHeap{items}
	h.Init()

	// Step 2: pop two nodes, combine them into a new internal node, and
	// push that back onto the minheap.
	//
	// Internal nodes are ranked after every possible leaf, in order of
	// creation, so that equal frequencies never depend on map order.

	nextRank := uint64(1) << 32
	for h.Len() > 1 {
		a := heap.Pop(&h).(rankedNode)
		b := heap.Pop(&h).(rankedNode)

		parent := &Node{
			Freq:   a.node.Freq + b.node.Freq,
			Symbol: InvalidSymbol,
			Left:   a.node,
			Right:  b.node,
		}
		assert.Assertf(parent.Freq >= a.node.Freq, "frequency overflow: %d + %d", a.node.Freq, b.node.Freq)

		heap.Push(&h, rankedNode{node: parent, rank: nextRank})
		nextRank++
	}

	root := heap.Pop(&h).(rankedNode)
	return root.node
}

// type rankedNode + type nodeHeap {{{

type rankedNode struct {
	node *Node
	rank uint64
}

type nodeHeap struct {
	list []rankedNode
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Freq != b.node.Freq {
		return a.node.Freq < b.node.Freq
	}
	return a.rank < b.rank
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(rankedNode))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = rankedNode{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
