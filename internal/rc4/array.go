package rc4

import (
	"fmt"

	"github.com/pkg/errors"

	"rc4sym/internal/smt"
)

// node is the tagged leaf/fork union backing the array. A leaf holds
// one byte term; an interior node holds two congruent subtrees.
type node struct {
	leaf  *smt.BitVec
	left  *node
	right *node
}

// Array is a fixed-size byte array addressable by a symbolic index,
// backed by a perfectly balanced binary tree of depth log2(size).
// All operations are persistent: a write returns a new tree sharing
// every untouched subtree with the original.
type Array struct {
	size  int
	depth int
	root  *node
}

// NewArray builds an array of the given power-of-two size whose entry
// at position i holds the concrete byte i.
func NewArray(size int) (*Array, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, errors.Errorf("array size %d is not a power of two", size)
	}
	depth := 0
	for 1<<depth < size {
		depth++
	}
	if depth > smt.ByteSize {
		return nil, errors.Errorf("array size %d does not fit a byte index", size)
	}
	return &Array{
		size:  size,
		depth: depth,
		root:  buildNode(0, size),
	}, nil
}

func buildNode(lo, n int) *node {
	if n == 1 {
		return &node{leaf: smt.NewByteVal(int64(lo))}
	}
	half := n / 2
	return &node{
		left:  buildNode(lo, half),
		right: buildNode(lo+half, half),
	}
}

func (a *Array) Size() int {
	return a.size
}

// indexBits decomposes the index most-significant bit first and keeps
// the low depth bits, so indexing wraps modulo the array size.
func (a *Array) indexBits(index *smt.BitVec) []*smt.Bool {
	bits := index.Bits()
	if len(bits) < a.depth {
		panic(fmt.Sprintf("index width %d too narrow for array of %d", len(bits), a.size))
	}
	return bits[len(bits)-a.depth:]
}

// Read resolves the entry at index. A concrete index walks one path;
// a symbolic index yields a selection chain covering every leaf the
// index could resolve to.
func (a *Array) Read(index *smt.BitVec) *smt.BitVec {
	return readNode(a.root, a.indexBits(index))
}

func readNode(n *node, bits []*smt.Bool) *smt.BitVec {
	if n.leaf != nil {
		return n.leaf
	}
	b := bits[0]
	if !b.IsSymbolic() {
		if b.IsTrue() {
			return readNode(n.right, bits[1:])
		}
		return readNode(n.left, bits[1:])
	}
	return smt.Ite(b, readNode(n.right, bits[1:]), readNode(n.left, bits[1:]))
}

// Write stores value at index and returns the updated array. A
// concrete index copies only the path to the target leaf; a symbolic
// index threads the accumulated path condition down both branches and
// resolves it in a conditional update at each reachable leaf.
func (a *Array) Write(index, value *smt.BitVec) *Array {
	return &Array{
		size:  a.size,
		depth: a.depth,
		root:  writeNode(a.root, a.indexBits(index), value, nil),
	}
}

// cond is the path condition gathered from symbolic bits so far; nil
// while the descent is fully concrete.
func writeNode(n *node, bits []*smt.Bool, value *smt.BitVec, cond *smt.Bool) *node {
	if n.leaf != nil {
		if cond == nil {
			return &node{leaf: value}
		}
		return &node{leaf: smt.Ite(cond, value, n.leaf)}
	}
	b := bits[0]
	if !b.IsSymbolic() {
		if b.IsTrue() {
			return &node{
				left:  n.left,
				right: writeNode(n.right, bits[1:], value, cond),
			}
		}
		return &node{
			left:  writeNode(n.left, bits[1:], value, cond),
			right: n.right,
		}
	}
	condLeft, condRight := b.Not(), b
	if cond != nil {
		condLeft = cond.And(condLeft)
		condRight = cond.And(condRight)
	}
	return &node{
		left:  writeNode(n.left, bits[1:], value, condLeft),
		right: writeNode(n.right, bits[1:], value, condRight),
	}
}

// Merge combines two arrays pointwise: entry i of the result is a when
// cond holds and b otherwise. Both arrays must have been built for the
// same size; divergent shapes mean the construction discipline was
// broken and there is nothing sensible to recover.
func Merge(cond *smt.Bool, a, b *Array) *Array {
	if a.size != b.size {
		panic(fmt.Sprintf("merge of incongruent arrays: size %d vs %d", a.size, b.size))
	}
	if !cond.IsSymbolic() {
		if cond.IsTrue() {
			return a
		}
		return b
	}
	return &Array{
		size:  a.size,
		depth: a.depth,
		root:  mergeNode(cond, a.root, b.root),
	}
}

func mergeNode(cond *smt.Bool, x, y *node) *node {
	if (x.leaf == nil) != (y.leaf == nil) {
		panic("merge of incongruent arrays: leaf against fork")
	}
	if x.leaf != nil {
		return &node{leaf: smt.Ite(cond, x.leaf, y.leaf)}
	}
	return &node{
		left:  mergeNode(cond, x.left, y.left),
		right: mergeNode(cond, x.right, y.right),
	}
}
