package hamt

import (
	"fmt"
	"strings"
)

// node is a uniform element of the trie (empty, leaf, collision bucket or internal node).
// The bitmap doubles as a tag, see the package doc for the variants.
type node[T any] struct {
	bitmap   uint32
	children []node[T] // shared between versions, never written after construction
	value    T
}

func newLeaf[T any](value T) node[T] {
	return node[T]{bitmap: leafTag, value: value}
}

func newCollision[T any](leaves ...node[T]) node[T] {
	children := make([]node[T], len(leaves))
	copy(children, leaves)

	return node[T]{children: children}
}

func (n node[T]) isEmpty() bool {
	return n.children == nil && n.bitmap == 0
}

func (n node[T]) isLeaf() bool {
	return n.children == nil && n.bitmap == leafTag
}

func (n node[T]) isCollision() bool {
	return n.children != nil && n.bitmap == 0
}

func (n node[T]) isInternal() bool {
	return n.children != nil && n.bitmap != 0
}

// replace returns a copy of an internal node with the child at idx swapped.
func (n node[T]) replace(idx int, child node[T]) node[T] {
	children := make([]node[T], len(n.children))
	copy(children, n.children)
	children[idx] = child

	return node[T]{bitmap: n.bitmap, children: children}
}

// insert returns a copy of an internal node with a new child occupying bit.
func (n node[T]) insert(bit uint32, child node[T]) node[T] {
	var (
		idx      = indexOf(n.bitmap, bit)
		children = make([]node[T], len(n.children)+1)
	)

	copy(children[:idx], n.children[:idx])
	children[idx] = child
	copy(children[idx+1:], n.children[idx:])

	return node[T]{bitmap: n.bitmap | bit, children: children}
}

// drop returns a copy of an internal node without the child occupying bit.
// The node must keep at least one child.
func (n node[T]) drop(bit uint32) node[T] {
	var (
		idx      = indexOf(n.bitmap, bit)
		children = make([]node[T], 0, len(n.children)-1)
	)

	children = append(children, n.children[:idx]...)
	children = append(children, n.children[idx+1:]...)

	return node[T]{bitmap: n.bitmap &^ bit, children: children}
}

// each calls yield for every element under n and reports whether the walk was not aborted.
func (n node[T]) each(yield func(T) bool) bool {
	if n.isLeaf() {
		return yield(n.value)
	}

	for _, child := range n.children {
		if !child.each(yield) {
			return false
		}
	}

	return true
}

func (n node[T]) String() string {
	var b strings.Builder

	n.dump(&b, "")

	return b.String()
}

func (n node[T]) dump(b *strings.Builder, indent string) {
	b.WriteString(indent)

	switch {
	case n.isEmpty():
		b.WriteString("<hamt|Empty>\n")

	case n.isLeaf():
		fmt.Fprintf(b, "<hamt|Leaf|%v>\n", n.value)

	case n.isCollision():
		fmt.Fprintf(b, "<hamt|Collision|%d>\n", len(n.children))

	default:
		fmt.Fprintf(b, "<hamt|Node|bmp:%032b>\n", n.bitmap)
	}

	for _, child := range n.children {
		child.dump(b, indent+"  ")
	}
}
