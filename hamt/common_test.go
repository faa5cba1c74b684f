package hamt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func equalInt64(a, b int64) bool { return a == b }

var (
	// identity puts the value bits straight into the trie path.
	identity = Func(func(v int64) uint32 { return uint32(v) }, equalInt64)

	// folded xors both halves so 1 and 1<<32 collide.
	folded = Func(func(v int64) uint32 {
		u := uint64(v)
		return uint32(u ^ u>>32)
	}, equalInt64)

	// narrow leaves only 16 distinct hashes.
	narrow = Func(func(v int64) uint32 { return uint32(uint64(v) % 16) }, equalInt64)
)

// checkTrie verifies the structural invariants of a whole set.
func checkTrie[T any](t *testing.T, set Set[T]) {
	t.Helper()

	if set.root.isEmpty() {
		return
	}

	checkNode(t, set.hasher, set.root, 0)
}

func checkNode[T any](t *testing.T, h Hasher[T], n node[T], shift uint) {
	t.Helper()

	require.False(t, n.isEmpty(), "empty node below the root")

	switch {
	case n.isLeaf():
		return

	case n.isCollision():
		require.GreaterOrEqual(t, len(n.children), 2, "short collision bucket")

		hash := h.Hash(n.children[0].value)

		for _, leaf := range n.children {
			require.True(t, leaf.isLeaf(), "bucket member is not a leaf")
			require.Equal(t, hash, h.Hash(leaf.value), "bucket hashes differ")
		}

		return
	}

	require.Less(t, shift, uint(hashWidth), "internal node below the last window")
	require.Equal(t, bitCount(n.bitmap), len(n.children), "bitmap/children mismatch")

	if len(n.children) == 1 {
		require.False(t, n.children[0].isLeaf(), "internal node with a single leaf")
	}

	for rest := n.bitmap; rest != 0; rest &= rest - 1 {
		var (
			bit   = rest & -rest
			child = n.children[indexOf(n.bitmap, bit)]
		)

		child.each(func(value T) bool {
			require.Equal(t, bit, bitFor(h.Hash(value), shift), "element %v in a wrong slot", value)
			return true
		})

		checkNode(t, h, child, shift+windowWidth)
	}
}

func reference(values ...int64) map[int64]struct{} {
	ref := make(map[int64]struct{}, len(values))

	for _, v := range values {
		ref[v] = struct{}{}
	}

	return ref
}

func keysOf(ref map[int64]struct{}) []int64 {
	keys := make([]int64, 0, len(ref))

	for v := range ref {
		keys = append(keys, v)
	}

	return keys
}
