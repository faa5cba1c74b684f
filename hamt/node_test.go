package hamt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_LeafSplit(t *testing.T) {
	t.Parallel()

	// 1 == 0b_00000_00001, 33 == 0b_00001_00001: the first window is shared
	set := New(identity, 1, 33)
	root := set.root

	require.True(t, root.isInternal())
	assert.Equal(t, uint32(1)<<1, root.bitmap)
	require.Len(t, root.children, 1)

	sub := root.children[0]

	require.True(t, sub.isInternal())
	assert.Equal(t, uint32(0b_11), sub.bitmap)
	require.Len(t, sub.children, 2)
	assert.Equal(t, int64(1), sub.children[0].value)
	assert.Equal(t, int64(33), sub.children[1].value)

	checkTrie(t, set)
}

func TestAdd_SplitOrder(t *testing.T) {
	t.Parallel()

	set := New(identity, 7, 2)

	require.True(t, set.root.isInternal())
	assert.Equal(t, uint32(1)<<7|uint32(1)<<2, set.root.bitmap)
	assert.Equal(t, int64(2), set.root.children[0].value)
	assert.Equal(t, int64(7), set.root.children[1].value)
}

func TestAdd_Collision(t *testing.T) {
	t.Parallel()

	set := New(folded, 1, 1<<32)

	require.True(t, set.root.isCollision())
	require.Len(t, set.root.children, 2)
	assert.True(t, set.Contains(1))
	assert.True(t, set.Contains(1<<32))
	assert.False(t, set.Contains(2))

	// the same member again
	same := set.Add(1 << 32)
	assert.Same(t, &set.root.children[0], &same.root.children[0])

	// a third member with the same hash joins the bucket
	three := set.Add(1<<33 | 3) // 0b_11 ^ 0b_10 == 1
	require.True(t, three.root.isCollision())
	assert.Len(t, three.root.children, 3)
	assert.Len(t, set.root.children, 2, "the old version changed")

	checkTrie(t, three)
}

func TestAdd_CollisionPushDown(t *testing.T) {
	t.Parallel()

	set := New(folded, 1, 1<<32, 2)
	root := set.root

	require.True(t, root.isInternal())
	assert.Equal(t, uint32(0b_110), root.bitmap)
	require.Len(t, root.children, 2)
	assert.True(t, root.children[0].isCollision())
	assert.True(t, root.children[1].isLeaf())

	// a value sharing the first window with the bucket
	deep := set.Add(33)
	assert.True(t, deep.root.children[0].isInternal())

	checkTrie(t, set)
	checkTrie(t, deep)
}

func TestRemove_Collapse(t *testing.T) {
	t.Parallel()

	set := New(folded, 1, 1<<32, 2)

	noTwo := set.Remove(2)
	require.True(t, noTwo.root.isInternal(), "a bucket below a single-child node stays put")
	require.Len(t, noTwo.root.children, 1)
	assert.True(t, noTwo.root.children[0].isCollision())
	checkTrie(t, noTwo)

	one := noTwo.Remove(1 << 32)
	require.True(t, one.root.isLeaf())
	assert.Equal(t, int64(1), one.root.value)

	empty := one.Remove(1)
	assert.True(t, empty.IsEmpty())
	assert.True(t, empty.root.isEmpty())
}

func TestRemove_CollapseChain(t *testing.T) {
	t.Parallel()

	// 1 and 33 hang two levels deep, 5 sits at the root
	set := New(identity, 1, 33, 5)

	noFive := set.Remove(5)
	require.True(t, noFive.root.isInternal())
	checkTrie(t, noFive)

	only := noFive.Remove(33)
	require.True(t, only.root.isLeaf(), only.Dump())
	assert.Equal(t, int64(1), only.root.value)

	// the old versions are intact
	assert.ElementsMatch(t, []int64{1, 33, 5}, set.Items())
	assert.ElementsMatch(t, []int64{1, 33}, noFive.Items())
}

func TestSharing(t *testing.T) {
	t.Parallel()

	// slot 1 holds a subtree (1, 33), slot 2 holds a leaf
	set := New(identity, 1, 33, 2)
	subtree := &set.root.children[0].children[0]

	for _, tcase := range []*struct {
		Name string
		Set  Set[int64]
	}{
		{"add", set.Add(4)},
		{"add existing", set.Add(33)},
		{"remove", set.Remove(2)},
		{"remove missing", set.Remove(65)},
		{"union", set.Union(New(identity, 4, 6))},
		{"union subset", set.Union(New(identity, 1, 2))},
		{"intersect superset", set.Intersect(New(identity, 1, 2, 33, 4))},
	} {
		tcase := tcase

		t.Run(tcase.Name, func(t *testing.T) {
			var child node[int64]

			for _, c := range tcase.Set.root.children {
				if c.isInternal() {
					child = c
				}
			}

			require.True(t, child.isInternal(), tcase.Set.Dump())
			assert.Same(t, subtree, &child.children[0])
		})
	}

	t.Run("no-op keeps the root", func(t *testing.T) {
		for _, same := range []Set[int64]{
			set.Add(1),
			set.Remove(64),
			set.Union(Empty(identity)),
			set.Union(New(identity, 33)),
			set.Union(set),
			set.Intersect(set),
		} {
			assert.Same(t, &set.root.children[0], &same.root.children[0])
		}
	})
}

func TestDump(t *testing.T) {
	t.Parallel()

	dump := New(folded, 1, 1<<32, 2).Dump()

	assert.Contains(t, dump, "<hamt|Node|bmp:00000000000000000000000000000110>")
	assert.Contains(t, dump, "<hamt|Collision|2>")
	assert.Contains(t, dump, "  <hamt|Leaf|2>")
	assert.Equal(t, "<hamt|Empty>\n", Empty(folded).Dump())
}
