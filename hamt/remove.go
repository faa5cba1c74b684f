package hamt

// remove returns n without value and whether the result differs from n.
func (n node[T]) remove(h Hasher[T], value T, hash uint32, shift uint) (node[T], bool) {
	switch {
	case n.isEmpty():
		return n, false

	case n.isLeaf():
		if h.Equal(n.value, value) {
			return node[T]{}, true
		}

		return n, false

	case n.isCollision():
		for i, leaf := range n.children {
			if !h.Equal(leaf.value, value) {
				continue
			}

			if len(n.children) == 2 {
				return n.children[1-i], true // the last member becomes a plain leaf
			}

			children := make([]node[T], 0, len(n.children)-1)
			children = append(children, n.children[:i]...)
			children = append(children, n.children[i+1:]...)

			return node[T]{children: children}, true
		}

		return n, false
	}

	// -- internal node --
	bit := bitFor(hash, shift)

	if n.bitmap&bit == 0 {
		return n, false
	}

	idx := indexOf(n.bitmap, bit)

	child, changed := n.children[idx].remove(h, value, hash, shift+windowWidth)

	switch {
	case !changed:
		return n, false

	case !child.isEmpty():
		if len(n.children) == 1 && child.isLeaf() {
			return child, true
		}

		return n.replace(idx, child), true

	case len(n.children) == 1:
		return node[T]{}, true
	}

	rest := n.drop(bit)

	if len(rest.children) == 1 && rest.children[0].isLeaf() {
		return rest.children[0], true
	}

	return rest, true
}
