package hamt

// intersect keeps the elements of n that are also in o and reports whether the result
// differs from n.
//
// Both nodes must sit at the same depth (shift).
func (n node[T]) intersect(h Hasher[T], o node[T], shift uint) (node[T], bool) {
	switch {
	case n.isEmpty():
		return n, false

	case o.isEmpty():
		return node[T]{}, true

	case n.isLeaf():
		if o.contains(h, n.value, h.Hash(n.value), shift) {
			return n, false
		}

		return node[T]{}, true

	case o.isLeaf():
		if n.contains(h, o.value, h.Hash(o.value), shift) {
			return o, true
		}

		return node[T]{}, true

	case n.isCollision():
		return n.filter(h, o, shift)

	case o.isCollision():
		kept, _ := o.filter(h, n, shift)
		return kept, true
	}

	// -- both are internal nodes --
	var (
		bitmap   = n.bitmap & o.bitmap
		children = make([]node[T], 0, bitCount(bitmap))
		changed  = bitmap != n.bitmap
		kept     uint32
	)

	for rest := bitmap; rest != 0; rest &= rest - 1 {
		bit := rest & -rest

		child, cut := n.children[indexOf(n.bitmap, bit)].intersect(
			h, o.children[indexOf(o.bitmap, bit)], shift+windowWidth,
		)

		changed = changed || cut

		if child.isEmpty() {
			continue
		}

		kept |= bit
		children = append(children, child)
	}

	switch {
	case !changed:
		return n, false

	case len(children) == 0:
		return node[T]{}, true

	case len(children) == 1 && children[0].isLeaf():
		return children[0], true
	}

	return node[T]{bitmap: kept, children: children}, true
}

// filter collects the members of a collision bucket that are also in o into a new node.
func (n node[T]) filter(h Hasher[T], o node[T], shift uint) (node[T], bool) {
	var (
		kept  node[T]
		count int
	)

	for _, leaf := range n.children {
		hash := h.Hash(leaf.value)

		if !o.contains(h, leaf.value, hash, shift) {
			continue
		}

		kept, _ = kept.add(h, leaf.value, hash, shift)
		count++
	}

	if count == len(n.children) {
		return n, false
	}

	return kept, true
}
