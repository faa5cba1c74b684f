package hamt

// union merges o into n level by level and reports whether the result differs from n.
//
// Both nodes must sit at the same depth (shift). Slots found on one side only are reused
// as is.
func (n node[T]) union(h Hasher[T], o node[T], shift uint) (node[T], bool) {
	switch {
	case o.isEmpty():
		return n, false

	case n.isEmpty():
		return o, true

	case o.isLeaf():
		return n.add(h, o.value, h.Hash(o.value), shift)

	case n.isLeaf():
		merged, _ := o.add(h, n.value, h.Hash(n.value), shift)
		return merged, true

	case o.isCollision():
		// buckets are small - adding one by one is good enough
		return n.addAll(h, o.children, shift)

	case n.isCollision():
		merged, _ := o.addAll(h, n.children, shift)
		return merged, true
	}

	// -- both are internal nodes --
	var (
		bitmap   = n.bitmap | o.bitmap
		children = make([]node[T], 0, bitCount(bitmap))
		changed  = bitmap != n.bitmap
	)

	for rest := bitmap; rest != 0; rest &= rest - 1 {
		bit := rest & -rest

		switch {
		case o.bitmap&bit == 0:
			children = append(children, n.children[indexOf(n.bitmap, bit)])

		case n.bitmap&bit == 0:
			children = append(children, o.children[indexOf(o.bitmap, bit)])

		default:
			child, merged := n.children[indexOf(n.bitmap, bit)].union(
				h, o.children[indexOf(o.bitmap, bit)], shift+windowWidth,
			)

			children = append(children, child)
			changed = changed || merged
		}
	}

	if !changed {
		return n, false
	}

	return node[T]{bitmap: bitmap, children: children}, true
}
