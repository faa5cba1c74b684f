package hamt

// add returns n with value inserted and whether the result differs from n.
//
// hash is the full hash of value; shift is the number of hash bits consumed by the
// ancestors of n.
func (n node[T]) add(h Hasher[T], value T, hash uint32, shift uint) (node[T], bool) {
	switch {
	case n.isEmpty():
		return newLeaf(value), true

	case n.isLeaf():
		if h.Equal(n.value, value) {
			return n, false
		}

		if leafHash := h.Hash(n.value); leafHash != hash {
			return split(shift, n, leafHash, newLeaf(value), hash), true
		}

		// the whole hash matches - start a bucket
		return newCollision(n, newLeaf(value)), true

	case n.isCollision():
		bucketHash := h.Hash(n.children[0].value)

		if bucketHash != hash {
			// push the whole bucket down next to the new leaf
			return split(shift, n, bucketHash, newLeaf(value), hash), true
		}

		for _, leaf := range n.children {
			if h.Equal(leaf.value, value) {
				return n, false
			}
		}

		children := make([]node[T], len(n.children)+1)
		copy(children, n.children)
		children[len(n.children)] = newLeaf(value)

		return node[T]{children: children}, true
	}

	// -- internal node --
	bit := bitFor(hash, shift)

	if n.bitmap&bit == 0 {
		return n.insert(bit, newLeaf(value)), true
	}

	idx := indexOf(n.bitmap, bit)

	child, changed := n.children[idx].add(h, value, hash, shift+windowWidth)
	if !changed {
		return n, false
	}

	return n.replace(idx, child), true
}

// split builds the smallest subtree holding both a and b, which must have different hashes.
//
// While the hash windows of a and b agree, a chain of single-child internal nodes is
// produced; the first differing window gets a node with both of them.
func split[T any](shift uint, a node[T], aHash uint32, b node[T], bHash uint32) node[T] {
	var (
		aBit = bitFor(aHash, shift)
		bBit = bitFor(bHash, shift)
	)

	switch {
	case aBit == bBit:
		return node[T]{
			bitmap:   aBit,
			children: []node[T]{split(shift+windowWidth, a, aHash, b, bHash)},
		}

	case aBit < bBit:
		return node[T]{bitmap: aBit | bBit, children: []node[T]{a, b}}

	default:
		return node[T]{bitmap: aBit | bBit, children: []node[T]{b, a}}
	}
}

// addAll inserts the values of the given leaves into n one by one.
func (n node[T]) addAll(h Hasher[T], leaves []node[T], shift uint) (node[T], bool) {
	var changed bool

	for _, leaf := range leaves {
		var added bool

		n, added = n.add(h, leaf.value, h.Hash(leaf.value), shift)
		changed = changed || added
	}

	return n, changed
}

// contains reports whether value is stored under n.
func (n node[T]) contains(h Hasher[T], value T, hash uint32, shift uint) bool {
	for {
		switch {
		case n.isEmpty():
			return false

		case n.isLeaf():
			return h.Equal(n.value, value)

		case n.isCollision():
			for _, leaf := range n.children {
				if h.Equal(leaf.value, value) {
					return true
				}
			}

			return false
		}

		bit := bitFor(hash, shift)

		if n.bitmap&bit == 0 {
			return false
		}

		n = n.children[indexOf(n.bitmap, bit)]
		shift += windowWidth
	}
}
