// Package hamt defines an implementation of a persistent Hash Array Mapped Trie set.
//
// A Set never changes once built. Add, Remove, Union and Intersect return a new Set that
// shares every untouched branch with the original, so old versions stay valid and can be
// read from any number of goroutines while new versions are derived.
//
// The trie consumes the 32-bit hash of an element 5 bits per level (7 levels at most).
//
// Node variants:
// -------------
//
//   - Empty:      bitmap == 0,        children == nil
//   - Leaf:       bitmap == 0xFFFFFFFF, children == nil,  value holds the element
//   - Collision:  bitmap == 0,        children == [Leaf, Leaf, ...] (equal 32-bit hashes)
//   - Internal:   bitmap != 0,        children == one twig per bitmap bit, ordered by bit
//
// Bitmap of an Internal node:
// --------------------------
//
//	[ 31 ] [ 30 ] ... [ 01 ] [ 00 ]
//	<slot> <slot>     <slot> <slot>   slot N is set if (hash >> shift) & 0b_11111 == N
//
//	children index of slot N == popcount(bitmap & (1<<N - 1))
//
// Example trie:
// ------------
//
//	                ,-- [leaf:1]
//	                |
//	[node:bmp] -----+-- [node:bmp] --+-- [leaf:33]
//	                |                `-- [collision:{7, 7<<32}]
//	                `-- [leaf:5]
//
// Empty and Leaf sets are plain values and allocate nothing.
package hamt
