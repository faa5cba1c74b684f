package hamt

import (
	"github.com/hideo55/go-popcount"
)

const (
	windowWidth = 5                                           // hash bits consumed per level
	windowMask  = 1<<windowWidth - 1                          // 0b_11111
	hashWidth   = 32                                          // bits in a hash
	maxDepth    = (hashWidth + windowWidth - 1) / windowWidth // 7 levels

	leafTag uint32 = 1<<hashWidth - 1 // 0xFFFFFFFF marks a Leaf
)

// bitCount returns the number of set bits in x.
func bitCount(x uint32) int {
	return int(popcount.Count(uint64(x)))
}

// bitFor returns the bitmap bit addressed by the hash window starting at shift.
func bitFor(hash uint32, shift uint) uint32 {
	return 1 << (hash>>shift&windowMask)
}

// indexOf returns the position of bit among the children of a node with the given bitmap.
func indexOf(bitmap, bit uint32) int {
	return bitCount(bitmap & (bit - 1))
}
