package hamt

import (
	"bytes"

	"github.com/benbjohnson/immutable"
	"github.com/cespare/xxhash/v2"
)

// Hasher hashes and compares the elements of a Set.
//
// Equal values must have equal hashes. The Set never checks this: an inconsistent Hasher
// makes elements unreachable or duplicated.
type Hasher[T any] interface {
	Hash(value T) uint32
	Equal(a, b T) bool
}

// Default returns a Hasher for builtin element types, chosen by the type of sample.
//
// Strings and byte slices are hashed with xxhash, integers with immutable.NewHasher.
// It panics for any other type.
func Default[T any](sample T) Hasher[T] {
	switch any(sample).(type) {
	case string:
		return any(Strings()).(Hasher[T])
	case []byte:
		return any(Bytes()).(Hasher[T])
	}

	return immutable.NewHasher(sample)
}

// Strings returns a Hasher for strings.
func Strings() Hasher[string] {
	return stringHasher{}
}

// Bytes returns a Hasher for byte slices comparing them by content.
func Bytes() Hasher[[]byte] {
	return bytesHasher{}
}

// Func returns a Hasher built from a pair of functions.
func Func[T any](hash func(T) uint32, equal func(a, b T) bool) Hasher[T] {
	return funcHasher[T]{hash: hash, equal: equal}
}

type stringHasher struct{}

func (stringHasher) Hash(value string) uint32 { return fold(xxhash.Sum64String(value)) }
func (stringHasher) Equal(a, b string) bool   { return a == b }

type bytesHasher struct{}

func (bytesHasher) Hash(value []byte) uint32 { return fold(xxhash.Sum64(value)) }
func (bytesHasher) Equal(a, b []byte) bool   { return bytes.Equal(a, b) }

type funcHasher[T any] struct {
	hash  func(T) uint32
	equal func(a, b T) bool
}

func (f funcHasher[T]) Hash(value T) uint32 { return f.hash(value) }
func (f funcHasher[T]) Equal(a, b T) bool   { return f.equal(a, b) }

// fold mixes both halves of a 64-bit hash into 32 bits.
func fold(hash uint64) uint32 {
	return uint32(hash ^ hash>>32)
}
