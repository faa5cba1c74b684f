package hamt

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrInvalidState is returned by Set.Value when the set does not hold exactly one element.
var ErrInvalidState = errors.New("hamt: set does not hold exactly one element")

// Set is a persistent unordered set of elements.
//
// The zero Set is empty and picks the Default hasher on the first Add, which works for
// builtin element types only. Use New or Empty to supply a Hasher for anything else.
type Set[T any] struct {
	root   node[T]
	hasher Hasher[T]
}

// New returns a Set holding the given values. Duplicates are absorbed.
func New[T any](hasher Hasher[T], values ...T) Set[T] {
	set := Empty(hasher)

	for _, value := range values {
		set = set.Add(value)
	}

	return set
}

// Of returns a Set of builtin values using the Default hasher.
func Of[T any](values ...T) Set[T] {
	return New[T](nil, values...)
}

// Empty returns an empty Set bound to the given hasher.
func Empty[T any](hasher Hasher[T]) Set[T] {
	return Set[T]{hasher: hasher}
}

func (s Set[T]) IsEmpty() bool {
	return s.root.isEmpty()
}

// IsValue reports whether the set holds exactly one element.
func (s Set[T]) IsValue() bool {
	return s.root.isLeaf()
}

// Value returns the only element of the set or ErrInvalidState.
func (s Set[T]) Value() (T, error) {
	if !s.root.isLeaf() {
		var zero T
		return zero, ErrInvalidState
	}

	return s.root.value, nil
}

// Add returns a Set that also holds value. It returns s itself if value is already there.
func (s Set[T]) Add(value T) Set[T] {
	hasher := s.hasherFor(value)

	root, changed := s.root.add(hasher, value, hasher.Hash(value), 0)
	if !changed {
		return s
	}

	return Set[T]{root: root, hasher: hasher}
}

// Remove returns a Set without value. It returns s itself if value is not there.
func (s Set[T]) Remove(value T) Set[T] {
	if s.root.isEmpty() {
		return s
	}

	root, changed := s.root.remove(s.hasher, value, s.hasher.Hash(value), 0)
	if !changed {
		return s
	}

	return Set[T]{root: root, hasher: s.hasher}
}

func (s Set[T]) Contains(value T) bool {
	if s.root.isEmpty() {
		return false
	}

	return s.root.contains(s.hasher, value, s.hasher.Hash(value), 0)
}

// Union returns a Set holding the elements of both sets.
//
// Both sets must use equivalent hashers; the hasher of s wins.
func (s Set[T]) Union(other Set[T]) Set[T] {
	switch {
	case other.root.isEmpty():
		return s
	case s.root.isEmpty():
		return other
	}

	root, changed := s.root.union(s.hasher, other.root, 0)
	if !changed {
		return s
	}

	return Set[T]{root: root, hasher: s.hasher}
}

// Intersect returns a Set holding the elements found in both sets.
//
// Both sets must use equivalent hashers; the hasher of s wins.
func (s Set[T]) Intersect(other Set[T]) Set[T] {
	if s.root.isEmpty() {
		return s
	}

	root, changed := s.root.intersect(s.hasher, other.root, 0)
	if !changed {
		return s
	}

	return Set[T]{root: root, hasher: s.hasher}
}

// All returns an iterator over the elements of the set.
//
// The order follows the hash bits and is stable for one Set value only.
func (s Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.root.each(yield)
	}
}

// Items returns all the elements of the set.
func (s Set[T]) Items() []T {
	var items []T

	s.root.each(func(value T) bool {
		items = append(items, value)
		return true
	})

	return items
}

// Len returns the number of elements. It walks the whole trie.
func (s Set[T]) Len() int {
	var count int

	s.root.each(func(T) bool {
		count++
		return true
	})

	return count
}

// Equal reports whether both sets hold the same elements.
func (s Set[T]) Equal(other Set[T]) bool {
	if s.Len() != other.Len() {
		return false
	}

	return s.root.each(other.Contains)
}

func (s Set[T]) String() string {
	var b strings.Builder

	b.WriteString("hamt.Set{")

	first := true

	for value := range s.All() {
		if !first {
			b.WriteString(", ")
		}

		first = false

		fmt.Fprint(&b, value)
	}

	b.WriteByte('}')

	return b.String()
}

// Dump renders the node tree of the set for debugging.
func (s Set[T]) Dump() string {
	return s.root.String()
}

func (s Set[T]) hasherFor(value T) Hasher[T] {
	if s.hasher != nil {
		return s.hasher
	}

	return Default(value)
}
