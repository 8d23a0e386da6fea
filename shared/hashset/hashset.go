// Package hashset provides an unordered set bucketed by xxhash of a
// caller-supplied key. Iteration order is undefined; duplicate keys collapse
// to the first inserted element.
package hashset

import (
	"iter"

	"github.com/cespare/xxhash/v2"
)

// KeyFunc derives the identity key of an element.
type KeyFunc[T any] func(T) string

type member[T any] struct {
	key string
	val T
}

// Set is an unordered collection of elements with unique keys.
type Set[T any] struct {
	key     KeyFunc[T]
	buckets map[uint64][]member[T]
	size    int
}

// New returns an empty Set identified by key.
func New[T any](key KeyFunc[T]) *Set[T] {
	if key == nil {
		panic("hashset: nil key func")
	}
	return &Set[T]{
		key:     key,
		buckets: make(map[uint64][]member[T]),
	}
}

// Insert adds val to the set. Elements whose key is already present are
// ignored.
func (s *Set[T]) Insert(val T) {
	k := s.key(val)
	h := xxhash.Sum64String(k)
	for _, m := range s.buckets[h] {
		if m.key == k {
			return
		}
	}
	s.buckets[h] = append(s.buckets[h], member[T]{key: k, val: val})
	s.size++
}

// Contains reports whether an element with the same key as val is present.
func (s *Set[T]) Contains(val T) bool {
	k := s.key(val)
	for _, m := range s.buckets[xxhash.Sum64String(k)] {
		if m.key == k {
			return true
		}
	}
	return false
}

// Len returns the number of distinct keys.
func (s *Set[T]) Len() int {
	return s.size
}

// Elems iterates the elements in undefined order.
func (s *Set[T]) Elems() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, bucket := range s.buckets {
			for _, m := range bucket {
				if !yield(m.val) {
					return
				}
			}
		}
	}
}

// FreshEmpty returns a new empty set with the same key func.
func (s *Set[T]) FreshEmpty() *Set[T] {
	return New(s.key)
}
