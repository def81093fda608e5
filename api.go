package bst

import "cmp"

// Map is an ordered key-value map backed by an unbalanced binary search tree.
//
// Every operation that takes a key fails with ErrInvalidArgument when the key
// is nil (a nil pointer, interface, slice, map, chan or func). Absence is
// reported through return values, never through errors.
//
// A Map is not safe for concurrent use.
type Map[K, V any] interface {
	// Put inserts key if it is not present yet and reports whether a new
	// entry was created. An existing entry keeps its value.
	Put(key K, value V) (bool, error)
	// Set inserts key or overwrites the value of the existing entry.
	Set(key K, value V) error
	// Replace overwrites the value of an existing entry and reports whether
	// the key was found.
	Replace(key K, value V) (bool, error)
	Get(key K) (V, bool, error)
	ContainsKey(key K) (bool, error)
	// Remove deletes the entry for key and reports whether it was present.
	Remove(key K) (bool, error)

	// Keys returns all keys in ascending order.
	Keys() []K
	// Values returns all values in ascending key order.
	Values() []V
	Ascend(fn Callback[K, V])
	Iterator() Iterator[K, V]

	Size() int
	IsEmpty() bool
}

type Iterator[K, V any] interface {
	HasNext() bool
	Next() (Entry[K, V], error)
}

type Entry[K, V any] interface {
	Key() K
	Value() V
}

// New returns an empty map ordered by the natural ordering of K.
func New[K cmp.Ordered, V any]() Map[K, V] {
	return &tree[K, V]{compare: cmp.Compare[K]}
}

// NewFunc returns an empty map ordered by compare, which must return a
// negative number, zero or a positive number when a is less than, equal to or
// greater than b. Keys comparing equal are the same key.
func NewFunc[K, V any](compare func(a, b K) int) Map[K, V] {
	if compare == nil {
		panic("bst: nil compare function")
	}
	return &tree[K, V]{compare: compare}
}
