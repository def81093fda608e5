// Package bst implements an ordered map on top of an unbalanced binary search
// tree.
//
// The tree is never rebalanced, so its depth follows the insertion order and
// degrades to a list when keys arrive sorted.
package bst

import (
	"errors"
	"fmt"
	"reflect"
)

const (
	traverseStop traverseAction = iota
	traverseContinue
)

var (
	ErrInvalidArgument = errors.New("keys must be non-null")
	ErrNoMoreEntries   = errors.New("there are no more entries in the tree")
)

type (
	tree[K, V any] struct {
		size    int
		root    *node[K, V]
		compare func(a, b K) int
	}

	// left holds keys strictly less than key, right strictly greater
	node[K, V any] struct {
		key   K
		value V
		left  *node[K, V]
		right *node[K, V]
	}

	// Callback is called for each entry during traversal; returning false
	// stops the traversal.
	Callback[K, V any] func(key K, value V) bool

	traverseAction int

	iterator[K, V any] struct {
		// left spine of the subtrees still to visit, top is next
		stack []*node[K, V]
	}
)

func checkKey[K any](op string, key K) error {
	if isNil(key) {
		return fmt.Errorf("bst: %s: %w", op, ErrInvalidArgument)
	}
	return nil
}

func isNil[K any](key K) bool {
	v := any(key)
	if v == nil {
		return true
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}
