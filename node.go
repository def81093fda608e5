package bst

import "fmt"

func newNode[K, V any](key K, value V) *node[K, V] {
	return &node[K, V]{key: key, value: value}
}

func (n *node[K, V]) Key() K {
	return n.key
}

func (n *node[K, V]) Value() V {
	return n.value
}

func (n *node[K, V]) String() string {
	return fmt.Sprintf("node{key=%v}", n.key)
}

func (n *node[K, V]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// find the node with the greatest key under n
func (n *node[K, V]) maximum() *node[K, V] {
	curr := n
	for curr.right != nil {
		curr = curr.right
	}
	return curr
}
