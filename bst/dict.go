package bst

import (
	"fmt"
	"io"
	"iter"
)

// Dict maps keys to values, ordered by a comparator over the keys. Use NewDict
// to create one.
type Dict[K, V any] struct {
	root subtree[K, V]
	cmp  Compare[K]
}

// NewDict creates an empty dictionary ordered by cmp.
func NewDict[K, V any](cmp Compare[K]) *Dict[K, V] {
	if cmp == nil {
		panic("bst: nil comparator")
	}
	return &Dict[K, V]{cmp: cmp}
}

// Add stores val under key. If the key is already present the call does
// nothing and the original value is kept.
func (d *Dict[K, V]) Add(key K, val V) {
	d.root = add(d.cmp, d.root, leaf(key, val))
}

// Find reports whether an entry with a key comparing equal to key exists.
func (d *Dict[K, V]) Find(key K) bool {
	return find(d.cmp, d.root, key)
}

// Get returns the value stored under key, and false if there is none.
func (d *Dict[K, V]) Get(key K) (V, bool) {
	return get(d.cmp, d.root, key)
}

// Len counts the entries. It walks the whole tree.
func (d *Dict[K, V]) Len() int {
	return length(d.root)
}

// PreOrder returns the keys in node, left, right order.
func (d *Dict[K, V]) PreOrder() []K {
	return preOrder(d.root, []K{})
}

// InOrder returns the keys in ascending comparator order.
func (d *Dict[K, V]) InOrder() []K {
	return inOrder(d.root, []K{})
}

// PostOrder returns the keys in left, right, node order.
func (d *Dict[K, V]) PostOrder() []K {
	return postOrder(d.root, []K{})
}

// All returns an iterator over the entries in ascending key order.
func (d *Dict[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		walkInOrder(d.root, yield)
	}
}

// Depth is the number of nodes on the longest path from the root to a leaf.
func (d *Dict[K, V]) Depth() int {
	return depth(d.root)
}

// Fprint writes the key structure to w, one node per line.
func (d *Dict[K, V]) Fprint(w io.Writer) error {
	return fprint(w, d.root, func(k K, _ V) string {
		return fmt.Sprint(k)
	})
}
