package bst

import (
	"fmt"
	"io"
	"iter"
)

// Tree is an ordered set of values. Use New to create one; the zero value has
// no comparator and panics on first use.
type Tree[T any] struct {
	root subtree[T, struct{}]
	cmp  Compare[T]
}

// New creates a tree ordered by cmp and adds values to it in the given order.
func New[T any](cmp Compare[T], values ...T) *Tree[T] {
	if cmp == nil {
		panic("bst: nil comparator")
	}
	t := &Tree[T]{cmp: cmp}
	t.Add(values...)
	return t
}

// Add inserts each value in turn. Values comparing equal to one already in the
// tree are ignored.
func (t *Tree[T]) Add(values ...T) {
	for _, v := range values {
		t.root = add(t.cmp, t.root, leaf(v, struct{}{}))
	}
}

// Find reports whether a value comparing equal to query is in the tree.
func (t *Tree[T]) Find(query T) bool {
	return find(t.cmp, t.root, query)
}

// PreOrder returns the values in node, left, right order.
func (t *Tree[T]) PreOrder() []T {
	return preOrder(t.root, []T{})
}

// InOrder returns the values in ascending comparator order.
func (t *Tree[T]) InOrder() []T {
	return inOrder(t.root, []T{})
}

// PostOrder returns the values in left, right, node order.
func (t *Tree[T]) PostOrder() []T {
	return postOrder(t.root, []T{})
}

// All returns an iterator over the values in ascending order.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		walkInOrder(t.root, func(v T, _ struct{}) bool {
			return yield(v)
		})
	}
}

// Depth is the number of nodes on the longest path from the root to a leaf.
func (t *Tree[T]) Depth() int {
	return depth(t.root)
}

// Fprint writes the tree structure to w, one node per line.
func (t *Tree[T]) Fprint(w io.Writer) error {
	return fprint(w, t.root, func(v T, _ struct{}) string {
		return fmt.Sprint(v)
	})
}
