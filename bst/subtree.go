// Package bst implements comparator-ordered, unbalanced binary search trees.
//
// Two flavors share one recursive construction: [Tree] holds a set of values
// and [Dict] maps keys to values. Every child position in the tree is a
// subtree that is either empty or holds a node, so insertion, lookup and the
// three depth-first traversals never branch on nil pointers.
//
// Trees are not rebalanced and keys are never removed. Inserting a key that
// compares equal to one already present is a no-op: the first value wins.
//
// A tree is not safe for concurrent use. Callers that share one between
// goroutines must serialize access themselves.
package bst

import (
	"errors"
	"fmt"
)

// Compare is a three-way comparison: negative when a orders before b, zero
// when they are equal, positive when a orders after b. It must be a stable
// total order for the lifetime of the tree; the tree never validates it.
// cmp.Compare satisfies it for ordered types.
type Compare[K any] func(a, b K) int

const (
	kindEmpty = 0
	kindNode  = 1
)

// ErrOutOfBounds is matched by every *OutOfBoundsError.
var ErrOutOfBounds = errors.New("out-of-bounds subtree access")

// OutOfBoundsError is the panic value raised when structural fields are read
// from, or written to, an empty subtree. Public tree operations never do this.
type OutOfBoundsError struct {
	Op    string
	Field string
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("tried to %s out-of-bounds %s", e.Op, e.Field)
}

func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// subtree is either empty or holds exactly one node. The zero value is an
// empty subtree, so every fresh child position starts out empty on its own.
type subtree[K, V any] struct {
	kind int
	n    *node[K, V]
}

type node[K, V any] struct {
	key   K
	val   V
	left  subtree[K, V]
	right subtree[K, V]
}

func leaf[K, V any](key K, val V) subtree[K, V] {
	return subtree[K, V]{
		kind: kindNode,
		n:    &node[K, V]{key: key, val: val},
	}
}

func (s subtree[K, V]) isEmpty() bool {
	return s.kind == kindEmpty
}

func (s subtree[K, V]) mustNode(op, field string) *node[K, V] {
	if s.kind != kindNode {
		panic(&OutOfBoundsError{Op: op, Field: field})
	}
	return s.n
}

func (s subtree[K, V]) key() K {
	return s.mustNode("get", "key").key
}

func (s subtree[K, V]) value() V {
	return s.mustNode("get", "value").val
}

func (s subtree[K, V]) left() subtree[K, V] {
	return s.mustNode("get", "left item").left
}

func (s subtree[K, V]) right() subtree[K, V] {
	return s.mustNode("get", "right item").right
}

func (s subtree[K, V]) setLeft(c subtree[K, V]) {
	s.mustNode("set", "left item").left = c
}

func (s subtree[K, V]) setRight(c subtree[K, V]) {
	s.mustNode("set", "right item").right = c
}

func badKind(kind int) string {
	return fmt.Sprintf("bst: unknown subtree kind %d", kind)
}

// add inserts the freshly built node cand below s and returns the new root of
// s. The caller re-attaches the result in the position s came from.
func add[K, V any](cmp Compare[K], s, cand subtree[K, V]) subtree[K, V] {
	switch s.kind {
	case kindEmpty:
		cand.setLeft(subtree[K, V]{})
		cand.setRight(subtree[K, V]{})
		return cand
	case kindNode:
		c := cmp(cand.key(), s.key())
		if c < 0 {
			s.setLeft(add(cmp, s.left(), cand))
		} else if c > 0 {
			s.setRight(add(cmp, s.right(), cand))
		}
		// equal keys: keep the existing node and drop cand
		return s
	}
	panic(badKind(s.kind))
}

func find[K, V any](cmp Compare[K], s subtree[K, V], query K) bool {
	_, ok := get(cmp, s, query)
	return ok
}

func get[K, V any](cmp Compare[K], s subtree[K, V], query K) (V, bool) {
	switch s.kind {
	case kindEmpty:
		var zero V
		return zero, false
	case kindNode:
		c := cmp(query, s.key())
		if c < 0 {
			return get(cmp, s.left(), query)
		} else if c > 0 {
			return get(cmp, s.right(), query)
		}
		return s.value(), true
	}
	panic(badKind(s.kind))
}

func length[K, V any](s subtree[K, V]) int {
	switch s.kind {
	case kindEmpty:
		return 0
	case kindNode:
		return length(s.left()) + length(s.right()) + 1
	}
	panic(badKind(s.kind))
}

func depth[K, V any](s subtree[K, V]) int {
	switch s.kind {
	case kindEmpty:
		return 0
	case kindNode:
		return max(depth(s.left()), depth(s.right())) + 1
	}
	panic(badKind(s.kind))
}

// The traversals append to out and return it, so one pass over the tree
// builds the whole sequence without intermediate slices.

func preOrder[K, V any](s subtree[K, V], out []K) []K {
	switch s.kind {
	case kindEmpty:
		return out
	case kindNode:
		out = append(out, s.key())
		out = preOrder(s.left(), out)
		return preOrder(s.right(), out)
	}
	panic(badKind(s.kind))
}

func inOrder[K, V any](s subtree[K, V], out []K) []K {
	switch s.kind {
	case kindEmpty:
		return out
	case kindNode:
		out = inOrder(s.left(), out)
		out = append(out, s.key())
		return inOrder(s.right(), out)
	}
	panic(badKind(s.kind))
}

func postOrder[K, V any](s subtree[K, V], out []K) []K {
	switch s.kind {
	case kindEmpty:
		return out
	case kindNode:
		out = postOrder(s.left(), out)
		out = postOrder(s.right(), out)
		return append(out, s.key())
	}
	panic(badKind(s.kind))
}

// walkInOrder calls yield for every entry in key order until yield returns
// false. It reports whether the walk ran to completion.
func walkInOrder[K, V any](s subtree[K, V], yield func(K, V) bool) bool {
	switch s.kind {
	case kindEmpty:
		return true
	case kindNode:
		return walkInOrder(s.left(), yield) &&
			yield(s.key(), s.value()) &&
			walkInOrder(s.right(), yield)
	}
	panic(badKind(s.kind))
}
