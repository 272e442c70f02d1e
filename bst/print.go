package bst

import (
	"io"

	"github.com/xlab/treeprint"
)

// placeholder marks an empty child whose sibling is not empty, so the left
// and right positions stay readable.
const placeholder = "·"

func fprint[K, V any](w io.Writer, s subtree[K, V], label func(K, V) string) error {
	if s.isEmpty() {
		_, err := io.WriteString(w, "<empty>\n")
		return err
	}
	tree := treeprint.NewWithRoot(label(s.key(), s.value()))
	addBranches(tree, s, label)
	_, err := io.WriteString(w, tree.String())
	return err
}

func addBranches[K, V any](tree treeprint.Tree, s subtree[K, V], label func(K, V) string) {
	l, r := s.left(), s.right()
	if l.isEmpty() && r.isEmpty() {
		return
	}
	for _, c := range []subtree[K, V]{l, r} {
		if c.isEmpty() {
			tree.AddNode(placeholder)
			continue
		}
		addBranches(tree.AddBranch(label(c.key(), c.value())), c, label)
	}
}
