package bst_test

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/wordtree/wordtree/bst"
)

func ExampleTree() {
	tree := bst.New(cmp.Compare[int], 15, 5, 16, 3, 12, 20, 10, 13, 18, 23, 6, 7)

	fmt.Println(tree.PreOrder())
	fmt.Println(tree.InOrder())
	fmt.Println(tree.PostOrder())
	fmt.Println(tree.Find(12), tree.Find(24))

	tree.Add(24)
	fmt.Println(tree.Find(24))

	// Output:
	// [15 5 3 12 10 6 7 13 16 20 18 23]
	// [3 5 6 7 10 12 13 15 16 18 20 23]
	// [3 7 6 10 13 12 5 18 23 20 16 15]
	// true false
	// true
}

func ExampleDict() {
	d := bst.NewDict[string, string](func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	d.Add("Tree", "Baum")
	d.Add("house", "Haus")
	d.Add("tree", "Strauch")

	v, ok := d.Get("TREE")
	fmt.Println(v, ok, d.Len())

	_, ok = d.Get("garden")
	fmt.Println(ok)

	for k, v := range d.All() {
		fmt.Println(k, "=", v)
	}

	// Output:
	// Baum true 2
	// false
	// house = Haus
	// Tree = Baum
}
