package main

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/wordtree/wordtree/bst"

	"github.com/urfave/cli/v2"
)

var demoValues = []int{15, 5, 16, 3, 12, 20, 10, 13, 18, 23, 6, 7}

var cmdDemo = &cli.Command{
	Name:  "demo",
	Usage: "walk through binary tree insertion, traversal and search",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "print",
			Usage: "also render the tree structure",
		},
	},
	Action: func(cctx *cli.Context) error {
		return runDemo(cctx.App.Writer, cctx.Bool("print"))
	},
}

const headingWidth = 120

// printHeading writes msg centered in a three line banner.
func printHeading(w io.Writer, msg string) {
	padding := strings.Repeat("=", headingWidth)
	margin := strings.Repeat("-", max((headingWidth-2-len(msg))/2, 0))
	spacing := ""
	if margin != "" {
		spacing = " "
	}
	fmt.Fprintln(w, padding)
	fmt.Fprintln(w, margin+spacing+msg+spacing+margin)
	fmt.Fprintln(w, padding)
}

func found(ok bool) string {
	if ok {
		return "Found it!"
	}
	return "Didn't find it :("
}

func runDemo(w io.Writer, render bool) error {
	printHeading(w, "Binary Tree")
	fmt.Fprintf(w, "Initializing binary tree with values (in order): %s\n", joinInts(demoValues))
	tree := bst.New(cmp.Compare[int], demoValues...)

	fmt.Fprintf(w, "Traversal (Preorder): %v\n", tree.PreOrder())
	fmt.Fprintf(w, "Traversal (Inorder): %v\n", tree.InOrder())
	fmt.Fprintf(w, "Traversal (Postorder): %v\n", tree.PostOrder())
	for _, q := range []int{12, 3, 24, 23} {
		fmt.Fprintf(w, "Find %d: %s\n", q, found(tree.Find(q)))
	}

	fmt.Fprintln(w, "Adding 24 to binary tree")
	tree.Add(24)
	fmt.Fprintf(w, "Find 24 (again): %s\n", found(tree.Find(24)))

	if render {
		fmt.Fprintf(w, "Tree (depth %d):\n", tree.Depth())
		return tree.Fprint(w)
	}
	return nil
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
