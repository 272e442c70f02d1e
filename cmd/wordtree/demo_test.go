package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDemo(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	require.NoError(t, runDemo(&out, false))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 13)
	assert.Equal("Initializing binary tree with values (in order): 15, 5, 16, 3, 12, 20, 10, 13, 18, 23, 6, 7", lines[3])
	assert.Equal([]string{
		"Traversal (Preorder): [15 5 3 12 10 6 7 13 16 20 18 23]",
		"Traversal (Inorder): [3 5 6 7 10 12 13 15 16 18 20 23]",
		"Traversal (Postorder): [3 7 6 10 13 12 5 18 23 20 16 15]",
		"Find 12: Found it!",
		"Find 3: Found it!",
		"Find 24: Didn't find it :(",
		"Find 23: Found it!",
		"Adding 24 to binary tree",
		"Find 24 (again): Found it!",
	}, lines[4:])
}

func TestRunDemoPrint(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runDemo(&out, true))

	s := out.String()
	assert.Contains(t, s, "Tree (depth 6):\n15\n")
	assert.Contains(t, s, "24")
}

func TestPrintHeading(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	printHeading(&out, "Binary Tree")
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(strings.Repeat("=", headingWidth), lines[0])
	assert.Equal(lines[0], lines[2])
	assert.True(strings.HasPrefix(lines[1], "-"))
	assert.Contains(lines[1], " Binary Tree ")

	out.Reset()
	printHeading(&out, strings.Repeat("x", headingWidth))
	assert.Contains(out.String(), "\n"+strings.Repeat("x", headingWidth)+"\n")
}
