package bst

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tree and Dict expose the same operations and document them alike.
func TestExportedFuncsDocumented(t *testing.T) {
	for _, file := range []string{"tree.go", "dict.go"} {
		f, err := parser.ParseFile(token.NewFileSet(), file, nil, parser.ParseComments)
		require.NoError(t, err)

		for _, decl := range f.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || !fn.Name.IsExported() {
				continue
			}
			assert.NotNil(t, fn.Doc, "%s: %s has no doc comment", file, fn.Name.Name)
		}
	}
}
