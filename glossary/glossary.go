// Package glossary is an in-memory English word dictionary backed by a
// binary search tree, with the flat-file cache format it is persisted in and
// the text helpers that apply it to a document.
package glossary

import (
	"io"
	"strings"

	"github.com/wordtree/wordtree/bst"

	"golang.org/x/text/cases"
)

// Entry is what is known about one source word.
type Entry struct {
	Translation string
	Definition  string
}

// HasTranslation reports whether the translation is more than the word echoed
// back, which is what lookups store when no translation was found.
func (e Entry) HasTranslation(word string) bool {
	return !strings.EqualFold(e.Translation, word)
}

func (e Entry) HasDefinition(word string) bool {
	return !strings.EqualFold(e.Definition, word)
}

// FoldCompare orders strings by their Unicode case folding, so "Tree" and
// "tree" compare equal.
func FoldCompare(a, b string) int {
	// a Caser keeps state between calls and can't be shared between goroutines
	return strings.Compare(cases.Fold().String(a), cases.Fold().String(b))
}

// Glossary maps words to entries, ignoring case. The first entry added for a
// word is kept; later ones for the same word are dropped.
type Glossary struct {
	dict *bst.Dict[string, Entry]
}

func New() *Glossary {
	return &Glossary{
		dict: bst.NewDict[string, Entry](FoldCompare),
	}
}

func (g *Glossary) Add(word string, e Entry) {
	g.dict.Add(word, e)
}

func (g *Glossary) Lookup(word string) (Entry, bool) {
	return g.dict.Get(word)
}

func (g *Glossary) Has(word string) bool {
	return g.dict.Find(word)
}

func (g *Glossary) Len() int {
	return g.dict.Len()
}

// Words returns every word in case-folded order, spelled as first added.
func (g *Glossary) Words() []string {
	return g.dict.InOrder()
}

func (g *Glossary) Depth() int {
	return g.dict.Depth()
}

func (g *Glossary) Fprint(w io.Writer) error {
	return g.dict.Fprint(w)
}
