package glossary

import (
	"regexp"

	"github.com/rivo/uniseg"
)

// A word is a maximal run of characters that are neither whitespace nor one
// of .,/#!$%^&*;:{}=-_~()?"
var wordRun = regexp.MustCompile(`[^\s.,/#!$%^&*;:{}=_~()?"\-]+`)

// Words splits text into its distinct words, in order of first appearance.
// Words differing only in case are kept apart.
func Words(text string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, w := range wordRun.FindAllString(text, -1) {
		if seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}

// Missing returns the words g has no entry for.
func Missing(words []string, g *Glossary) []string {
	var out []string
	for _, w := range words {
		if !g.Has(w) {
			out = append(out, w)
		}
	}
	return out
}

// Render replaces every word of text that g knows with its translation.
// Punctuation, whitespace and unknown words are left untouched.
func Render(text string, g *Glossary) string {
	return wordRun.ReplaceAllStringFunc(text, func(w string) string {
		if e, ok := g.Lookup(w); ok {
			return e.Translation
		}
		return w
	})
}

// Truncate shortens text to at most limit grapheme clusters, marking the cut
// with "...".
func Truncate(text string, limit int) string {
	gr := uniseg.NewGraphemes(text)
	n := 0
	for gr.Next() {
		if n == limit {
			from, _ := gr.Positions()
			return text[:from] + "..."
		}
		n++
	}
	return text
}
