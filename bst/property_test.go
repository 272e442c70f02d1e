package bst

import (
	"cmp"
	"slices"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
)

func randomWords(seed int64, n int) []string {
	faker := gofakeit.New(seed)
	words := make([]string, n)
	for i := range words {
		words[i] = faker.Word()
	}
	return words
}

func randomInts(seed int64, n int) []int {
	faker := gofakeit.New(seed)
	vals := make([]int, n)
	for i := range vals {
		vals[i] = faker.Number(-500, 500)
	}
	return vals
}

func TestPropertiesWords(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		words := randomWords(seed, 200)
		d := NewDict[string, int](cmp.Compare[string])
		for i, w := range words {
			d.Add(w, i)
		}
		checkDict(t, d, words)
	}
}

func TestPropertiesInts(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		vals := randomInts(seed, 300)
		tree := New(cmp.Compare[int], vals...)

		in := tree.InOrder()
		assert.True(t, slices.IsSorted(in), "in-order is sorted")
		for _, v := range vals {
			assert.True(t, tree.Find(v), "inserted %d is found", v)
		}
		assert.False(t, tree.Find(501))
		assert.False(t, tree.Find(-501))

		uniq := slices.Compact(slices.Sorted(slices.Values(vals)))
		assert.Equal(t, uniq, in)
		assert.ElementsMatch(t, in, tree.PreOrder())
		assert.ElementsMatch(t, in, tree.PostOrder())
	}
}

func checkDict(t *testing.T, d *Dict[string, int], words []string) {
	t.Helper()
	assert := assert.New(t)

	in := d.InOrder()
	assert.True(slices.IsSorted(in), "in-order keys are sorted")
	assert.Equal(d.Len(), len(in), "length matches traversal")
	assert.ElementsMatch(in, d.PreOrder())
	assert.ElementsMatch(in, d.PostOrder())

	first := make(map[string]int)
	for i, w := range words {
		if _, ok := first[w]; !ok {
			first[w] = i
		}
	}
	assert.Equal(len(first), d.Len())
	for w, i := range first {
		v, ok := d.Get(w)
		assert.True(ok, "inserted %q is present", w)
		assert.Equal(i, v, "%q keeps the value of its first insertion", w)
	}

	assert.False(d.Find("NOT-A-WORD"))
	_, ok := d.Get("NOT-A-WORD")
	assert.False(ok)
}
