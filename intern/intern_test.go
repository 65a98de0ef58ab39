package intern

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternIsIdempotent(t *testing.T) {
	in := New()
	x := in.Intern("x")
	y := in.Intern("y")
	assert.NotEqual(t, x, y)
	assert.Equal(t, x, in.Intern("x"))
	assert.Equal(t, "x", in.Resolve(x))
	assert.Equal(t, "y", in.Resolve(y))
	assert.Equal(t, 2, in.Len())
}

func TestLookupDoesNotIntern(t *testing.T) {
	in := New()
	_, ok := in.Lookup("missing")
	assert.False(t, ok)
	assert.Equal(t, 0, in.Len())

	sym := in.Intern("present")
	got, ok := in.Lookup("present")
	require.True(t, ok)
	assert.Equal(t, sym, got)
}

func TestConcurrentIntern(t *testing.T) {
	in := New()
	var wg sync.WaitGroup
	results := make([][]Symbol, 8)
	for w := range results {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				results[w] = append(results[w], in.Intern(fmt.Sprintf("name%d", i)))
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, 100, in.Len())
	for _, syms := range results[1:] {
		assert.Equal(t, results[0], syms)
	}
	for i, sym := range results[0] {
		assert.Equal(t, fmt.Sprintf("name%d", i), in.Resolve(sym))
	}
}
