package span

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnion(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected Span
	}{
		{"disjoint", New(1, 0, 2), New(1, 5, 7), New(1, 0, 7)},
		{"reversed", New(1, 5, 7), New(1, 0, 2), New(1, 0, 7)},
		{"nested", New(1, 0, 10), New(1, 3, 4), New(1, 0, 10)},
		{"empty", Point(1, 3), New(1, 3, 6), New(1, 3, 6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Union(tt.a, tt.b)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, tt.a.Union(tt.b))
			assert.True(t, got.Contains(tt.a))
			assert.True(t, got.Contains(tt.b))
		})
	}
}

func TestNewOrdersOffsets(t *testing.T) {
	s := New(0, 9, 4)
	assert.Equal(t, 4, s.Start)
	assert.Equal(t, 9, s.End)
	assert.Equal(t, 5, s.Len())
	assert.False(t, s.IsEmpty())
	assert.True(t, Zero(0).IsEmpty())
	assert.Equal(t, "4..9", s.String())
}

func TestSources(t *testing.T) {
	sources := NewSources()
	first := sources.Add("<stdin>", "x = 1")
	second := sources.Add("<stdin>", "y + 2")
	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, sources.Len())

	text, err := sources.Slice(New(second, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, "y", text)

	text, err = sources.Slice(New(first, 4, 50))
	require.NoError(t, err)
	assert.Equal(t, "1", text)

	_, err = sources.Text(SourceID(42))
	assert.Error(t, err)
	assert.Equal(t, "<stdin>", sources.Name(first))
}

func TestLocate(t *testing.T) {
	sources := NewSources()
	id := sources.Add("calc", "a = 1\nb = a + 2")

	loc, err := sources.Locate(id, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, loc.Line)
	assert.Equal(t, 5, loc.Column)
	assert.Equal(t, "b = a + 2", loc.LineText)

	loc, err = sources.Locate(id, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, loc.Line)
	assert.Equal(t, 1, loc.Column)
	assert.Equal(t, "a = 1", loc.LineText)
}

func TestLocateAt(t *testing.T) {
	sources := NewSources()
	id := sources.AddAt("calc.txt", "x + y", 42)

	loc, err := sources.Locate(id, 4)
	require.NoError(t, err)
	assert.Equal(t, 42, loc.Line)
	assert.Equal(t, 5, loc.Column)

	_, err = sources.Locate(id+1, 0)
	assert.Error(t, err)
}
