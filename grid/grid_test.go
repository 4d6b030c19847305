package grid

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func sample(t *testing.T) *Grid {
	t.Helper()
	g, err := FromStrings([]string{"mlia", "nuit", "lenp", "usee"})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestCharAt(t *testing.T) {
	is := is.New(t)
	g := sample(t)
	is.Equal(g.Rows(), 4)
	is.Equal(g.Cols(), 4)
	is.Equal(g.Size(), 16)
	is.Equal(g.CharAt(0, 0), 'm')
	is.Equal(g.CharAt(2, 3), 'p')
	is.Equal(g.CharAt(3, 1), 's')
}

func TestCharAtOutOfBoundsPanics(t *testing.T) {
	g := sample(t)
	assert.Panics(t, func() { g.CharAt(4, 0) })
	assert.Panics(t, func() { g.CharAt(0, -1) })
	assert.Panics(t, func() { g.Neighbors(-1, 2) })
}

func TestNeighbors(t *testing.T) {
	g := sample(t)
	assert.Equal(t, []Cell{{0, 1}, {1, 0}, {1, 1}}, g.Neighbors(0, 0))
	assert.Equal(t, []Cell{{2, 2}, {2, 3}, {3, 2}}, g.Neighbors(3, 3))
	assert.Equal(t, []Cell{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 2},
		{2, 0}, {2, 1}, {2, 2},
	}, g.Neighbors(1, 1))
	// edges do not wrap around
	assert.Len(t, g.Neighbors(1, 3), 5)
	for _, n := range g.Neighbors(1, 3) {
		assert.NotEqual(t, 0, n.Col)
	}
}

func TestNeighborsAreAdjacent(t *testing.T) {
	is := is.New(t)
	g, err := FromStrings([]string{"abc", "def"})
	is.NoErr(err)
	for _, c := range g.Cells() {
		ns := g.Neighbors(c.Row, c.Col)
		for _, n := range ns {
			is.True(Adjacent(c, n))
		}
		count := 0
		for _, o := range g.Cells() {
			if Adjacent(c, o) {
				count++
			}
		}
		is.Equal(len(ns), count)
	}
}

func TestSingleCell(t *testing.T) {
	is := is.New(t)
	g, err := FromStrings([]string{"a"})
	is.NoErr(err)
	is.Equal(len(g.Neighbors(0, 0)), 0)
	is.Equal(g.Cells(), []Cell{{0, 0}})
}

func TestNewErrors(t *testing.T) {
	is := is.New(t)
	_, err := New(nil)
	is.Equal(err, ErrEmptyGrid)
	_, err = FromStrings([]string{""})
	is.Equal(err, ErrEmptyGrid)
	_, err = FromStrings([]string{"abc", "de"})
	is.Equal(err, ErrRaggedGrid)
}

func TestNewCopiesInput(t *testing.T) {
	is := is.New(t)
	letters := [][]rune{{'a', 'b'}, {'c', 'd'}}
	g, err := New(letters)
	is.NoErr(err)
	letters[0][0] = 'z'
	is.Equal(g.CharAt(0, 0), 'a')
}

func TestParse(t *testing.T) {
	is := is.New(t)
	for _, in := range []string{
		"mlia/nuit/lenp/usee",
		"m l i a\nn u i t\nl e n p\nu s e e\n",
		"mlia, nuit, lenp, usee",
	} {
		g, err := Parse(in)
		is.NoErr(err)
		is.Equal(g.Compact(), "mlia/nuit/lenp/usee")
	}
	_, err := Parse("  \n/ ")
	is.Equal(err, ErrEmptyGrid)
}

func TestString(t *testing.T) {
	is := is.New(t)
	g, err := Parse("ab/cd")
	is.NoErr(err)
	is.Equal(g.String(), "a b\nc d\n")
}

func TestNonSquare(t *testing.T) {
	is := is.New(t)
	g, err := Parse("abcde/fghij")
	is.NoErr(err)
	is.Equal(g.Rows(), 2)
	is.Equal(g.Cols(), 5)
	is.Equal(g.CharAt(1, 4), 'j')
	is.Equal(g.Index(Cell{1, 4}), 9)
}
