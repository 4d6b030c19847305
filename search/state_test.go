package search

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/boggler/grid"
)

func snapshot(s *State) ([]bool, string, []grid.Cell) {
	v := make([]bool, len(s.visited))
	copy(v, s.visited)
	c := make([]grid.Cell, len(s.cells))
	copy(c, s.cells)
	return v, s.Word(), c
}

func TestEnterLeaveRestores(t *testing.T) {
	is := is.New(t)
	g, err := grid.Parse("mlia/nuit/lenp/usee")
	is.NoErr(err)
	s := NewState(g)
	s.Enter(grid.Cell{Row: 0, Col: 1}, 'l')
	s.Enter(grid.Cell{Row: 1, Col: 2}, 'i')

	for _, c := range g.Cells() {
		if s.Visited(c) {
			continue
		}
		v0, w0, c0 := snapshot(s)
		s.Enter(c, g.CharAt(c.Row, c.Col))
		is.True(s.Visited(c))
		is.Equal(s.Len(), 3)
		is.Equal(s.Word(), w0+string(g.CharAt(c.Row, c.Col)))
		s.Leave(c)
		v1, w1, c1 := snapshot(s)
		is.Equal(v0, v1)
		is.Equal(w0, w1)
		is.Equal(c0, c1)
	}
}

func TestStateWordIsCopy(t *testing.T) {
	is := is.New(t)
	g, err := grid.Parse("ab/cd")
	is.NoErr(err)
	s := NewState(g)
	s.Enter(grid.Cell{Row: 0, Col: 0}, 'a')
	w := s.Word()
	s.Enter(grid.Cell{Row: 0, Col: 1}, 'b')
	is.Equal(w, "a")
	is.Equal(s.Word(), "ab")
}

func TestStateMisuse(t *testing.T) {
	g, err := grid.Parse("ab/cd")
	assert.NoError(t, err)
	s := NewState(g)
	a, b := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 1}
	s.Enter(a, 'a')
	assert.Panics(t, func() { s.Enter(a, 'a') })
	assert.Panics(t, func() { s.Leave(b) })
	s.Enter(b, 'b')
	assert.Panics(t, func() { s.Leave(a) })
}

func TestStateReset(t *testing.T) {
	is := is.New(t)
	g, err := grid.Parse("ab/cd")
	is.NoErr(err)
	s := NewState(g)
	s.Enter(grid.Cell{Row: 0, Col: 0}, 'a')
	s.Enter(grid.Cell{Row: 1, Col: 1}, 'd')
	s.Reset()
	is.Equal(s.Len(), 0)
	is.Equal(s.Word(), "")
	for _, c := range g.Cells() {
		is.True(!s.Visited(c))
	}
}
