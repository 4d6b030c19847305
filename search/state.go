package search

import (
	"fmt"

	"github.com/domino14/boggler/grid"
)

// State is the scratch data of one traversal: which cells are on the
// current path, and the letters they spell. A State belongs to exactly one
// traversal at a time; concurrent searches each need their own.
//
// Invariant: visited is true for exactly the cells in cells, and path holds
// their letters in the same order.
type State struct {
	cols    int
	visited []bool
	path    []rune
	cells   []grid.Cell
}

func NewState(g *grid.Grid) *State {
	return &State{
		cols:    g.Cols(),
		visited: make([]bool, g.Size()),
		path:    make([]rune, 0, g.Size()),
		cells:   make([]grid.Cell, 0, g.Size()),
	}
}

func (s *State) idx(c grid.Cell) int {
	return c.Row*s.cols + c.Col
}

// Enter puts c, showing ch, at the end of the path.
func (s *State) Enter(c grid.Cell, ch rune) {
	i := s.idx(c)
	if s.visited[i] {
		panic(fmt.Sprintf("search: cell %v entered twice", c))
	}
	s.visited[i] = true
	s.path = append(s.path, ch)
	s.cells = append(s.cells, c)
}

// Leave takes c, which must be the last cell entered, off the path. It
// undoes the matching Enter exactly.
func (s *State) Leave(c grid.Cell) {
	n := len(s.cells)
	if n == 0 || s.cells[n-1] != c {
		panic(fmt.Sprintf("search: leaving %v, which is not the end of the path", c))
	}
	s.visited[s.idx(c)] = false
	s.path = s.path[:n-1]
	s.cells = s.cells[:n-1]
}

// Word returns the current candidate word. The string is a copy.
func (s *State) Word() string {
	return string(s.path)
}

// Len is the number of cells on the path.
func (s *State) Len() int {
	return len(s.cells)
}

func (s *State) Visited(c grid.Cell) bool {
	return s.visited[s.idx(c)]
}

// Path returns the cells of the current path. It is only valid until the
// next Enter or Leave; do not modify it.
func (s *State) Path() []grid.Cell {
	return s.cells
}

// Reset empties the path.
func (s *State) Reset() {
	for _, c := range s.cells {
		s.visited[s.idx(c)] = false
	}
	s.path = s.path[:0]
	s.cells = s.cells[:0]
}
