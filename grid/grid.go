package grid

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrEmptyGrid     = errors.New("grid must have at least one row and one column")
	ErrRaggedGrid    = errors.New("all grid rows must have the same length")
	ErrNotEnoughDice = errors.New("not enough dice for the board")
)

// Cell is a grid coordinate.
type Cell struct {
	Row int
	Col int
}

// Grid is an immutable rows x cols matrix of letters.
type Grid struct {
	rows  int
	cols  int
	cells []rune
	// neighbors[i] holds the in-bounds Moore neighbourhood of cell i.
	neighbors [][]Cell
}

// New copies letters into a new grid.
func New(letters [][]rune) (*Grid, error) {
	if len(letters) == 0 || len(letters[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(letters), len(letters[0])
	g := &Grid{rows: rows, cols: cols, cells: make([]rune, 0, rows*cols)}
	for _, row := range letters {
		if len(row) != cols {
			return nil, ErrRaggedGrid
		}
		g.cells = append(g.cells, row...)
	}
	g.computeNeighbors()
	return g, nil
}

// FromStrings makes a grid with one row per string, one letter per rune.
func FromStrings(rows []string) (*Grid, error) {
	letters := make([][]rune, len(rows))
	for i, r := range rows {
		letters[i] = []rune(r)
	}
	return New(letters)
}

// Parse reads a grid from text. Rows are separated by newlines, '/' or ',';
// whitespace inside a row is ignored, so "m l i a" and "mlia" are the same
// row. Empty rows are skipped.
func Parse(s string) (*Grid, error) {
	split := strings.FieldsFunc(s, func(r rune) bool {
		return r == '\n' || r == '/' || r == ','
	})
	var rows []string
	for _, row := range split {
		row = strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, row)
		if row != "" {
			rows = append(rows, row)
		}
	}
	return FromStrings(rows)
}

// offsets in the order neighbours are reported: rows above to below, and
// within a row left to right.
var offsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func (g *Grid) computeNeighbors() {
	g.neighbors = make([][]Cell, len(g.cells))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			var ns []Cell
			for _, off := range offsets {
				nr, nc := r+off[0], c+off[1]
				if nr < 0 || nr >= g.rows || nc < 0 || nc >= g.cols {
					continue
				}
				ns = append(ns, Cell{nr, nc})
			}
			g.neighbors[r*g.cols+c] = ns
		}
	}
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// Size is the number of cells, which bounds the length of any path.
func (g *Grid) Size() int { return len(g.cells) }

// Index returns the row-major index of c.
func (g *Grid) Index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// CharAt returns the letter at (r, c). Out-of-bounds coordinates are a
// programming error and panic.
func (g *Grid) CharAt(r, c int) rune {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		panic("grid: coordinates out of bounds")
	}
	return g.cells[r*g.cols+c]
}

// Neighbors returns the cells adjacent to (r, c) horizontally, vertically
// or diagonally, without wrapping around edges. The order is fixed and the
// slice is shared; do not modify it.
func (g *Grid) Neighbors(r, c int) []Cell {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		panic("grid: coordinates out of bounds")
	}
	return g.neighbors[r*g.cols+c]
}

// Cells returns every cell in row-major order.
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, 0, len(g.cells))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cells = append(cells, Cell{r, c})
		}
	}
	return cells
}

// Adjacent reports whether a and b are distinct neighbouring cells.
func Adjacent(a, b Cell) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	return a != b && dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1
}

// String renders the grid one row per line, letters separated by spaces.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(g.cells[r*g.cols+c])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Compact renders the grid as rows joined by '/', a form Parse accepts.
func (g *Grid) Compact() string {
	rows := make([]string, g.rows)
	for r := range rows {
		rows[r] = string(g.cells[r*g.cols : (r+1)*g.cols])
	}
	return strings.Join(rows, "/")
}
