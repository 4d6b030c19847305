package search

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/boggler/dictionary"
	"github.com/domino14/boggler/grid"
)

// frame is one level of the explicit stack: a cell on the path and the
// position of the next neighbour to try from it.
type frame struct {
	cell    grid.Cell
	next    int
	explore bool
}

// FindWordsIterative is FindWords with an explicit stack instead of
// recursion. It records the same words in the same order.
func (e *Engine) FindWordsIterative(g *grid.Grid, d dictionary.Dictionary, sink Sink) Stats {
	start := time.Now()
	t := e.newTraversal(g, d, sink)
	stack := make([]frame, 0, g.Size())
	for _, c := range g.Cells() {
		t.state.Reset()
		stack = append(stack[:0], frame{cell: c, explore: t.enter(c)})
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.explore {
				ns := g.Neighbors(top.cell.Row, top.cell.Col)
				for top.next < len(ns) && t.state.Visited(ns[top.next]) {
					top.next++
				}
				if top.next < len(ns) {
					n := ns[top.next]
					top.next++
					stack = append(stack, frame{cell: n, explore: t.enter(n)})
					continue
				}
			}
			t.state.Leave(top.cell)
			stack = stack[:len(stack)-1]
		}
	}
	st := Stats{Nodes: t.nodes, Matches: t.nmatch, Elapsed: time.Since(start)}
	log.Debug().Int64("nodes", st.Nodes).Int64("matches", st.Matches).
		Dur("elapsed", st.Elapsed).Msg("iterative-search-done")
	return st
}
