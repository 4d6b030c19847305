package search

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/boggler/dictionary"
	"github.com/domino14/boggler/grid"
)

// Stats describes one search.
type Stats struct {
	// Nodes is the number of cells entered over the whole traversal.
	Nodes int64
	// Matches is the number of words recorded, duplicates included.
	Matches int64
	// Elapsed is the wall time of the search.
	Elapsed time.Duration
}

// Option configures an Engine.
type Option func(*Engine)

// WithPruning turns prefix pruning on or off. It only has an effect on
// dictionaries that implement dictionary.PrefixDictionary, and never
// changes the set of words found.
func WithPruning(prune bool) Option {
	return func(e *Engine) {
		e.prune = prune
	}
}

// Engine finds every word of a dictionary that can be traced through a grid
// by moving between adjacent cells without reusing any. An Engine holds no
// per-search state and may be shared.
type Engine struct {
	prune bool
}

// NewEngine returns an engine with pruning on, then applies opts.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{prune: true}
	for _, o := range opts {
		o(e)
	}
	return e
}

// FindWords searches g for the words of d with a default engine and
// reports them to sink.
func FindWords(g *grid.Grid, d dictionary.Dictionary, sink Sink) {
	NewEngine().FindWords(g, d, sink)
}

// traversal is everything one depth-first walk needs.
type traversal struct {
	g      *grid.Grid
	d      dictionary.Dictionary
	pd     dictionary.PrefixDictionary
	sink   Sink
	ps     PathSink
	state  *State
	nodes  int64
	nmatch int64
}

func (e *Engine) newTraversal(g *grid.Grid, d dictionary.Dictionary, sink Sink) *traversal {
	t := &traversal{g: g, d: d, sink: sink, state: NewState(g)}
	if e.prune {
		t.pd, _ = d.(dictionary.PrefixDictionary)
	}
	t.ps, _ = sink.(PathSink)
	return t
}

// enter extends the path with c and records the word it spells, if any.
// It returns false if no word can start with the new path.
func (t *traversal) enter(c grid.Cell) bool {
	t.state.Enter(c, t.g.CharAt(c.Row, c.Col))
	t.nodes++
	word := t.state.Word()
	if t.d.Contains(word) {
		t.nmatch++
		if t.ps != nil {
			path := make([]grid.Cell, t.state.Len())
			copy(path, t.state.Path())
			t.ps.RecordPath(word, path)
		} else {
			t.sink.Record(word)
		}
	}
	return t.pd == nil || t.pd.HasPrefix(word)
}

func (t *traversal) visit(c grid.Cell) {
	if t.enter(c) {
		for _, n := range t.g.Neighbors(c.Row, c.Col) {
			if !t.state.Visited(n) {
				t.visit(n)
			}
		}
	}
	t.state.Leave(c)
}

// FindWords reports to sink every path through g that spells a word of d.
// Start cells are taken in row-major order and neighbours in grid order, so
// the sequence of recorded words is deterministic.
func (e *Engine) FindWords(g *grid.Grid, d dictionary.Dictionary, sink Sink) Stats {
	start := time.Now()
	t := e.newTraversal(g, d, sink)
	for _, c := range g.Cells() {
		t.state.Reset()
		t.visit(c)
	}
	st := Stats{Nodes: t.nodes, Matches: t.nmatch, Elapsed: time.Since(start)}
	log.Debug().Int64("nodes", st.Nodes).Int64("matches", st.Matches).
		Bool("pruning", t.pd != nil).Dur("elapsed", st.Elapsed).Msg("search-done")
	return st
}
