package search

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/boggler/dictionary"
	"github.com/domino14/boggler/grid"
)

// bufferSink holds the matches of one start cell until they can be passed
// on in order.
type bufferSink struct {
	matches []Match
}

func (b *bufferSink) Record(word string) {
	b.matches = append(b.matches, Match{Word: word})
}

func (b *bufferSink) RecordPath(word string, path []grid.Cell) {
	b.matches = append(b.matches, Match{Word: word, Path: path})
}

// FindWordsParallel spreads the start cells of g over threads workers. Each
// worker has its own State. Matches are buffered per start cell and handed
// to sink in row-major start cell order after all workers finish, so sink
// sees exactly what FindWords would have given it and need not be safe for
// concurrent use. If ctx is cancelled the search stops early, nothing is
// passed to sink, and ctx's error is returned.
func (e *Engine) FindWordsParallel(ctx context.Context, g *grid.Grid, d dictionary.Dictionary,
	sink Sink, threads int) (Stats, error) {

	start := time.Now()
	if threads < 1 {
		threads = 1
	}
	starts := g.Cells()
	if threads > len(starts) {
		threads = len(starts)
	}
	_, wantPaths := sink.(PathSink)
	buffers := make([]bufferSink, len(starts))
	jobs := make(chan int, len(starts))
	for i := range starts {
		jobs <- i
	}
	close(jobs)

	var nodes, matches atomic.Int64
	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < threads; w++ {
		w := w
		eg.Go(func() error {
			t := e.newTraversal(g, d, nil)
			for i := range jobs {
				if err := ctx.Err(); err != nil {
					return err
				}
				if wantPaths {
					t.sink, t.ps = &buffers[i], &buffers[i]
				} else {
					t.sink, t.ps = &buffers[i], nil
				}
				t.state.Reset()
				t.visit(starts[i])
			}
			nodes.Add(t.nodes)
			matches.Add(t.nmatch)
			log.Debug().Int("worker", w).Int64("nodes", t.nodes).Msg("search-worker-done")
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Stats{}, err
	}

	for i := range buffers {
		for _, m := range buffers[i].matches {
			if wantPaths {
				sink.(PathSink).RecordPath(m.Word, m.Path)
			} else {
				sink.Record(m.Word)
			}
		}
	}
	st := Stats{Nodes: nodes.Load(), Matches: matches.Load(), Elapsed: time.Since(start)}
	log.Debug().Int("threads", threads).Int64("nodes", st.Nodes).
		Int64("matches", st.Matches).Dur("elapsed", st.Elapsed).Msg("parallel-search-done")
	return st, nil
}
