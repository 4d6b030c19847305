package search

import (
	"bufio"
	"io"

	"github.com/domino14/boggler/grid"
)

// Sink receives words as a search finds them. The same word may arrive
// once per distinct path that spells it.
type Sink interface {
	Record(word string)
}

// PathSink is a Sink that also wants the cells spelling each word. A search
// calls RecordPath instead of Record on sinks that implement it. path is a
// copy the sink may keep.
type PathSink interface {
	Sink
	RecordPath(word string, path []grid.Cell)
}

// Match is a word together with the cells that spell it.
type Match struct {
	Word string
	Path []grid.Cell
}

// SliceSink keeps every word in the order found, duplicates included.
type SliceSink struct {
	words []string
}

func (s *SliceSink) Record(word string) {
	s.words = append(s.words, word)
}

func (s *SliceSink) Words() []string {
	return s.words
}

// PathCollector keeps every match with its path.
type PathCollector struct {
	matches []Match
}

func (p *PathCollector) Record(word string) {
	p.matches = append(p.matches, Match{Word: word})
}

func (p *PathCollector) RecordPath(word string, path []grid.Cell) {
	p.matches = append(p.matches, Match{Word: word, Path: path})
}

func (p *PathCollector) Matches() []Match {
	return p.matches
}

// WriterSink writes each word on its own line as soon as it is found. The
// first write error is kept and later words are dropped.
type WriterSink struct {
	w   *bufio.Writer
	err error
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: bufio.NewWriter(w)}
}

func (ws *WriterSink) Record(word string) {
	if ws.err != nil {
		return
	}
	if _, err := ws.w.WriteString(word); err != nil {
		ws.err = err
		return
	}
	if err := ws.w.WriteByte('\n'); err != nil {
		ws.err = err
		return
	}
	ws.err = ws.w.Flush()
}

func (ws *WriterSink) Err() error {
	return ws.err
}

// DedupSink passes each distinct word to Next only the first time it is
// recorded.
type DedupSink struct {
	Next Sink
	seen map[string]struct{}
}

func NewDedupSink(next Sink) *DedupSink {
	return &DedupSink{Next: next, seen: make(map[string]struct{})}
}

func (d *DedupSink) first(word string) bool {
	if _, ok := d.seen[word]; ok {
		return false
	}
	d.seen[word] = struct{}{}
	return true
}

func (d *DedupSink) Record(word string) {
	if d.first(word) {
		d.Next.Record(word)
	}
}

func (d *DedupSink) RecordPath(word string, path []grid.Cell) {
	if !d.first(word) {
		return
	}
	if ps, ok := d.Next.(PathSink); ok {
		ps.RecordPath(word, path)
	} else {
		d.Next.Record(word)
	}
}

// FuncSink adapts a function to a Sink.
type FuncSink func(word string)

func (f FuncSink) Record(word string) {
	f(word)
}
