package search

import (
	"bytes"
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/boggler/grid"
)

func TestWriterSink(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	ws := NewWriterSink(&buf)
	ws.Record("line")
	// written immediately, not at the end
	is.Equal(buf.String(), "line\n")
	ws.Record("line")
	is.Equal(buf.String(), "line\nline\n")
	is.NoErr(ws.Err())
}

type failingWriter struct{}

var errWrite = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriterSinkKeepsFirstError(t *testing.T) {
	is := is.New(t)
	ws := NewWriterSink(failingWriter{})
	ws.Record("a")
	ws.Record("b")
	is.Equal(ws.Err(), errWrite)
}

func TestDedupSink(t *testing.T) {
	is := is.New(t)
	pc := &PathCollector{}
	d := NewDedupSink(pc)
	d.RecordPath("see", []grid.Cell{{Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3}})
	d.RecordPath("see", []grid.Cell{{Row: 3, Col: 1}, {Row: 3, Col: 3}, {Row: 3, Col: 2}})
	d.Record("use")
	d.Record("use")
	is.Equal(len(pc.Matches()), 2)
	is.Equal(pc.Matches()[0].Path[2], grid.Cell{Row: 3, Col: 3})
	is.Equal(pc.Matches()[1].Word, "use")

	sl := &SliceSink{}
	d = NewDedupSink(sl)
	d.RecordPath("a", nil)
	d.RecordPath("a", nil)
	is.Equal(sl.Words(), []string{"a"})
}

func TestFuncSink(t *testing.T) {
	is := is.New(t)
	var got []string
	var s Sink = FuncSink(func(w string) { got = append(got, w) })
	s.Record("x")
	is.Equal(got, []string{"x"})
}
