package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/boggler/config"
	"github.com/domino14/boggler/dictionary"
	"github.com/domino14/boggler/grid"
	"github.com/domino14/boggler/search"
	"github.com/domino14/boggler/stats"
)

type Response struct {
	message string
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) Int(key string) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return 0, errors.New(key + " not found in options")
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) Bool(key string) bool {
	v := c[key]
	if len(v) == 0 {
		return false
	}
	return strings.ToLower(v[0]) == "true"
}

func (c CmdOptions) BoolDefault(key string, defaultB bool) (bool, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultB, nil
	}
	return strconv.ParseBool(v[0])
}

func msg(message string) *Response {
	return &Response{message: message}
}

type solveResult struct {
	grid    string
	lexicon string
	words   []string
	stats   search.Stats
}

// reportSink keeps every word it is given and echoes it to w as it arrives.
type reportSink struct {
	words []string
	echo  *search.WriterSink
}

func (r *reportSink) Record(word string) {
	r.words = append(r.words, word)
	if r.echo != nil {
		r.echo.Record(word)
	}
}

// pathReportSink is a reportSink that also prints the cells of each word.
type pathReportSink struct {
	reportSink
	w io.Writer
}

func (p *pathReportSink) RecordPath(word string, path []grid.Cell) {
	p.words = append(p.words, word)
	if p.w != nil {
		fmt.Fprintf(p.w, "%-16s %s\n", word, formatPath(path))
	}
}

func formatPath(path []grid.Cell) string {
	var sb strings.Builder
	for i, c := range path {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%d,%d", c.Row, c.Col)
	}
	return sb.String()
}

func (sc *ShellController) currentLexicon() (dictionary.Lexicon, error) {
	if sc.lexicon == nil {
		if err := sc.LoadDefaultLexicon(); err != nil {
			return nil, err
		}
	}
	return sc.lexicon, nil
}

func (sc *ShellController) solve(cmd *shellcmd) (*Response, error) {
	g := sc.curGrid
	if gs := cmd.options.String("grid"); gs != "" {
		var err error
		g, err = grid.Parse(gs)
		if err != nil {
			return nil, err
		}
	}
	lex, err := sc.currentLexicon()
	if err != nil {
		return nil, err
	}
	prune, err := cmd.options.BoolDefault("prune", sc.config.GetBool(config.ConfigPrune))
	if err != nil {
		return nil, err
	}
	dedupe, err := cmd.options.BoolDefault("dedupe", sc.config.GetBool(config.ConfigDedupe))
	if err != nil {
		return nil, err
	}
	threads, err := cmd.options.IntDefault("threads", sc.config.GetInt(config.ConfigThreads))
	if err != nil {
		return nil, err
	}
	if threads < 0 {
		return nil, errors.New("threads must not be negative")
	}
	quiet := cmd.options.Bool("quiet")
	sc.curGrid = g

	rs := reportSink{}
	if !quiet {
		rs.echo = search.NewWriterSink(sc.out)
	}
	var sink search.Sink = &rs
	var prs *pathReportSink
	if cmd.options.Bool("paths") {
		prs = &pathReportSink{}
		if !quiet {
			prs.w = sc.out
		}
		sink = prs
	}
	if dedupe {
		sink = search.NewDedupSink(sink)
	}

	engine := search.NewEngine(search.WithPruning(prune))
	var st search.Stats
	if threads > 0 {
		st, err = engine.FindWordsParallel(context.Background(), sc.curGrid, lex, sink, threads)
		if err != nil {
			return nil, err
		}
	} else {
		st = engine.FindWords(sc.curGrid, lex, sink)
	}
	if rs.echo != nil && rs.echo.Err() != nil {
		log.Err(rs.echo.Err()).Msg("writing-results")
	}
	words := rs.words
	if prs != nil {
		words = prs.words
	}

	sc.lastRun = &solveResult{
		grid:    sc.curGrid.Compact(),
		lexicon: lex.Name(),
		words:   words,
		stats:   st,
	}
	sc.lastSumm = stats.Summarize(words)
	sc.lastSumm.Lexicon = lex.Name()
	sc.lastSumm.Grid = sc.curGrid.Compact()
	sc.lastSumm.Nodes = st.Nodes

	return msg(fmt.Sprintf("%d words (%d distinct) in %v; %d cells visited",
		len(words), sc.lastSumm.Unique, st.Elapsed, st.Nodes)), nil
}

func (sc *ShellController) setGrid(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(sc.curGrid.String()), nil
	}
	g, err := grid.Parse(strings.Join(cmd.args, "/"))
	if err != nil {
		return nil, err
	}
	sc.curGrid = g
	sc.lastRun, sc.lastSumm = nil, nil
	return msg(g.String()), nil
}

func (sc *ShellController) random(cmd *shellcmd) (*Response, error) {
	size, err := cmd.options.IntDefault("size", 4)
	if err != nil {
		return nil, err
	}
	dice, ok := grid.DiceFor(size, size)
	if !ok {
		return nil, fmt.Errorf("no dice set for a %dx%d board", size, size)
	}
	g, err := grid.Random(size, size, dice)
	if err != nil {
		return nil, err
	}
	sc.curGrid = g
	sc.lastRun, sc.lastSumm = nil, nil
	return msg(g.String()), nil
}

func (sc *ShellController) useLexicon(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		if sc.lexicon == nil {
			return msg("no lexicon loaded"), nil
		}
		return msg(fmt.Sprintf("%s (%d words)", sc.lexicon.Name(), sc.lexicon.NumWords())), nil
	}
	lex, err := dictionary.Get(sc.config, cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.lexicon = lex
	return msg(fmt.Sprintf("loaded %s (%d words)", lex.Name(), lex.NumWords())), nil
}

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	path := cmd.options.String("file")
	if path == "" {
		return nil, errors.New("need a -file to load")
	}
	kind := cmd.options.String("kind")
	if kind == "" {
		kind = sc.config.GetString(config.ConfigDictionaryKind)
	}
	enc := cmd.options.String("encoding")
	if enc == "" {
		enc = sc.config.GetString(config.ConfigWordlistEncoding)
	}

	var lex dictionary.Lexicon
	var err error
	if strings.HasSuffix(path, dictionary.TrieExtension) {
		lex, err = dictionary.LoadTrieFile(path)
	} else {
		lex, err = dictionary.LoadFile(path, kind, enc)
	}
	if err != nil {
		return nil, err
	}

	if out := cmd.options.String("save"); out != "" {
		t, ok := lex.(*dictionary.Trie)
		if !ok {
			return nil, errors.New("only a trie can be saved; use -kind trie")
		}
		if err := dictionary.SaveTrieFile(out, t); err != nil {
			return nil, err
		}
		log.Info().Str("path", out).Int("nodes", t.NumNodes()).Msg("saved-trie")
	}
	sc.lexicon = lex
	return msg(fmt.Sprintf("loaded %s (%d words)", lex.Name(), lex.NumWords())), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) > 0 && cmd.args[0] == "settings" {
		return msg(sc.config.SanitizedSettings()), nil
	}
	var sb strings.Builder
	sb.WriteString(sc.curGrid.String())
	if sc.lexicon != nil {
		fmt.Fprintf(&sb, "lexicon: %s (%d words)\n", sc.lexicon.Name(), sc.lexicon.NumWords())
	}
	if sc.lastRun != nil && sc.lastRun.grid == sc.curGrid.Compact() {
		fmt.Fprintf(&sb, "last solve: %d words with %s\n", len(sc.lastRun.words), sc.lastRun.lexicon)
	}
	return msg(strings.TrimRight(sb.String(), "\n")), nil
}

func (sc *ShellController) stats(cmd *shellcmd) (*Response, error) {
	if sc.lastSumm == nil {
		return nil, errors.New("nothing solved yet; use `solve` first")
	}
	return msg(strings.TrimRight(sc.lastSumm.String(), "\n")), nil
}

func (sc *ShellController) hist(cmd *shellcmd) (*Response, error) {
	if sc.lastSumm == nil {
		return nil, errors.New("nothing solved yet; use `solve` first")
	}
	bins, err := cmd.options.IntDefault("bins", 8)
	if err != nil {
		return nil, err
	}
	if bins < 1 {
		return nil, errors.New("bins must be positive")
	}
	var sb strings.Builder
	if err := sc.lastSumm.Histogram(&sb, bins); err != nil {
		return nil, err
	}
	return msg(strings.TrimRight(sb.String(), "\n")), nil
}

func (sc *ShellController) export(cmd *shellcmd) (*Response, error) {
	if sc.lastSumm == nil {
		return nil, errors.New("nothing solved yet; use `solve` first")
	}
	path := cmd.options.String("file")
	if path == "" {
		return nil, errors.New("need a -file to export to")
	}
	bts, err := sc.lastSumm.YAML()
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, bts, 0644); err != nil {
		return nil, err
	}
	return msg("exported summary to " + path), nil
}

// settable lists the config keys the shell can change, with a check for
// each value.
var settable = map[string]func(string) error{
	config.ConfigPrune:  func(v string) error { _, err := strconv.ParseBool(v); return err },
	config.ConfigDedupe: func(v string) error { _, err := strconv.ParseBool(v); return err },
	config.ConfigThreads: func(v string) error {
		n, err := strconv.Atoi(v)
		if err == nil && n < 0 {
			err = errors.New("threads must not be negative")
		}
		return err
	},
	config.ConfigDictionaryKind: func(v string) error {
		if v != config.KindTrie && v != config.KindHash {
			return fmt.Errorf("%w: %q", dictionary.ErrUnknownKind, v)
		}
		return nil
	},
	config.ConfigWordlistEncoding: func(v string) error {
		if v != dictionary.EncodingUTF8 && v != dictionary.EncodingLatin1 {
			return fmt.Errorf("unknown encoding %q", v)
		}
		return nil
	},
	config.ConfigLexiconPath:    func(string) error { return nil },
	config.ConfigDefaultLexicon: func(string) error { return nil },
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(sc.config.SanitizedSettings()), nil
	}
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: set <option> <value>")
	}
	key, value := cmd.args[0], cmd.args[1]
	check, ok := settable[key]
	if !ok {
		return nil, errors.New("cannot set " + key)
	}
	if err := check(value); err != nil {
		return nil, err
	}
	sc.config.Set(key, value)
	switch key {
	case config.ConfigLexiconPath, config.ConfigWordlistEncoding:
		// cached dictionaries were read under the old setting
		n := dictionary.Evict()
		log.Debug().Str("setting", key).Int("evicted", n).Msg("evicted-dictionaries")
	}
	return msg(key + " set to " + value), nil
}
