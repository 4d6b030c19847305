package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/domino14/boggler/dictionary"
)

func main() {
	name := pflag.String("name", "", "lexicon name stored in the trie (default: word list file name)")
	encoding := pflag.String("encoding", dictionary.EncodingUTF8, "word list encoding: utf8 or latin1")
	minimize := pflag.Bool("minimize", true, "share identical suffixes")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: make_trie [flags] <wordlist> <out.trie>\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if pflag.NArg() != 2 {
		pflag.Usage()
		os.Exit(2)
	}
	in, out := pflag.Arg(0), pflag.Arg(1)
	if *name == "" {
		*name = strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	}

	f, err := os.Open(in)
	if err != nil {
		log.Fatal().Err(err).Msg("could-not-open-wordlist")
	}
	words, err := dictionary.ReadWordList(f, *encoding)
	f.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("could-not-read-wordlist")
	}

	start := time.Now()
	t, err := dictionary.MakeTrie(*name, words, *minimize)
	if err != nil {
		log.Fatal().Err(err).Msg("could-not-make-trie")
	}
	if err := dictionary.SaveTrieFile(out, t); err != nil {
		log.Fatal().Err(err).Msg("could-not-save-trie")
	}
	log.Info().Str("lexicon", t.Name()).Int("words", t.NumWords()).Int("nodes", t.NumNodes()).
		Dur("elapsed", time.Since(start)).Str("out", out).Msg("made-trie")
}
