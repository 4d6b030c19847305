package dictionary

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/boggler/cache"
	"github.com/domino14/boggler/config"
)

const (
	CacheKeyPrefix = "dictionary:"

	WordListExtension = ".txt"
	TrieExtension     = ".trie"
)

func cacheKey(kind, name string) string {
	return CacheKeyPrefix + kind + ":" + name
}

// CacheLoadFunc is the function that loads a dictionary into the global cache.
func CacheLoadFunc(cfg *config.Config, key string) (any, error) {
	kind, name, found := strings.Cut(strings.TrimPrefix(key, CacheKeyPrefix), ":")
	if !found {
		return nil, fmt.Errorf("malformed dictionary cache key %q", key)
	}
	return loadNamed(cfg, kind, name)
}

func loadNamed(cfg *config.Config, kind, name string) (Lexicon, error) {
	dir := cfg.GetString(config.ConfigLexiconPath)
	enc := cfg.GetString(config.ConfigWordlistEncoding)
	if kind == config.KindTrie {
		triePath := filepath.Join(dir, name+TrieExtension)
		if _, err := os.Stat(triePath); err == nil {
			return LoadTrieFile(triePath)
		}
	}
	return LoadFile(filepath.Join(dir, name+WordListExtension), kind, enc)
}

// Get loads a named lexicon of the configured kind from the cache or from
// the lexicon path.
func Get(cfg *config.Config, name string) (Lexicon, error) {
	kind := cfg.GetString(config.ConfigDictionaryKind)
	obj, err := cache.Load(cfg, cacheKey(kind, name), CacheLoadFunc)
	if err != nil {
		return nil, err
	}
	ret, ok := obj.(Lexicon)
	if !ok {
		return nil, errors.New("cached object is not a lexicon")
	}
	return ret, nil
}

// Evict drops every cached dictionary, so the next Get reads from disk. Call
// it after changing where or how lexica are read.
func Evict() int {
	return cache.EvictPrefix(CacheKeyPrefix)
}

// LoadFile builds a dictionary of the given kind from a text word list.
// The lexicon name is the file name without its extension.
func LoadFile(path, kind, enc string) (Lexicon, error) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	log.Info().Str("path", path).Str("kind", kind).Msg("initializing-dictionary")
	start := time.Now()

	f, err := cache.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	words, err := ReadWordList(f, enc)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var lex Lexicon
	switch kind {
	case config.KindHash:
		lex = NewWordSet(name, words)
	case config.KindTrie:
		lex, err = MakeTrie(name, words, true)
		if err != nil {
			return nil, fmt.Errorf("building trie from %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	log.Info().Str("lexicon", name).Int("num-words", lex.NumWords()).
		Dur("elapsed", time.Since(start)).Msg("done-initializing")
	return lex, nil
}

// LoadTrieFile reads a compiled trie.
func LoadTrieFile(path string) (*Trie, error) {
	f, err := cache.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	t, err := ScanTrie(f)
	if err != nil {
		if errors.Is(err, ErrBadMagic) || errors.Is(err, ErrChecksum) {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	return t, nil
}

// SaveTrieFile writes t to path, creating or truncating it.
func SaveTrieFile(path string, t *Trie) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := SaveTrie(f, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// IsNotExist reports whether err means the dictionary file was missing.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
