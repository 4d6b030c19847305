package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigLexiconPath      = "lexicon-path"
	ConfigDefaultLexicon   = "default-lexicon"
	ConfigDictionaryKind   = "dictionary-kind"
	ConfigWordlistEncoding = "wordlist-encoding"
	ConfigPrune            = "prune"
	ConfigDedupe           = "dedupe"
	ConfigThreads          = "threads"
	ConfigDebug            = "debug"
	ConfigCPUProfile       = "cpu-profile"
)

// Dictionary kinds understood by the loader.
const (
	KindTrie = "trie"
	KindHash = "hash"
)

type Config struct {
	*viper.Viper
	// Args are the positional arguments left over after flag parsing.
	Args []string
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("boggler", pflag.ContinueOnError)
	// Everything after the first positional argument is a shell command.
	fs.SetInterspersed(false)
	fs.String(ConfigLexiconPath, "./data/lexica", "directory holding word lists and compiled tries")
	fs.String(ConfigDefaultLexicon, "words", "the lexicon loaded at startup")
	fs.String(ConfigDictionaryKind, KindTrie, "dictionary realization: trie or hash")
	fs.String(ConfigWordlistEncoding, "utf8", "encoding of text word lists: utf8 or latin1")
	fs.Bool(ConfigPrune, true, "prune paths that are not a prefix of any word (trie only)")
	fs.Bool(ConfigDedupe, false, "report each word once instead of once per path")
	fs.Int(ConfigThreads, 0, "number of search threads; 0 searches on the calling goroutine")
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")
	return fs
}

// Load parses args and the environment. Flags win over BOGGLER_* variables,
// which win over defaults.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	c.SetEnvPrefix("boggler")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.Args = fs.Args()
	return c.validate()
}

func (c *Config) validate() error {
	switch c.GetString(ConfigDictionaryKind) {
	case KindTrie, KindHash:
	default:
		return fmt.Errorf("unknown dictionary kind %q", c.GetString(ConfigDictionaryKind))
	}
	if c.GetInt(ConfigThreads) < 0 {
		return fmt.Errorf("threads must not be negative, got %d", c.GetInt(ConfigThreads))
	}
	return nil
}

// DefaultConfig returns a config with every flag at its default value.
func DefaultConfig() *Config {
	c := &Config{}
	if err := c.Load(nil); err != nil {
		panic(err)
	}
	return c
}

// AdjustRelativePaths makes a relative lexicon path relative to basePath
// (usually the executable's directory).
func (c *Config) AdjustRelativePaths(basePath string) {
	lp := c.GetString(ConfigLexiconPath)
	if !filepath.IsAbs(lp) {
		c.Set(ConfigLexiconPath, filepath.Join(basePath, lp))
	}
}

// SanitizedSettings returns the settings as a sorted, printable string.
func (c *Config) SanitizedSettings() string {
	settings := c.AllSettings()
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%s=%v", k, settings[k])
	}
	return sb.String()
}
