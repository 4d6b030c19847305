package dictionary

import (
	"errors"
	"fmt"
)

var (
	ErrBadMagic     = errors.New("magic number does not match trie")
	ErrChecksum     = errors.New("trie checksum mismatch")
	ErrCorruptTrie  = errors.New("corrupt trie")
	ErrTooManyNodes = fmt.Errorf("trie exceeds %d nodes", maxNodes)
	ErrUnknownKind  = errors.New("unknown dictionary kind")
)

// LoadError means a word list or compiled trie could not be opened or read.
// Nothing can be searched without a dictionary, so callers treat it as fatal.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("could not load dictionary %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
