package dictionary

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"

	"github.com/domino14/boggler/tilemapping"
)

const TrieMagicNumber = "btri"

// SaveTrie writes t in the compiled trie format:
//
//	magic "btri"
//	uint8 name length, name bytes
//	uint32 alphabet size, uint32 runes in machine letter order
//	uint32 node count, uint32 nodes
//	uint64 xxhash of the node bytes
//
// All integers are little endian.
func SaveTrie(w io.Writer, t *Trie) error {
	if len(t.name) > 255 {
		return fmt.Errorf("lexicon name too long: %d bytes", len(t.name))
	}
	if _, err := io.WriteString(w, TrieMagicNumber); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint8(len(t.name))); err != nil {
		return err
	}
	if _, err := io.WriteString(w, t.name); err != nil {
		return err
	}
	letters := t.alphabet.Letters()
	runes := make([]uint32, len(letters))
	for i, rn := range letters {
		runes[i] = uint32(rn)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(runes))); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, runes); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(t.nodes))); err != nil {
		return err
	}
	h := xxhash.New()
	if err := binary.Write(io.MultiWriter(w, h), binary.LittleEndian, t.nodes); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, h.Sum64())
}

// ScanTrie reads a trie written by SaveTrie.
func ScanTrie(r io.Reader) (*Trie, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, err
	}
	if string(magic[:]) != TrieMagicNumber {
		return nil, ErrBadMagic
	}
	var nameLen uint8
	if err := binary.Read(r, binary.LittleEndian, &nameLen); err != nil {
		return nil, err
	}
	name := make([]byte, nameLen)
	if _, err := io.ReadFull(r, name); err != nil {
		return nil, err
	}
	var alphabetSize uint32
	if err := binary.Read(r, binary.LittleEndian, &alphabetSize); err != nil {
		return nil, err
	}
	if alphabetSize > tilemapping.MaxAlphabetSize {
		return nil, tilemapping.ErrAlphabetTooLarge
	}
	runes := make([]uint32, alphabetSize)
	if err := binary.Read(r, binary.LittleEndian, runes); err != nil {
		return nil, err
	}
	letters := make([]rune, alphabetSize)
	for i, rn := range runes {
		letters[i] = rune(rn)
	}
	alph, err := tilemapping.FromSlice(letters)
	if err != nil {
		return nil, err
	}
	var nodeCount uint32
	if err := binary.Read(r, binary.LittleEndian, &nodeCount); err != nil {
		return nil, err
	}
	if nodeCount == 0 || nodeCount > maxNodes {
		return nil, fmt.Errorf("bad node count %d", nodeCount)
	}
	nodes := make([]uint32, nodeCount)
	h := xxhash.New()
	if err := binary.Read(io.TeeReader(r, h), binary.LittleEndian, nodes); err != nil {
		return nil, err
	}
	var sum uint64
	if err := binary.Read(r, binary.LittleEndian, &sum); err != nil {
		return nil, err
	}
	if sum != h.Sum64() {
		return nil, ErrChecksum
	}
	t := &Trie{nodes: nodes, alphabet: alph, name: string(name)}
	if err := t.validate(); err != nil {
		return nil, err
	}
	t.numWords = t.countWords()
	log.Debug().Str("name", t.name).Int("num-nodes", len(nodes)).
		Int("num-words", t.numWords).Msg("loaded-trie")
	return t, nil
}

// validate checks the layout that traversal relies on: every letter is in
// the alphabet, every sibling list is terminated, and every child list
// ends before the arc that points to it. The last rule rules out cycles.
func (t *Trie) validate() error {
	n := uint32(len(t.nodes))
	if t.ArcIndex(0) >= n {
		return fmt.Errorf("%w: root index %d out of range", ErrCorruptTrie, t.ArcIndex(0))
	}
	if n == 1 {
		return nil
	}
	if !t.IsEnd(n - 1) {
		return fmt.Errorf("%w: last sibling list is not terminated", ErrCorruptTrie)
	}
	// listEnd[i] is the index of the last arc of the list containing i.
	listEnd := make([]uint32, n)
	for i := n - 1; i >= 1; i-- {
		if t.IsEnd(i) {
			listEnd[i] = i
		} else {
			listEnd[i] = listEnd[i+1]
		}
	}
	numLetters := t.alphabet.NumLetters()
	for i := uint32(1); i < n; i++ {
		if tile := int(t.Tile(i)); tile == 0 || tile > numLetters {
			return fmt.Errorf("%w: arc %d has letter %d outside the alphabet", ErrCorruptTrie, i, tile)
		}
		c := t.ArcIndex(i)
		if c != 0 && (c >= n || listEnd[c] >= i) {
			return fmt.Errorf("%w: arc %d points at %d", ErrCorruptTrie, i, c)
		}
	}
	return nil
}
