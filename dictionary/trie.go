package dictionary

import (
	"github.com/domino14/boggler/tilemapping"
)

// Each entry of the node array is an arc:
//
//	bits 24-31  machine letter
//	bit  23     accepts: a word ends after this letter
//	bit  22     last arc of its sibling list
//	bits 0-21   index of the first arc of the child list, 0 if none
//
// Entry 0 is a sentinel whose child index is the root sibling list. A list
// of siblings is contiguous and sorted by letter.
const (
	acceptsBit  = 0x800000
	isEndBit    = 0x400000
	arcIdxMask  = 0x3fffff
	letterShift = 24
	maxNodes    = arcIdxMask + 1
)

// Trie is a prefix-capable dictionary stored as a flat node array, in the
// style of a KWG. A minimized trie shares common suffixes; lookups do not
// care either way.
type Trie struct {
	nodes    []uint32
	alphabet *tilemapping.TileMapping
	name     string
	numWords int
}

func (t *Trie) Name() string {
	return t.name
}

func (t *Trie) NumWords() int {
	return t.numWords
}

func (t *Trie) NumNodes() int {
	return len(t.nodes)
}

func (t *Trie) Alphabet() *tilemapping.TileMapping {
	return t.alphabet
}

// RootNodeIndex returns the index of the root sibling list, 0 if the trie
// is empty.
func (t *Trie) RootNodeIndex() uint32 {
	return t.ArcIndex(0)
}

func (t *Trie) IsEnd(nodeIdx uint32) bool {
	return t.nodes[nodeIdx]&isEndBit != 0
}

func (t *Trie) Accepts(nodeIdx uint32) bool {
	return t.nodes[nodeIdx]&acceptsBit != 0
}

func (t *Trie) ArcIndex(nodeIdx uint32) uint32 {
	return t.nodes[nodeIdx] & arcIdxMask
}

func (t *Trie) Tile(nodeIdx uint32) tilemapping.MachineLetter {
	return tilemapping.MachineLetter(t.nodes[nodeIdx] >> letterShift)
}

// findArc looks for letter in the sibling list starting at nodeIdx.
func (t *Trie) findArc(nodeIdx uint32, letter tilemapping.MachineLetter) (uint32, bool) {
	for i := nodeIdx; ; i++ {
		tile := t.Tile(i)
		if tile == letter {
			return i, true
		}
		if tile > letter || t.IsEnd(i) {
			return 0, false
		}
	}
}

// walk follows s from the root. It returns the arc for the last letter of s;
// ok is false if s leaves the trie.
func (t *Trie) walk(s string) (arc uint32, ok bool) {
	nodeIdx := t.RootNodeIndex()
	for _, r := range s {
		if nodeIdx == 0 {
			return 0, false
		}
		ml, inAlph := t.alphabet.Val(r)
		if !inAlph {
			return 0, false
		}
		arc, ok = t.findArc(nodeIdx, ml)
		if !ok {
			return 0, false
		}
		nodeIdx = t.ArcIndex(arc)
	}
	return arc, true
}

// Contains reports whether word is in the trie.
func (t *Trie) Contains(word string) bool {
	if word == "" {
		return false
	}
	arc, ok := t.walk(word)
	return ok && t.Accepts(arc)
}

// HasPrefix reports whether at least one word starts with prefix. Every
// word starts with the empty prefix.
func (t *Trie) HasPrefix(prefix string) bool {
	if prefix == "" {
		return t.RootNodeIndex() != 0
	}
	_, ok := t.walk(prefix)
	return ok
}

// IterateSiblings calls cb for every arc in the sibling list at nodeIdx.
func (t *Trie) IterateSiblings(nodeIdx uint32, cb func(ml tilemapping.MachineLetter, arcIdx uint32)) {
	if nodeIdx == 0 {
		return
	}
	for i := nodeIdx; ; i++ {
		cb(t.Tile(i), i)
		if t.IsEnd(i) {
			break
		}
	}
}

// Words returns every word in machine letter order.
func (t *Trie) Words() []string {
	words := make([]string, 0, t.numWords)
	var mw tilemapping.MachineWord
	var rec func(nodeIdx uint32)
	rec = func(nodeIdx uint32) {
		t.IterateSiblings(nodeIdx, func(ml tilemapping.MachineLetter, arcIdx uint32) {
			mw = append(mw, ml)
			if t.Accepts(arcIdx) {
				words = append(words, mw.UserVisible(t.alphabet))
			}
			rec(t.ArcIndex(arcIdx))
			mw = mw[:len(mw)-1]
		})
	}
	rec(t.RootNodeIndex())
	return words
}

func (t *Trie) countWords() int {
	memo := make(map[uint32]int)
	var rec func(nodeIdx uint32) int
	rec = func(nodeIdx uint32) int {
		if nodeIdx == 0 {
			return 0
		}
		if n, ok := memo[nodeIdx]; ok {
			return n
		}
		n := 0
		t.IterateSiblings(nodeIdx, func(_ tilemapping.MachineLetter, arcIdx uint32) {
			if t.Accepts(arcIdx) {
				n++
			}
			n += rec(t.ArcIndex(arcIdx))
		})
		memo[nodeIdx] = n
		return n
	}
	return rec(t.RootNodeIndex())
}
