package dictionary

import (
	"encoding/binary"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/domino14/boggler/tilemapping"
)

// node and arc are temporary types used while building a trie. They are
// not used once the trie is serialized.
type node struct {
	arcs  []*arc
	final bool
	// set while serializing
	placed bool
	index  uint32
}

type arc struct {
	letter      tilemapping.MachineLetter
	destination *node
}

type arcPtrSlice []*arc

func (a arcPtrSlice) Len() int           { return len(a) }
func (a arcPtrSlice) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a arcPtrSlice) Less(i, j int) bool { return a[i].letter < a[j].letter }

type maker struct {
	root        *node
	alphabet    *tilemapping.TileMapping
	allocStates int
	allocArcs   int
	numWords    int
}

func (m *maker) createNode() *node {
	m.allocStates++
	return &node{}
}

// containsArc returns the arc for letter, if there is one.
func (n *node) containsArc(letter tilemapping.MachineLetter) *arc {
	for _, a := range n.arcs {
		if a.letter == letter {
			return a
		}
	}
	return nil
}

// addArc returns the node reached from n by letter, creating it if needed.
func (n *node) addArc(letter tilemapping.MachineLetter, m *maker) *node {
	if existing := n.containsArc(letter); existing != nil {
		return existing.destination
	}
	dest := m.createNode()
	n.arcs = append(n.arcs, &arc{letter: letter, destination: dest})
	m.allocArcs++
	return dest
}

func (m *maker) addWord(mw tilemapping.MachineWord) {
	st := m.root
	for _, ml := range mw {
		st = st.addArc(ml, m)
	}
	if !st.final {
		st.final = true
		m.numWords++
	}
}

func traverseTreeAndExecute(n *node, fn func(*node)) {
	fn(n)
	for _, a := range n.arcs {
		traverseTreeAndExecute(a.destination, fn)
	}
}

// serialize lays the graph out as a node array. Child lists are placed
// before their parents. With minimize set, identical sibling lists are
// stored once, which turns the trie into a DAWG.
func (m *maker) serialize(minimize bool) ([]uint32, error) {
	nodes := []uint32{0}
	listIdx := make(map[string]uint32)
	var keyBuf []byte
	var tooMany bool

	var place func(n *node) uint32
	place = func(n *node) uint32 {
		if len(n.arcs) == 0 || tooMany {
			return 0
		}
		if n.placed {
			return n.index
		}
		entries := make([]uint32, len(n.arcs))
		for i, a := range n.arcs {
			e := uint32(a.letter)<<letterShift | place(a.destination)
			if a.destination.final {
				e |= acceptsBit
			}
			if i == len(n.arcs)-1 {
				e |= isEndBit
			}
			entries[i] = e
		}
		var key string
		if minimize {
			keyBuf = keyBuf[:0]
			for _, e := range entries {
				keyBuf = binary.LittleEndian.AppendUint32(keyBuf, e)
			}
			key = string(keyBuf)
			if idx, ok := listIdx[key]; ok {
				n.placed, n.index = true, idx
				return idx
			}
		}
		start := uint32(len(nodes))
		if len(nodes)+len(entries) > maxNodes {
			tooMany = true
			return 0
		}
		nodes = append(nodes, entries...)
		if minimize {
			listIdx[key] = start
		}
		n.placed, n.index = true, start
		return start
	}

	root := place(m.root)
	if tooMany {
		return nil, ErrTooManyNodes
	}
	nodes[0] = root | isEndBit
	return nodes, nil
}

// MakeTrie builds a trie from words. Duplicates collapse and empty strings
// are skipped; an empty word list makes an empty, valid trie.
func MakeTrie(name string, words []string, minimize bool) (*Trie, error) {
	alph, err := tilemapping.FromWords(words)
	if err != nil {
		return nil, err
	}
	m := &maker{alphabet: alph}
	m.root = m.createNode()
	for idx, w := range words {
		if w == "" {
			continue
		}
		if idx > 0 && idx%100000 == 0 {
			log.Debug().Int("words", idx).Msg("adding-words")
		}
		mw, err := tilemapping.ToMachineWord(w, alph)
		if err != nil {
			return nil, err
		}
		m.addWord(mw)
	}
	traverseTreeAndExecute(m.root, func(n *node) {
		sort.Sort(arcPtrSlice(n.arcs))
	})
	log.Debug().Int("arcs", m.allocArcs).Int("states", m.allocStates).
		Int("words", m.numWords).Msg("built-trie-graph")

	nodes, err := m.serialize(minimize)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("num-nodes", len(nodes)).Bool("minimized", minimize).Msg("serialized-trie")
	return &Trie{nodes: nodes, alphabet: alph, name: name, numWords: m.numWords}, nil
}
