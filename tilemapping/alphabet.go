package tilemapping

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
)

// A letter is internally represented by a byte. The 0 value never maps to
// a letter; word graphs use it as "no letter". Letters are numbered from 1 in
// rune order once the mapping is reconciled. Mappings are case sensitive:
// 'a' and 'A' are different letters.
const (
	// MaxAlphabetSize is the number of distinct runes a mapping can hold.
	MaxAlphabetSize = 255
)

var ErrAlphabetTooLarge = fmt.Errorf("alphabet exceeds %d letters", MaxAlphabetSize)

// MachineLetter is a machine-only representation of a letter.
type MachineLetter byte

type MachineWord []MachineLetter

// LetterSlice is a slice of runes. We make it a separate type for ease in
// defining sort functions on it.
type LetterSlice []rune

func (a LetterSlice) Len() int           { return len(a) }
func (a LetterSlice) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a LetterSlice) Less(i, j int) bool { return a[i] < a[j] }

// A TileMapping maps a user-visible rune like 'b' into its MachineLetter
// counterpart, and back.
type TileMapping struct {
	// vals maps the rune to its machine letter.
	vals map[rune]MachineLetter
	// letters is the reverse of vals.
	letters map[MachineLetter]rune
	// ascii is a fast path for vals; 0 means not present.
	ascii [128]MachineLetter

	letterSlice LetterSlice
	curIdx      int
}

// Init initializes the alphabet data structures
func (rm *TileMapping) Init() {
	rm.vals = make(map[rune]MachineLetter)
	rm.letters = make(map[MachineLetter]rune)
	rm.ascii = [128]MachineLetter{}
	rm.letterSlice = nil
	rm.curIdx = 0
}

// Update adds the runes of word to the mapping. The numbering is
// provisional until Reconcile is called.
func (rm *TileMapping) Update(word string) error {
	for _, char := range word {
		if _, ok := rm.vals[char]; !ok {
			if rm.curIdx == MaxAlphabetSize {
				return ErrAlphabetTooLarge
			}
			rm.curIdx++
			rm.vals[char] = MachineLetter(rm.curIdx)
		}
	}
	return nil
}

// Reconcile sorts the runes and renumbers them so that the mapping only
// depends on the set of runes seen, not on the order they were seen in.
func (rm *TileMapping) Reconcile() {
	rm.letterSlice = make(LetterSlice, 0, len(rm.vals))
	for rn := range rm.vals {
		rm.letterSlice = append(rm.letterSlice, rn)
	}
	sort.Sort(rm.letterSlice)
	rm.letters = make(map[MachineLetter]rune, len(rm.letterSlice))
	rm.ascii = [128]MachineLetter{}
	for idx, rn := range rm.letterSlice {
		ml := MachineLetter(idx + 1)
		rm.vals[rn] = ml
		rm.letters[ml] = rn
		if rn < 128 {
			rm.ascii[rn] = ml
		}
	}
	log.Debug().Int("num-letters", len(rm.letterSlice)).
		Str("letters", string(rm.letterSlice)).Msg("reconciled-tilemapping")
}

// Letter returns the rune for a machine letter, or 0 if there is none.
func (rm *TileMapping) Letter(ml MachineLetter) rune {
	return rm.letters[ml]
}

// Val returns the machine letter for r. ok is false if r is not in the
// mapping.
func (rm *TileMapping) Val(r rune) (ml MachineLetter, ok bool) {
	if r >= 0 && r < 128 {
		ml = rm.ascii[r]
		return ml, ml != 0
	}
	ml, ok = rm.vals[r]
	return ml, ok
}

// NumLetters returns the number of letters in this alphabet.
func (rm *TileMapping) NumLetters() int {
	return len(rm.letterSlice)
}

// Letters returns the runes in machine letter order. Do not modify.
func (rm *TileMapping) Letters() []rune {
	return rm.letterSlice
}

// UserVisible turns the passed-in machine word into a user-visible string.
func (mw MachineWord) UserVisible(rm *TileMapping) string {
	runes := make([]rune, len(mw))
	for i, l := range mw {
		runes[i] = rm.Letter(l)
	}
	return string(runes)
}

var errNotInAlphabet = errors.New("letter not in alphabet")

// ToMachineWord converts word. It fails if any rune is not in the mapping.
func ToMachineWord(word string, rm *TileMapping) (MachineWord, error) {
	mw := make(MachineWord, 0, len(word))
	for _, ch := range word {
		ml, ok := rm.Val(ch)
		if !ok {
			return nil, fmt.Errorf("%w: %q", errNotInAlphabet, ch)
		}
		mw = append(mw, ml)
	}
	return mw, nil
}

// FromSlice creates a reconciled mapping from runes that are already in
// machine letter order, as stored in a serialized trie.
func FromSlice(arr []rune) (*TileMapping, error) {
	if len(arr) > MaxAlphabetSize {
		return nil, ErrAlphabetTooLarge
	}
	rm := &TileMapping{}
	rm.Init()
	for i, rn := range arr {
		if _, dup := rm.vals[rn]; dup {
			return nil, fmt.Errorf("duplicate letter %q in alphabet", rn)
		}
		if i > 0 && arr[i-1] > rn {
			return nil, fmt.Errorf("alphabet not sorted at %q", rn)
		}
		ml := MachineLetter(i + 1)
		rm.vals[rn] = ml
		rm.letters[ml] = rn
		if rn < 128 {
			rm.ascii[rn] = ml
		}
	}
	rm.letterSlice = append(LetterSlice(nil), arr...)
	rm.curIdx = len(arr)
	return rm, nil
}

// FromWords builds a reconciled mapping holding every rune of words.
func FromWords(words []string) (*TileMapping, error) {
	rm := &TileMapping{}
	rm.Init()
	for _, w := range words {
		if err := rm.Update(w); err != nil {
			return nil, err
		}
	}
	rm.Reconcile()
	return rm, nil
}
