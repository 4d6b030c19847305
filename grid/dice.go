package grid

import (
	"fmt"

	"lukechampine.com/frand"
)

// A Die lists the letters on its faces.
type Die string

// ClassicDice is the sixteen-die set of the 4x4 game. The "Qu" face is
// reduced to q, since a cell holds one letter.
var ClassicDice = []Die{
	"aaeegn", "abbjoo", "achops", "affkps",
	"aoottw", "cimotu", "deilrx", "delrvy",
	"distty", "eeghnw", "eeinsu", "ehrtvw",
	"eiosst", "elrtty", "himnqu", "hlnnrz",
}

// BigDice is the twenty-five-die set of the 5x5 game.
var BigDice = []Die{
	"aaafrs", "aaeeee", "aafirs", "adennn", "aeeeem",
	"aeegmu", "aegmnn", "afirsy", "bjkqxz", "ccenst",
	"ceiilt", "ceilpt", "ceipst", "ddhnot", "dhhlor",
	"dhlnor", "dhlnor", "eiiitt", "emottt", "ensssu",
	"fiprsy", "gorrvw", "iprrry", "nootuw", "ooottu",
}

// DiceFor returns the standard dice for a rows x cols board, if there is one.
func DiceFor(rows, cols int) ([]Die, bool) {
	switch {
	case rows == 4 && cols == 4:
		return ClassicDice, true
	case rows == 5 && cols == 5:
		return BigDice, true
	}
	return nil, false
}

// Random shakes dice into a rows x cols board: the dice are shuffled into
// cells and each shows a random face. Extra dice stay in the box.
func Random(rows, cols int, dice []Die) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(dice) < rows*cols {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrNotEnoughDice, rows*cols, len(dice))
	}
	shuffled := make([]Die, len(dice))
	copy(shuffled, dice)
	frand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	letters := make([][]rune, rows)
	for r := range letters {
		letters[r] = make([]rune, cols)
		for c := range letters[r] {
			faces := []rune(string(shuffled[r*cols+c]))
			if len(faces) == 0 {
				return nil, fmt.Errorf("die %d has no faces", r*cols+c)
			}
			letters[r][c] = faces[frand.Intn(len(faces))]
		}
	}
	return New(letters)
}
