package grid

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestRandomClassic(t *testing.T) {
	is := is.New(t)
	dice, ok := DiceFor(4, 4)
	is.True(ok)
	is.Equal(len(dice), 16)
	for i := 0; i < 20; i++ {
		g, err := Random(4, 4, dice)
		is.NoErr(err)
		is.Equal(g.Size(), 16)
		// every letter must come from some die
		for _, c := range g.Cells() {
			ch := g.CharAt(c.Row, c.Col)
			found := false
			for _, d := range dice {
				if strings.ContainsRune(string(d), ch) {
					found = true
					break
				}
			}
			is.True(found)
		}
	}
}

func TestRandomBig(t *testing.T) {
	is := is.New(t)
	dice, ok := DiceFor(5, 5)
	is.True(ok)
	g, err := Random(5, 5, dice)
	is.NoErr(err)
	is.Equal(g.Rows(), 5)
}

func TestRandomNotEnoughDice(t *testing.T) {
	is := is.New(t)
	_, err := Random(5, 5, ClassicDice)
	is.True(errors.Is(err, ErrNotEnoughDice))
	_, ok := DiceFor(3, 7)
	is.True(!ok)
}

func TestRandomSmallBoardFromBigSet(t *testing.T) {
	is := is.New(t)
	g, err := Random(2, 3, ClassicDice)
	is.NoErr(err)
	is.Equal(g.Size(), 6)
}
