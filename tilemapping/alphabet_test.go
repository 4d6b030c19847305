package tilemapping

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestReconcileIsOrderIndependent(t *testing.T) {
	is := is.New(t)
	a, err := FromWords([]string{"line", "mini"})
	is.NoErr(err)
	b, err := FromWords([]string{"nil", "enim"})
	is.NoErr(err)
	is.Equal(a.Letters(), b.Letters())
	is.Equal(string(a.Letters()), "eilmn")
	ml, ok := a.Val('e')
	is.True(ok)
	is.Equal(ml, MachineLetter(1))
	ml, ok = a.Val('n')
	is.True(ok)
	is.Equal(ml, MachineLetter(5))
}

func TestCaseSensitive(t *testing.T) {
	is := is.New(t)
	tm, err := FromWords([]string{"Ab", "ab"})
	is.NoErr(err)
	is.Equal(tm.NumLetters(), 3)
	_, ok := tm.Val('B')
	is.True(!ok)
}

func TestNonASCII(t *testing.T) {
	is := is.New(t)
	tm, err := FromWords([]string{"año", "ça"})
	is.NoErr(err)
	mw, err := ToMachineWord("ñaç", tm)
	is.NoErr(err)
	is.Equal(mw.UserVisible(tm), "ñaç")
	_, err = ToMachineWord("xyz", tm)
	is.True(errors.Is(err, errNotInAlphabet))
}

func TestFromSlice(t *testing.T) {
	is := is.New(t)
	tm, err := FromSlice([]rune("aeinst"))
	is.NoErr(err)
	ml, ok := tm.Val('t')
	is.True(ok)
	is.Equal(ml, MachineLetter(6))
	is.Equal(tm.Letter(2), 'e')

	_, err = FromSlice([]rune("ba"))
	is.True(err != nil)
	_, err = FromSlice([]rune("aa"))
	is.True(err != nil)
}

func TestAlphabetTooLarge(t *testing.T) {
	is := is.New(t)
	runes := make([]rune, MaxAlphabetSize+1)
	for i := range runes {
		runes[i] = rune(0x4e00 + i)
	}
	_, err := FromWords([]string{string(runes)})
	is.Equal(err, ErrAlphabetTooLarge)
}
