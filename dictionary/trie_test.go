package dictionary

import (
	"bytes"
	"errors"
	"sort"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/boggler/tilemapping"
)

var testWords = []string{
	"line", "lien", "lines", "mini", "pun", "a", "an", "ant", "ants",
	"tan", "tans", "sent", "lent", "tent", "line", "Line",
}

func TestTrieContains(t *testing.T) {
	for _, minimize := range []bool{false, true} {
		is := is.New(t)
		tr, err := MakeTrie("test", testWords, minimize)
		is.NoErr(err)
		is.Equal(tr.NumWords(), 15)
		for _, w := range testWords {
			is.True(tr.Contains(w))
		}
		for _, w := range []string{"", "lin", "lie", "min", "LINE", "pu", "puns", "ante", "zzz", "línea"} {
			is.True(!tr.Contains(w))
		}
	}
}

func TestTrieHasPrefix(t *testing.T) {
	is := is.New(t)
	tr, err := MakeTrie("test", testWords, true)
	is.NoErr(err)
	type testpair struct {
		prefix string
		found  bool
	}
	cases := []testpair{
		{"", true},
		{"l", true},
		{"li", true},
		{"lin", true},
		{"lines", true},
		{"liness", false},
		{"Li", true},
		{"LI", false},
		{"x", false},
		{"mi", true},
		{"mu", false},
		{"tent", true},
		{"tenth", false},
	}
	for _, tc := range cases {
		is.Equal(tr.HasPrefix(tc.prefix), tc.found)
	}
}

func TestMinimizedTrieIsSmaller(t *testing.T) {
	is := is.New(t)
	full, err := MakeTrie("test", testWords, false)
	is.NoErr(err)
	min, err := MakeTrie("test", testWords, true)
	is.NoErr(err)
	is.True(min.NumNodes() < full.NumNodes())
	is.Equal(min.Words(), full.Words())
}

func TestTrieWords(t *testing.T) {
	tr, err := MakeTrie("test", testWords, true)
	assert.NoError(t, err)
	expected := []string{}
	seen := map[string]bool{}
	for _, w := range testWords {
		if !seen[w] {
			seen[w] = true
			expected = append(expected, w)
		}
	}
	sort.Strings(expected)
	assert.Equal(t, expected, tr.Words())
}

func TestEmptyTrie(t *testing.T) {
	is := is.New(t)
	tr, err := MakeTrie("empty", nil, true)
	is.NoErr(err)
	is.Equal(tr.NumWords(), 0)
	is.True(!tr.Contains("a"))
	is.True(!tr.HasPrefix(""))
	is.True(!tr.HasPrefix("a"))
	is.Equal(len(tr.Words()), 0)
}

func TestSaveAndScanTrie(t *testing.T) {
	is := is.New(t)
	tr, err := MakeTrie("test", testWords, true)
	is.NoErr(err)
	var buf bytes.Buffer
	is.NoErr(SaveTrie(&buf, tr))

	loaded, err := ScanTrie(bytes.NewReader(buf.Bytes()))
	is.NoErr(err)
	is.Equal(loaded.Name(), "test")
	is.Equal(loaded.NumWords(), tr.NumWords())
	is.Equal(loaded.Words(), tr.Words())
	is.True(loaded.HasPrefix("tan"))
	is.True(!loaded.Contains("ta"))

	corrupt := bytes.Clone(buf.Bytes())
	// flip a bit inside the node payload, well before the trailing checksum
	corrupt[len(corrupt)-12] ^= 0x01
	_, err = ScanTrie(bytes.NewReader(corrupt))
	is.True(errors.Is(err, ErrChecksum))

	_, err = ScanTrie(bytes.NewReader([]byte("kwg!rest")))
	is.True(errors.Is(err, ErrBadMagic))
}

func TestSaveAndScanEmptyTrie(t *testing.T) {
	is := is.New(t)
	tr, err := MakeTrie("empty", []string{}, false)
	is.NoErr(err)
	var buf bytes.Buffer
	is.NoErr(SaveTrie(&buf, tr))
	loaded, err := ScanTrie(&buf)
	is.NoErr(err)
	is.Equal(loaded.NumWords(), 0)
	is.True(!loaded.HasPrefix(""))
}

func TestScanTrieRejectsBadLayout(t *testing.T) {
	is := is.New(t)
	alph, err := tilemapping.FromWords([]string{"ab"})
	is.NoErr(err)
	const a, b = 1 << letterShift, 2 << letterShift

	type testcase struct {
		name  string
		nodes []uint32
	}
	cases := []testcase{
		{"root out of range", []uint32{9 | isEndBit, b | acceptsBit | isEndBit, a | isEndBit | 1}},
		{"child out of range", []uint32{2 | isEndBit, b | acceptsBit | isEndBit, a | isEndBit | 7}},
		{"self loop", []uint32{2 | isEndBit, b | acceptsBit | isEndBit, a | isEndBit | 2}},
		{"unterminated child list", []uint32{2 | isEndBit, b | acceptsBit, a | isEndBit | 1}},
		{"unterminated last list", []uint32{2 | isEndBit, b | acceptsBit | isEndBit, a | 1}},
		{"letter outside alphabet", []uint32{2 | isEndBit, 5<<letterShift | acceptsBit | isEndBit, a | isEndBit | 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			var buf bytes.Buffer
			is.NoErr(SaveTrie(&buf, &Trie{nodes: tc.nodes, alphabet: alph, name: "bad"}))
			_, err := ScanTrie(&buf)
			is.True(errors.Is(err, ErrCorruptTrie))
		})
	}

	var buf bytes.Buffer
	good := []uint32{2 | isEndBit, b | acceptsBit | isEndBit, a | isEndBit | 1}
	is.NoErr(SaveTrie(&buf, &Trie{nodes: good, alphabet: alph, name: "good"}))
	loaded, err := ScanTrie(&buf)
	is.NoErr(err)
	is.Equal(loaded.NumWords(), 1)
	is.True(loaded.Contains("ab"))
}

func BenchmarkTrieContains(b *testing.B) {
	tr, err := MakeTrie("test", testWords, true)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Contains("lines")
		tr.HasPrefix("ten")
	}
}
