package dictionary

// WordSet is a hash-based dictionary. It has no prefix capability, so a
// search over it explores every path.
type WordSet struct {
	name  string
	words map[string]struct{}
}

// NewWordSet builds a set from words. Duplicates collapse and empty strings
// are ignored.
func NewWordSet(name string, words []string) *WordSet {
	ws := &WordSet{name: name, words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if w == "" {
			continue
		}
		ws.words[w] = struct{}{}
	}
	return ws
}

func (ws *WordSet) Contains(word string) bool {
	_, ok := ws.words[word]
	return ok
}

func (ws *WordSet) Name() string {
	return ws.name
}

func (ws *WordSet) NumWords() int {
	return len(ws.words)
}
