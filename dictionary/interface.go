package dictionary

// Dictionary is an immutable set of words queried by exact, case-sensitive
// membership.
type Dictionary interface {
	Contains(word string) bool
}

// PrefixDictionary can also tell whether any word starts with a prefix.
// Searches use it to abandon paths early; it never changes what they find.
type PrefixDictionary interface {
	Dictionary
	HasPrefix(prefix string) bool
}

// Lexicon is a named dictionary, as loaded by Get.
type Lexicon interface {
	Dictionary
	Name() string
	NumWords() int
}
