package stats

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"
)

// Summary describes the words found in one search.
type Summary struct {
	Lexicon string `yaml:"lexicon,omitempty"`
	Grid    string `yaml:"grid,omitempty"`
	Nodes   int64  `yaml:"nodes,omitempty"`

	// Found counts every recorded path; Unique counts distinct words.
	Found  int `yaml:"found"`
	Unique int `yaml:"unique"`
	// Paths maps each word found along more than one path to its path count.
	Paths map[string]int `yaml:"paths,omitempty"`

	MeanLength   float64  `yaml:"mean_length"`
	StdevLength  float64  `yaml:"stdev_length"`
	MedianLength float64  `yaml:"median_length"`
	Longest      []string `yaml:"longest,omitempty"`

	ByLength map[int][]string `yaml:"by_length,omitempty"`

	lengths []float64
}

// Summarize builds a Summary from words as recorded by a search, duplicates
// included. Length statistics are over distinct words and count runes.
func Summarize(words []string) *Summary {
	s := &Summary{Found: len(words)}
	uniq := lo.Uniq(words)
	s.Unique = len(uniq)
	for w, n := range lo.CountValues(words) {
		if n > 1 {
			if s.Paths == nil {
				s.Paths = map[string]int{}
			}
			s.Paths[w] = n
		}
	}
	if len(uniq) == 0 {
		return s
	}

	s.ByLength = lo.GroupBy(uniq, func(w string) int { return utf8.RuneCountInString(w) })
	for _, ws := range s.ByLength {
		sort.Strings(ws)
	}

	st := &Statistic{}
	s.lengths = make([]float64, len(uniq))
	for i, w := range uniq {
		s.lengths[i] = float64(utf8.RuneCountInString(w))
		st.Push(s.lengths[i])
	}
	sort.Float64s(s.lengths)
	s.MeanLength = st.Mean()
	s.StdevLength = st.Stdev()
	s.MedianLength = stat.Quantile(0.5, stat.Empirical, s.lengths, nil)

	maxLen := int(st.Max())
	s.Longest = s.ByLength[maxLen]
	return s
}

// Histogram prints a histogram of distinct word lengths.
func (s *Summary) Histogram(w io.Writer, bins int) error {
	if len(s.lengths) == 0 {
		_, err := fmt.Fprintln(w, "no words")
		return err
	}
	h := histogram.Hist(bins, s.lengths)
	return histogram.Fprint(w, h, histogram.Linear(40))
}

// YAML encodes the summary.
func (s *Summary) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}

func (s *Summary) String() string {
	var sb strings.Builder
	if s.Lexicon != "" {
		fmt.Fprintf(&sb, "Lexicon: %s\n", s.Lexicon)
	}
	fmt.Fprintf(&sb, "Words found: %d (%d distinct)\n", s.Found, s.Unique)
	if s.Unique == 0 {
		return sb.String()
	}
	fmt.Fprintf(&sb, "Length: mean %.2f, stdev %.2f, median %.1f\n",
		s.MeanLength, s.StdevLength, s.MedianLength)
	fmt.Fprintf(&sb, "Longest: %s\n", strings.Join(s.Longest, ", "))

	lengths := lo.Keys(s.ByLength)
	sort.Ints(lengths)
	for _, l := range lengths {
		fmt.Fprintf(&sb, "%3d: %s\n", l, strings.Join(s.ByLength[l], " "))
	}
	if len(s.Paths) > 0 {
		multi := lo.Keys(s.Paths)
		sort.Strings(multi)
		sb.WriteString("Found along several paths:")
		for _, w := range multi {
			fmt.Fprintf(&sb, " %s(%d)", w, s.Paths[w])
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
