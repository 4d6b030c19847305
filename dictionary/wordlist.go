package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Word list encodings.
const (
	EncodingUTF8   = "utf8"
	EncodingLatin1 = "latin1"
)

// ReadWordList reads one word per line. Line terminators are stripped and
// empty lines skipped; nothing else is normalized, so case and surrounding
// spaces are kept as stored.
func ReadWordList(r io.Reader, enc string) ([]string, error) {
	switch strings.ToLower(enc) {
	case "", EncodingUTF8, "utf-8":
	case EncodingLatin1, "iso-8859-1":
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	default:
		return nil, fmt.Errorf("unhandled word list encoding %q", enc)
	}
	var words []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		// ScanLines already drops the \n and a trailing \r.
		line := scanner.Text()
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
