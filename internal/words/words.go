// internal/words/words.go
//
// Dictionary loading for the solver.
//
// Responsibilities:
//   - Read a newline-delimited word list from a file or the embedded default.
//   - Normalize entries (trim, lowercase) and keep only 5-letter a–z words.
//   - Preserve source order and drop duplicates (first occurrence wins).
//
// Sources (Load):
//  1. If path is non-empty, read that file (WORDS_FILE).
//  2. Otherwise use the embedded assets/words.txt.
//
// Constraints:
//   • Blank lines (including trailing ones) and '#' comments are skipped.
//   • A list with no valid words is an error: callers never see a partial
//     or empty dictionary.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robalobadob/wordle-solver/assets"
)

// Length is the number of letters in every dictionary word.
const Length = 5

var ErrEmpty = errors.New("words: dictionary is empty")

// Dictionary is an ordered, de-duplicated list of lowercase words.
// It is read-only after Parse/Load and safe to share across goroutines.
type Dictionary struct {
	list     []string
	set      map[string]struct{}
	rejected int
	source   string
}

// Stats summarizes a loaded dictionary.
type Stats struct {
	Source   string `json:"source"`
	Words    int    `json:"words"`
	Rejected int    `json:"rejected"`
}

// Load reads the dictionary from path, or from the embedded default
// when path is empty.
func Load(path string) (*Dictionary, error) {
	var (
		rc     io.ReadCloser
		err    error
		source = path
	)
	if path == "" {
		source = "embedded:" + assets.DefaultWords
		rc, err = assets.OpenWords()
	} else {
		rc, err = os.Open(path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", source, err)
	}
	defer rc.Close()

	d, err := Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	d.source = source
	return d, nil
}

// Parse reads one word per line from r.
func Parse(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{set: make(map[string]struct{})}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if len(w) != Length || !isAlpha(w) {
			d.rejected++
			continue
		}
		if _, dup := d.set[w]; dup {
			continue
		}
		d.set[w] = struct{}{}
		d.list = append(d.list, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(d.list) == 0 {
		return nil, ErrEmpty
	}
	return d, nil
}

// FromList builds a dictionary from an in-memory list, applying the
// same normalization as Parse.
func FromList(list []string) (*Dictionary, error) {
	return Parse(strings.NewReader(strings.Join(list, "\n")))
}

// Words returns the words in source order. The slice must not be modified.
func (d *Dictionary) Words() []string { return d.list }

// Len is the number of words.
func (d *Dictionary) Len() int { return len(d.list) }

// Contains reports whether w (any case) is in the dictionary.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[strings.ToLower(strings.TrimSpace(w))]
	return ok
}

// Stats returns counts for diagnostics.
func (d *Dictionary) Stats() Stats {
	return Stats{Source: d.source, Words: len(d.list), Rejected: d.rejected}
}

// WriteTo writes the dictionary back out, one word per line.
func (d *Dictionary) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, word := range d.list {
		m, err := bw.WriteString(word + "\n")
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
