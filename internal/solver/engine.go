// internal/solver/engine.go
//
// Word filter engine for the constraint grid.
// Responsibilities:
//   - Compile each grid row into an immutable set of constraints.
//   - Keep the dictionary words that every row accepts.
//   - Rank the survivors by letter commonality (see rank.go).
//
// Notes:
//   - Evaluate is a pure function of its inputs. It is safe to call
//     concurrently with a shared, read-only dictionary.
//   - Case is normalized once, in compileRow. Dictionary words are
//     expected lowercase (the words package guarantees it).
package solver

import (
	"unicode"

	"github.com/robalobadob/wordle-solver/internal/grid"
)

// RowSource is anything that exposes grid rows; *grid.Grid satisfies it.
type RowSource interface {
	Rows() []grid.Row
}

// Evaluate returns the dictionary words accepted by every row of g,
// ranked by commonality score. An empty dictionary yields an empty
// (non-nil) slice.
func Evaluate(dict []string, g RowSource) []string {
	matches := EvaluateScored(dict, g)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Word
	}
	return out
}

// EvaluateScored is Evaluate with each word's score attached.
func EvaluateScored(dict []string, g RowSource) []Match {
	constraints := compile(g.Rows())

	out := make([]Match, 0, len(dict))
	for _, w := range dict {
		if acceptsAll(constraints, w) {
			out = append(out, Match{Word: w, Score: Score(w)})
		}
	}
	sortMatches(out)
	return out
}

// Accepts reports whether a single row accepts word.
func Accepts(row grid.Row, word string) bool {
	return compileRow(row).accepts(word)
}

// rowConstraint is the compiled, read-only form of one grid row.
//
// Pass 1 (compileRow) collects the correct letters and the bounded
// letters for the whole row. Pass 2 (accepts) checks a word against
// them. No state is carried between cells of pass 2.
type rowConstraint struct {
	empty   bool
	cells   [grid.Width]cellConstraint
	bounded letterSet // absent here but correct elsewhere in the row
}

type cellConstraint struct {
	letter byte // lowercase a–z, 0 for an empty cell
	state  grid.Classification
	bound  bool // absent cell whose letter is bounded
}

// letterSet is a bitmask over a–z.
type letterSet uint32

func (s letterSet) has(c byte) bool { return s&(1<<(c-'a')) != 0 }
func (s *letterSet) add(c byte) { *s |= 1 << (c - 'a') }
func (s letterSet) letters() []byte {
	var out []byte
	for c := byte('a'); c <= 'z'; c++ {
		if s.has(c) {
			out = append(out, c)
		}
	}
	return out
}

func compile(rows []grid.Row) []rowConstraint {
	out := make([]rowConstraint, 0, len(rows))
	for _, r := range rows {
		rc := compileRow(r)
		if rc.empty {
			continue
		}
		out = append(out, rc)
	}
	return out
}

func compileRow(row grid.Row) rowConstraint {
	rc := rowConstraint{empty: true}

	var correctLetters letterSet
	for i, c := range row {
		l, ok := lowerASCII(c.Letter)
		if !ok {
			continue
		}
		rc.empty = false
		rc.cells[i] = cellConstraint{letter: l, state: c.State}
		if c.State == grid.Correct {
			correctLetters.add(l)
		}
	}

	for i := range rc.cells {
		cc := &rc.cells[i]
		if cc.letter != 0 && cc.state == grid.Absent && correctLetters.has(cc.letter) {
			cc.bound = true
			rc.bounded.add(cc.letter)
		}
	}
	return rc
}

func (rc rowConstraint) accepts(word string) bool {
	if rc.empty {
		return true
	}
	for i, cc := range rc.cells {
		if cc.letter == 0 {
			continue
		}
		switch cc.state {
		case grid.Correct:
			if !letterAt(word, i, cc.letter) {
				return false
			}
		case grid.Present:
			if !contains(word, cc.letter) || letterAt(word, i, cc.letter) {
				return false
			}
		case grid.Absent:
			if !cc.bound && contains(word, cc.letter) {
				return false
			}
		}
	}
	for _, l := range rc.bounded.letters() {
		if count(word, l) > 1 {
			return false
		}
	}
	return true
}

func acceptsAll(rows []rowConstraint, word string) bool {
	for _, rc := range rows {
		if !rc.accepts(word) {
			return false
		}
	}
	return true
}

// lowerASCII maps a cell letter to lowercase a–z.
// Empty cells and non-letters report false and constrain nothing.
func lowerASCII(r rune) (byte, bool) {
	if r == 0 || r > unicode.MaxASCII {
		return 0, false
	}
	l := unicode.ToLower(r)
	if l < 'a' || l > 'z' {
		return 0, false
	}
	return byte(l), true
}

func letterAt(word string, i int, c byte) bool {
	return i < len(word) && word[i] == c
}

func contains(word string, c byte) bool {
	for i := 0; i < len(word); i++ {
		if word[i] == c {
			return true
		}
	}
	return false
}

func count(word string, c byte) int {
	n := 0
	for i := 0; i < len(word); i++ {
		if word[i] == c {
			n++
		}
	}
	return n
}
