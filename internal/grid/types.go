// internal/grid/types.go
//
// Core type definitions for the constraint grid.
// Defines:
//   - Classification: per-letter feedback (absent/correct/present).
//   - Cell: a letter plus its classification.
//   - Row: exactly Width cells, one full guess attempt.

package grid

import (
	"fmt"
	"strings"
)

const (
	Width   = 5 // cells per row
	MaxRows = 6 // rows available in a grid
	MinRows = 1 // rows that are always visible
)

// Classification represents the feedback for a single letter of a guess.
// Possible values:
//   - Absent:  letter is not in the solution (zero value).
//   - Correct: letter is in the solution at this position.
//   - Present: letter is in the solution but not at this position.
type Classification uint8

const (
	Absent Classification = iota
	Correct
	Present
)

var classificationNames = [...]string{
	Absent:  "absent",
	Correct: "correct",
	Present: "present",
}

func (c Classification) String() string {
	if int(c) < len(classificationNames) {
		return classificationNames[c]
	}
	return fmt.Sprintf("Classification(%d)", uint8(c))
}

// Valid reports whether c is one of the three classifications.
func (c Classification) Valid() bool { return c <= Present }

// Next returns the classification a click moves to:
// absent → correct → present → absent.
func (c Classification) Next() Classification {
	switch c {
	case Absent:
		return Correct
	case Correct:
		return Present
	default:
		return Absent
	}
}

// ParseClassification accepts the canonical names plus the legacy
// "notInWord"/"inWord" spellings, case-insensitively.
func ParseClassification(s string) (Classification, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "absent", "notinword", "":
		return Absent, nil
	case "correct":
		return Correct, nil
	case "present", "inword":
		return Present, nil
	}
	return Absent, fmt.Errorf("%w: %q", ErrUnknownClassification, s)
}

func (c Classification) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownClassification, uint8(c))
	}
	return []byte(c.String()), nil
}

func (c *Classification) UnmarshalText(b []byte) error {
	v, err := ParseClassification(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Cell holds one letter of a guess and its classification.
// A zero Letter is an empty cell and constrains nothing.
type Cell struct {
	Letter rune
	State  Classification
}

// IsEmpty reports whether the cell carries no letter.
func (c Cell) IsEmpty() bool { return c.Letter == 0 }

// Row is one guess attempt. The array type fixes its length at Width.
type Row [Width]Cell

// Cells returns the row's cells in column order.
func (r Row) Cells() []Cell { return r[:] }

// IsEmpty reports whether every cell of the row is empty.
func (r Row) IsEmpty() bool {
	for _, c := range r {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// String renders the row as letters with '_' for empty cells.
func (r Row) String() string {
	var b strings.Builder
	for _, c := range r {
		if c.IsEmpty() {
			b.WriteByte('_')
			continue
		}
		b.WriteRune(c.Letter)
	}
	return b.String()
}
