// internal/grid/grid.go
//
// The constraint grid edited by the UI and read by the solver.
// Responsibilities:
//   - Hold MaxRows rows of Width cells and the number of visible rows.
//   - Apply single-cell mutations (letter, state, click cycle).
//   - Grow and shrink the visible rows between MinRows and MaxRows.
//
// Notes:
//   - Letters are stored upper-case, the way they are typed and shown.
//     The solver normalizes case on its side.
//   - Hidden rows are always empty: RemoveRow clears the row it hides.

package grid

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange            = errors.New("grid: cell out of range")
	ErrInvalidLetter         = errors.New("grid: letter must be A-Z")
	ErrUnknownClassification = errors.New("grid: unknown classification")
)

// Grid is the in-session constraint grid.
// The zero value is not ready for use; call New.
type Grid struct {
	rows    [MaxRows]Row
	visible int
}

// New returns a grid with a single empty row.
func New() *Grid {
	return &Grid{visible: MinRows}
}

// Rows returns the visible rows in order.
func (g *Grid) Rows() []Row {
	out := make([]Row, g.visible)
	copy(out, g.rows[:g.visible])
	return out
}

// Len is the number of visible rows.
func (g *Grid) Len() int { return g.visible }

// Cell returns the cell at (row, col).
func (g *Grid) Cell(row, col int) (Cell, error) {
	if err := g.check(row, col); err != nil {
		return Cell{}, err
	}
	return g.rows[row][col], nil
}

// SetCell rewrites exactly one cell. A zero letter clears the cell.
func (g *Grid) SetCell(row, col int, letter rune, state Classification) error {
	if err := g.check(row, col); err != nil {
		return err
	}
	l, err := normalizeLetter(letter)
	if err != nil {
		return err
	}
	if !state.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownClassification, uint8(state))
	}
	g.rows[row][col] = Cell{Letter: l, State: state}
	return nil
}

// SetLetter replaces the letter of a cell and keeps its state.
func (g *Grid) SetLetter(row, col int, letter rune) error {
	if err := g.check(row, col); err != nil {
		return err
	}
	return g.SetCell(row, col, letter, g.rows[row][col].State)
}

// Cycle advances the state of a cell the way a click does and
// returns the new state.
func (g *Grid) Cycle(row, col int) (Classification, error) {
	if err := g.check(row, col); err != nil {
		return Absent, err
	}
	next := g.rows[row][col].State.Next()
	g.rows[row][col].State = next
	return next, nil
}

// AddRow shows one more row, up to MaxRows.
// It reports whether the row count changed.
func (g *Grid) AddRow() bool {
	if g.visible >= MaxRows {
		return false
	}
	g.visible++
	return true
}

// RemoveRow replaces the last visible row with an empty one and hides
// it, never going below MinRows. Rows are not shifted. With a single
// row left the row is cleared and stays visible.
// It reports whether the row count changed.
func (g *Grid) RemoveRow() bool {
	g.rows[g.visible-1] = Row{}
	if g.visible <= MinRows {
		return false
	}
	g.visible--
	return true
}

// Reset returns the grid to a single empty row.
func (g *Grid) Reset() {
	*g = Grid{visible: MinRows}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := *g
	return &c
}

// SplitIndex converts a flat cell index (row*Width+col) to coordinates.
func SplitIndex(index int) (row, col int) {
	return index / Width, index % Width
}

func (g *Grid) check(row, col int) error {
	if row < 0 || row >= g.visible || col < 0 || col >= Width {
		return fmt.Errorf("%w: row %d col %d (rows %d)", ErrOutOfRange, row, col, g.visible)
	}
	return nil
}

// normalizeLetter upper-cases ASCII letters and rejects everything else.
func normalizeLetter(r rune) (rune, error) {
	switch {
	case r == 0:
		return 0, nil
	case r >= 'a' && r <= 'z':
		return r - 'a' + 'A', nil
	case r >= 'A' && r <= 'Z':
		return r, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLetter, r)
}
