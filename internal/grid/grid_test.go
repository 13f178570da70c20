package grid

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	g := New()
	require.Equal(t, 1, g.Len())
	rows := g.Rows()
	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsEmpty())
	for _, c := range rows[0].Cells() {
		assert.Equal(t, Absent, c.State)
	}
}

func TestAddRow_StopsAtMax(t *testing.T) {
	t.Parallel()

	g := New()
	for i := 2; i <= MaxRows; i++ {
		assert.True(t, g.AddRow())
		assert.Equal(t, i, g.Len())
	}
	assert.False(t, g.AddRow())
	assert.Equal(t, MaxRows, g.Len())
}

func TestRemoveRow_StopsAtMin(t *testing.T) {
	t.Parallel()

	g := New()
	require.NoError(t, g.SetCell(0, 0, 'C', Correct))

	assert.False(t, g.RemoveRow())
	assert.Equal(t, MinRows, g.Len())
	assert.True(t, g.Rows()[0].IsEmpty(), "last row is cleared, not removed")
}

func TestRemoveRow_ClearsVacatedRowWithoutShifting(t *testing.T) {
	t.Parallel()

	g := New()
	g.AddRow()
	g.AddRow()
	require.NoError(t, g.SetCell(0, 0, 'A', Correct))
	require.NoError(t, g.SetCell(1, 1, 'B', Present))
	require.NoError(t, g.SetCell(2, 2, 'C', Absent))

	assert.True(t, g.RemoveRow())
	require.Equal(t, 2, g.Len())
	assert.Equal(t, Cell{Letter: 'A', State: Correct}, g.Rows()[0][0])
	assert.Equal(t, Cell{Letter: 'B', State: Present}, g.Rows()[1][1])

	// The hidden row comes back empty.
	g.AddRow()
	assert.True(t, g.Rows()[2].IsEmpty())
}

func TestSetCell(t *testing.T) {
	t.Parallel()

	g := New()
	require.NoError(t, g.SetCell(0, 4, 'e', Present))
	c, err := g.Cell(0, 4)
	require.NoError(t, err)
	assert.Equal(t, Cell{Letter: 'E', State: Present}, c, "letters are stored upper-case")

	require.NoError(t, g.SetCell(0, 4, 0, Absent))
	c, _ = g.Cell(0, 4)
	assert.True(t, c.IsEmpty())
}

func TestSetCell_Errors(t *testing.T) {
	t.Parallel()

	g := New()
	assert.ErrorIs(t, g.SetCell(1, 0, 'A', Correct), ErrOutOfRange, "hidden row")
	assert.ErrorIs(t, g.SetCell(0, 5, 'A', Correct), ErrOutOfRange)
	assert.ErrorIs(t, g.SetCell(-1, 0, 'A', Correct), ErrOutOfRange)
	assert.ErrorIs(t, g.SetCell(0, 0, '1', Correct), ErrInvalidLetter)
	assert.ErrorIs(t, g.SetCell(0, 0, 'é', Correct), ErrInvalidLetter)
	assert.ErrorIs(t, g.SetCell(0, 0, 'A', Classification(9)), ErrUnknownClassification)
	assert.True(t, g.Rows()[0].IsEmpty(), "failed edits leave the grid untouched")
}

func TestSetLetter_KeepsState(t *testing.T) {
	t.Parallel()

	g := New()
	require.NoError(t, g.SetCell(0, 2, 'A', Present))
	require.NoError(t, g.SetLetter(0, 2, 'r'))
	c, _ := g.Cell(0, 2)
	assert.Equal(t, Cell{Letter: 'R', State: Present}, c)
}

func TestCycle(t *testing.T) {
	t.Parallel()

	g := New()
	want := []Classification{Correct, Present, Absent, Correct}
	for _, w := range want {
		got, err := g.Cycle(0, 0)
		require.NoError(t, err)
		assert.Equal(t, w, got)
	}
	_, err := g.Cycle(0, 7)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestReset(t *testing.T) {
	t.Parallel()

	g := New()
	g.AddRow()
	require.NoError(t, g.SetCell(1, 1, 'Q', Correct))
	g.Reset()
	assert.Equal(t, 1, g.Len())
	assert.True(t, g.Rows()[0].IsEmpty())
}

func TestClone_IsIndependent(t *testing.T) {
	t.Parallel()

	g := New()
	c := g.Clone()
	require.NoError(t, c.SetCell(0, 0, 'Z', Correct))
	c.AddRow()

	assert.True(t, g.Rows()[0].IsEmpty())
	assert.Equal(t, 1, g.Len())
}

func TestRows_ReturnsCopy(t *testing.T) {
	t.Parallel()

	g := New()
	rows := g.Rows()
	rows[0][0] = Cell{Letter: 'X', State: Correct}
	assert.True(t, g.Rows()[0].IsEmpty())
}

func TestSplitIndex(t *testing.T) {
	t.Parallel()

	r, c := SplitIndex(0)
	assert.Equal(t, [2]int{0, 0}, [2]int{r, c})
	r, c = SplitIndex(7)
	assert.Equal(t, [2]int{1, 2}, [2]int{r, c})
	r, c = SplitIndex(29)
	assert.Equal(t, [2]int{5, 4}, [2]int{r, c})
}

func TestRowString(t *testing.T) {
	t.Parallel()

	var r Row
	r[0].Letter = 'C'
	r[4].Letter = 'E'
	assert.Equal(t, "C___E", r.String())
}

func TestParseClassification(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Classification{
		"absent":    Absent,
		"notInWord": Absent,
		"":          Absent,
		"Correct":   Correct,
		"present":   Present,
		"inWord":    Present,
	} {
		got, err := ParseClassification(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseClassification("green")
	assert.ErrorIs(t, err, ErrUnknownClassification)
}

func TestClassificationJSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal([]Classification{Absent, Correct, Present})
	require.NoError(t, err)
	assert.JSONEq(t, `["absent","correct","present"]`, string(b))

	var got Classification
	require.NoError(t, json.Unmarshal([]byte(`"inWord"`), &got))
	assert.Equal(t, Present, got)
	assert.Error(t, json.Unmarshal([]byte(`"purple"`), &got))
}
