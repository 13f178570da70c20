package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-solver/internal/grid"
	"github.com/robalobadob/wordle-solver/internal/solver"
)

var dict = []string{"crane", "slate", "input", "zonal"}

func words(m []solver.Match) []string {
	out := make([]string, len(m))
	for i, x := range m {
		out[i] = x.Word
	}
	return out
}

func TestNew_StartsWithEverything(t *testing.T) {
	t.Parallel()

	s := New(dict)
	snap := s.Snapshot()
	assert.Zero(t, snap.Revision)
	assert.Equal(t, 1, snap.Grid.Len())
	assert.Equal(t, []string{"crane", "slate", "input", "zonal"}, words(snap.Candidates))
}

func TestMutate_RecomputesCandidates(t *testing.T) {
	t.Parallel()

	s := New(dict)
	snap, err := s.Mutate(context.Background(), func(g *grid.Grid) error {
		return g.SetCell(0, 0, 'C', grid.Correct)
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, snap.Revision)
	assert.Equal(t, []string{"crane"}, words(snap.Candidates))
	assert.Equal(t, snap.Candidates, s.Snapshot().Candidates)
}

func TestMutate_FailureLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	s := New(dict)
	boom := errors.New("boom")
	snap, err := s.Mutate(context.Background(), func(g *grid.Grid) error {
		_ = g.SetCell(0, 0, 'Z', grid.Correct)
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Zero(t, snap.Revision)
	assert.True(t, s.Snapshot().Grid.Rows()[0].IsEmpty())
	assert.Len(t, s.Snapshot().Candidates, len(dict))
}

func TestSnapshot_GridIsACopy(t *testing.T) {
	t.Parallel()

	s := New(dict)
	snap := s.Snapshot()
	require.NoError(t, snap.Grid.SetCell(0, 0, 'Q', grid.Correct))
	assert.True(t, s.Snapshot().Grid.Rows()[0].IsEmpty())
}

func TestMutate_Concurrent(t *testing.T) {
	t.Parallel()

	s := New(dict)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Mutate(context.Background(), func(g *grid.Grid) error {
				_, err := g.Cycle(0, 0)
				return err
			})
			_ = s.Snapshot()
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 20, s.Snapshot().Revision)
}
