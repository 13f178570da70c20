// internal/session/session.go
//
// In-memory holder of the single in-session constraint grid.
//
// Characteristics:
//   - One grid per process; nothing is persisted.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Every successful mutation recomputes the ranked candidates, so readers
//     always see a result that matches the grid they are shown.

package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle-solver/internal/grid"
	"github.com/robalobadob/wordle-solver/internal/solver"
)

// Snapshot is a consistent, caller-owned view of the session.
type Snapshot struct {
	Revision   uint64
	Grid       *grid.Grid
	Candidates []solver.Match
}

// Session guards the grid and its latest evaluation.
type Session struct {
	mu         sync.RWMutex
	dict       []string
	grid       *grid.Grid
	candidates []solver.Match
	revision   uint64
}

// New creates a session over a read-only dictionary with one empty row.
func New(dict []string) *Session {
	s := &Session{dict: dict, grid: grid.New()}
	s.candidates = solver.EvaluateScored(s.dict, s.grid)
	return s
}

// Snapshot returns a copy of the current grid and its candidates.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Mutate applies fn to the grid. If fn succeeds the candidates are
// recomputed and the revision advances; if it fails the grid is left
// as it was before fn ran.
func (s *Session) Mutate(ctx context.Context, fn func(g *grid.Grid) error) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.grid.Clone()
	if err := fn(next); err != nil {
		return s.snapshotLocked(), err
	}
	s.grid = next
	s.candidates = solver.EvaluateScored(s.dict, s.grid)
	s.revision++

	zerolog.Ctx(ctx).Debug().
		Uint64("revision", s.revision).
		Int("rows", s.grid.Len()).
		Int("matches", len(s.candidates)).
		Msg("grid updated")
	return s.snapshotLocked(), nil
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		Revision:   s.revision,
		Grid:       s.grid.Clone(),
		Candidates: s.candidates,
	}
}
