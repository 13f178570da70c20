// internal/httpserver/routes_grid.go
//
// HTTP routes for editing the constraint grid.
// Exposes, under /grid:
//   - GET    /grid                          → current rows and revision
//   - PUT    /grid/rows/{row}/cells/{col}   → rewrite one cell (letter and/or state)
//   - PUT    /grid/cells/{index}/letter     → type a letter into a flat-indexed cell
//   - POST   /grid/cells/{index}/cycle      → click a cell: absent → correct → present
//   - POST   /grid/rows/{row}/feedback      → fill a row from a guess and known answer
//   - POST   /grid/rows                     → show another row (max 6)
//   - DELETE /grid/rows                     → clear and hide the last row (min 1)
//   - POST   /grid/reset                    → back to one empty row
//
// Every mutation goes through session.Mutate, which recomputes the
// candidates before the response is written.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wordle-solver/internal/grid"
	"github.com/robalobadob/wordle-solver/internal/session"
	"github.com/robalobadob/wordle-solver/internal/solver"
)

// mountGrid registers all /grid routes.
func (s *Server) mountGrid(r chi.Router) {
	r.Route("/grid", func(r chi.Router) {
		r.Get("/", s.handleGetGrid)
		r.Post("/reset", s.mutation(func(g *grid.Grid, _ *http.Request) error {
			g.Reset()
			return nil
		}))
		r.Post("/rows", s.mutation(func(g *grid.Grid, _ *http.Request) error {
			g.AddRow()
			return nil
		}))
		r.Delete("/rows", s.mutation(func(g *grid.Grid, _ *http.Request) error {
			g.RemoveRow()
			return nil
		}))
		r.Put("/rows/{row}/cells/{col}", s.handleSetCell)
		r.Post("/rows/{row}/feedback", s.handleFeedback)
		r.Put("/cells/{index}/letter", s.handleSetLetter)
		r.Post("/cells/{index}/cycle", s.handleCycle)
	})
}

// ------------------------------- views -------------------------------------

// cellView is the JSON form of a grid cell.
type cellView struct {
	Letter string              `json:"letter"`
	State  grid.Classification `json:"state"`
}

// gridRes is returned by GET /grid and by every mutation.
type gridRes struct {
	Revision uint64       `json:"revision"`
	Rows     [][]cellView `json:"rows"`
	MaxRows  int          `json:"maxRows"`
	Matches  int          `json:"matches"`
}

func newGridRes(snap session.Snapshot) gridRes {
	rows := snap.Grid.Rows()
	out := gridRes{
		Revision: snap.Revision,
		Rows:     make([][]cellView, len(rows)),
		MaxRows:  grid.MaxRows,
		Matches:  len(snap.Candidates),
	}
	for i, row := range rows {
		cells := make([]cellView, 0, grid.Width)
		for _, c := range row.Cells() {
			v := cellView{State: c.State}
			if !c.IsEmpty() {
				v.Letter = string(c.Letter)
			}
			cells = append(cells, v)
		}
		out.Rows[i] = cells
	}
	return out
}

func (s *Server) handleGetGrid(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(newGridRes(s.sess.Snapshot()))
}

// ------------------------------ mutations ----------------------------------

// mutation adapts a grid edit into a handler: it applies fn through the
// session and answers with the new grid, or 400 on a rejected edit.
func (s *Server) mutation(fn func(g *grid.Grid, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := s.sess.Mutate(r.Context(), func(g *grid.Grid) error { return fn(g, r) })
		if err != nil {
			hlog.FromRequest(r).Debug().Err(err).Msg("grid edit rejected")
			writeError(w, http.StatusBadRequest, errorCode(err))
			return
		}
		_ = json.NewEncoder(w).Encode(newGridRes(snap))
	}
}

// setCellReq is the body of PUT /grid/rows/{row}/cells/{col}.
// A missing state keeps the cell's current state.
type setCellReq struct {
	Letter string               `json:"letter"`
	State  *grid.Classification `json:"state"`
}

func (s *Server) handleSetCell(w http.ResponseWriter, r *http.Request) {
	row, err1 := strconv.Atoi(chi.URLParam(r, "row"))
	col, err2 := strconv.Atoi(chi.URLParam(r, "col"))
	if err1 != nil || err2 != nil {
		writeError(w, http.StatusBadRequest, "invalid_index")
		return
	}
	var req setCellReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	letter, ok := parseLetter(req.Letter)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_letter")
		return
	}
	s.mutation(func(g *grid.Grid, _ *http.Request) error {
		if req.State == nil {
			return g.SetLetter(row, col, letter)
		}
		return g.SetCell(row, col, letter, *req.State)
	})(w, r)
}

// letterReq is the body of PUT /grid/cells/{index}/letter.
type letterReq struct {
	Letter string `json:"letter"`
}

func (s *Server) handleSetLetter(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_index")
		return
	}
	var req letterReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	letter, ok := parseLetter(req.Letter)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_letter")
		return
	}
	row, col := grid.SplitIndex(idx)
	s.mutation(func(g *grid.Grid, _ *http.Request) error {
		return g.SetLetter(row, col, letter)
	})(w, r)
}

func (s *Server) handleCycle(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_index")
		return
	}
	row, col := grid.SplitIndex(idx)
	s.mutation(func(g *grid.Grid, _ *http.Request) error {
		_, err := g.Cycle(row, col)
		return err
	})(w, r)
}

// feedbackReq is the body of POST /grid/rows/{row}/feedback.
type feedbackReq struct {
	Guess  string `json:"guess"`
	Answer string `json:"answer"`
}

// handleFeedback fills a whole row with the marks guess would receive
// against answer.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	row, err := strconv.Atoi(chi.URLParam(r, "row"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_index")
		return
	}
	var req feedbackReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	marks, ok := solver.Feedback(req.Answer, req.Guess)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_guess")
		return
	}
	s.mutation(func(g *grid.Grid, _ *http.Request) error {
		for col, c := range marks {
			if err := g.SetCell(row, col, c.Letter, c.State); err != nil {
				return err
			}
		}
		return nil
	})(w, r)
}

// ------------------------------- helpers -----------------------------------

// parseLetter accepts "" (clear) or exactly one character.
// Letter validation itself is left to the grid.
func parseLetter(s string) (rune, bool) {
	if s == "" {
		return 0, true
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, false
	}
	return r, true
}

// errorCode maps grid errors to stable JSON error codes.
func errorCode(err error) string {
	switch {
	case errors.Is(err, grid.ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, grid.ErrInvalidLetter):
		return "invalid_letter"
	case errors.Is(err, grid.ErrUnknownClassification):
		return "invalid_state"
	}
	return "invalid"
}
