// internal/httpserver/server.go
//
// HTTP server wiring for the solver UI.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs,
//     access logging).
//   - Public endpoints: "/", "/health", "/words.txt", "/debug/words".
//   - Grid endpoints: mounted under /grid (see routes_grid.go).
//   - Candidate endpoint: GET /candidates.
//
// Notes:
//   - CORS is single-origin (CLIENT_ORIGIN) so a browser UI on another port works.
//   - The server holds exactly one session; there is no auth and no user state.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle-solver/internal/session"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// Options configures the server; zero values fall back to defaults.
type Options struct {
	ClientOrigin   string        // CORS origin; default http://localhost:5173
	DisplayLimit   int           // default /candidates limit; 0 means all
	RequestTimeout time.Duration // per-request bound; default 10s
	Logger         *zerolog.Logger
}

// Server bundles router, the session, and the loaded dictionary.
type Server struct {
	r    *chi.Mux
	sess *session.Session
	dict *words.Dictionary
	opts Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(sess *session.Session, dict *words.Dictionary, opts Options) *Server {
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = &log.Logger
	}
	s := &Server{r: chi.NewRouter(), sess: sess, dict: dict, opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                    // add X-Request-ID
	s.r.Use(chimw.RealIP)                       // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(*opts.Logger))      // request-scoped logger
	s.r.Use(accessLog)                          // one line per request
	s.r.Use(chimw.Recoverer)                    // recover from panics
	s.r.Use(chimw.Timeout(opts.RequestTimeout)) // bound handler time
	s.r.Use(jsonContentType)                    // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))            // browser UI on another origin

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","/grid","/candidates","/words.txt"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(s.dict.Stats())
	})

	// Dictionary as served to the original UI: one word per line.
	s.r.Get("/words.txt", s.handleWordList)

	s.mountGrid(s.r)
	s.r.Get("/candidates", s.handleCandidates)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Handler exposes the router (useful for tests).
func (s *Server) Handler() http.Handler { return s.r }

// Run serves HTTP on addr until ctx is cancelled, then shuts down,
// giving in-flight requests up to shutdownTimeout to finish.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.opts.Logger.Info().Msg("shutting down")
		return hs.Shutdown(sctx)
	})
	return g.Wait()
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// accessLog writes one structured line per request.
var accessLog = hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("requestId", chimw.GetReqID(r.Context())).
		Int("status", status).
		Int("size", size).
		Dur("elapsed", d).
		Msg("request")
})

// ---------------------------- dictionary -----------------------------------

func (s *Server) handleWordList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := s.dict.WriteTo(w); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("write word list")
	}
}

// ---------------------------- candidates -----------------------------------

// candidatesRes is returned by GET /candidates.
type candidatesRes struct {
	Revision uint64         `json:"revision"`
	Total    int            `json:"total"`
	Words    []solver.Match `json:"words"`
}

// handleCandidates returns the ranked words for the current grid,
// truncated to ?limit= (default DisplayLimit; 0 means all).
func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	limit := s.opts.DisplayLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid_limit")
			return
		}
		limit = n
	}
	snap := s.sess.Snapshot()
	_ = json.NewEncoder(w).Encode(candidatesRes{
		Revision: snap.Revision,
		Total:    len(snap.Candidates),
		Words:    solver.Top(snap.Candidates, limit),
	})
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
