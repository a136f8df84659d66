// apps/go-server/internal/httpserver/server.go
//
// HTTP server wiring for the Boggle backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints (optional auth): /game/new, /game/shuffle, /game/submit, /game/{id}.
//   - Daily Challenge endpoints (optional auth): mounted under /daily.
//   - Auth + profile/stat endpoints: /auth/*, /stats/me, /games/mine.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Optional auth decorates requests with user context when a valid token
//     is present; guests are tracked by an anonymous cookie.
//   - Round history writes are best effort and never fail a request.

package httpserver

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/robalobadob/boggle/apps/go-server/internal/board"
	"github.com/robalobadob/boggle/apps/go-server/internal/config"
	"github.com/robalobadob/boggle/apps/go-server/internal/daily"
	"github.com/robalobadob/boggle/apps/go-server/internal/game"
	"github.com/robalobadob/boggle/apps/go-server/internal/history"
	"github.com/robalobadob/boggle/apps/go-server/internal/store"
	"github.com/robalobadob/boggle/apps/go-server/internal/words"
)

// Deps are the collaborators a Server is built from.
type Deps struct {
	Config config.Config
	Store  store.Store
	Dict   words.Dictionary
	DB     *sql.DB

	// Boards feeds regular games; defaults to a randomly seeded generator.
	Boards game.BoardSource
	// DailyBoard returns the board for a date; defaults to daily.Board
	// with the configured salt.
	DailyBoard func(time.Time) board.Board
	// Now is the clock; defaults to time.Now.
	Now func() time.Time
}

// Server bundles router, session store, dictionary and DB handle.
type Server struct {
	r       *chi.Mux
	cfg     config.Config
	store   store.Store
	dict    words.Dictionary
	boards  game.BoardSource
	db      *sql.DB
	history *history.Store
	daily   *dailyServer
	now     func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(d Deps) *Server {
	s := &Server{
		r:       chi.NewRouter(),
		cfg:     d.Config,
		store:   d.Store,
		dict:    d.Dict,
		boards:  d.Boards,
		db:      d.DB,
		history: history.NewStore(d.DB),
		now:     d.Now,
	}
	if s.boards == nil {
		s.boards = board.NewGenerator(nil)
	}
	if s.now == nil {
		s.now = time.Now
	}
	dailyBoard := d.DailyBoard
	if dailyBoard == nil {
		salt := d.Config.DailySalt
		dailyBoard = func(t time.Time) board.Board { return daily.Board(t, salt) }
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"boggle-go","endpoints":["/health","POST /game/new","POST /game/submit","POST /game/shuffle","/daily/*","/auth/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		n := -1
		if l, ok := s.dict.(interface{ Len() int }); ok {
			n = l.Len()
		}
		_ = json.NewEncoder(w).Encode(map[string]int{"words": n})
	})

	// Game endpoints — OPTIONAL AUTH (guests can play)
	s.r.Group(func(r chi.Router) {
		r.Use(s.withOptionalAuth())
		r.Post("/game/new", s.handleNewGame)
		r.Post("/game/shuffle", s.handleShuffle)
		r.Post("/game/submit", s.handleSubmit)
		r.Get("/game/{id}", s.handleGetGame)
	})

	// Daily Challenge — OPTIONAL AUTH
	s.mountDaily(s.r.With(s.withOptionalAuth()), dailyBoard)

	// Auth + profile/stats
	s.mountAuthRoutes()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// gameOptions builds session options from config.
func (s *Server) gameOptions() game.Options {
	return game.Options{
		Round:         s.cfg.Round(),
		Now:           s.now,
		SkipPathCheck: !s.cfg.RequirePath,
	}
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.cfg.ClientOrigin
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
