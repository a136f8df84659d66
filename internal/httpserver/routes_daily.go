// apps/go-server/internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Challenge" mode.
// Exposes three endpoints under /daily:
//   - POST /daily/new         → start today's round (creates or reuses session)
//   - POST /daily/submit      → submit a word in today's round
//   - GET  /daily/leaderboard → top 20 scores for today (or a given date)
//
// Everyone gets the same board for a date (seeded from date + salt). Each
// owner gets one round per day: a zero-score row is written when the round
// starts, sessions live in memory while playing and the best score is
// upserted on every accepted word. Guest rows and sessions follow the guest
// into their account on login/signup.

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/boggle/apps/go-server/internal/board"
	"github.com/robalobadob/boggle/apps/go-server/internal/daily"
	"github.com/robalobadob/boggle/apps/go-server/internal/game"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	store    *daily.Store
	board    func(time.Time) board.Board
	sessions map[string]*dailySession // active sessions keyed by userID|date
	mu       sync.Mutex               // guards sessions
}

// dailySession ties an in-progress daily round to its owner and date.
type dailySession struct {
	UserID string
	Date   string
	Game   *game.Session
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router, boardFor func(time.Time) board.Board) {
	dd := &dailyServer{
		srv:      s,
		store:    daily.NewStore(s.db),
		board:    boardFor,
		sessions: make(map[string]*dailySession),
	}
	s.daily = dd
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/submit", dd.handleSubmit)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// ownerID returns the authenticated user ID if logged in, otherwise the
// anonymous cookie ID.
func (d *dailyServer) ownerID(w http.ResponseWriter, r *http.Request) string {
	if me := userFrom(r); me != nil {
		return me.ID
	}
	return d.srv.ensureAnonID(w, r)
}

// -----------------------------------------------------------------------------
// /daily/new

// dailyNewRes is returned by /daily/new.
type dailyNewRes struct {
	Date   string         `json:"date"`
	Played bool           `json:"played"`
	Game   *game.Snapshot `json:"game,omitempty"`
}

// handleNew creates or reuses today's session.
//   - An in-memory session for today is returned as is.
//   - Otherwise, a DB row for today means the round was played → Played=true.
//   - Otherwise a new session is started on today's board.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	uid := d.ownerID(w, r)
	now := d.srv.now()
	date := daily.DateKey(now)
	key := uid + "|" + date

	d.mu.Lock()
	d.dropStale(date)
	if ds, ok := d.sessions[key]; ok {
		d.mu.Unlock()
		snap := ds.Game.Snapshot()
		_ = json.NewEncoder(w).Encode(dailyNewRes{Date: date, Game: &snap})
		return
	}
	d.mu.Unlock()

	if played, err := d.store.AlreadyPlayed(r.Context(), uid, date); err == nil && played {
		_ = json.NewEncoder(w).Encode(dailyNewRes{Date: date, Played: true})
		return
	} else if err != nil {
		log.Warn().Err(err).Str("user", uid).Msg("daily already played")
	}

	b := d.board(now)
	sess := game.New(game.BoardSourceFunc(func() board.Board { return b }), d.srv.dict, d.srv.gameOptions())

	d.mu.Lock()
	ds, ok := d.sessions[key]
	if !ok {
		ds = &dailySession{UserID: uid, Date: date, Game: sess}
		d.sessions[key] = ds
	}
	d.mu.Unlock()

	if !ok {
		if err := d.store.Start(r.Context(), uid, date); err != nil {
			log.Warn().Err(err).Str("user", uid).Msg("daily start row")
		}
	}

	snap := ds.Game.Snapshot()
	_ = json.NewEncoder(w).Encode(dailyNewRes{Date: date, Game: &snap})
}

// claim hands the guest's daily rows and any live session over to userID.
// A live session the user already owns for the same date is kept.
func (d *dailyServer) claim(ctx context.Context, anonID, userID string) (int64, error) {
	d.mu.Lock()
	for k, ds := range d.sessions {
		if ds.UserID != anonID {
			continue
		}
		delete(d.sessions, k)
		key := userID + "|" + ds.Date
		if _, taken := d.sessions[key]; !taken {
			ds.UserID = userID
			d.sessions[key] = ds
		}
	}
	d.mu.Unlock()

	return d.store.Claim(ctx, anonID, userID)
}

// dropStale forgets sessions from earlier dates. Caller holds d.mu.
func (d *dailyServer) dropStale(today string) {
	for k, ds := range d.sessions {
		if ds.Date != today {
			delete(d.sessions, k)
		}
	}
}

// -----------------------------------------------------------------------------
// /daily/submit

// handleSubmit applies a word to the caller's session for today and
// persists the new best score when accepted.
func (d *dailyServer) handleSubmit(w http.ResponseWriter, r *http.Request) {
	uid := d.ownerID(w, r)

	var p submitReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if p.GameID == "" || strings.TrimSpace(p.Word) == "" {
		http.Error(w, `{"error":"invalid"}`, http.StatusBadRequest)
		return
	}

	date := daily.DateKey(d.srv.now())
	d.mu.Lock()
	ds, ok := d.sessions[uid+"|"+date]
	d.mu.Unlock()
	if !ok || ds.Game.ID != p.GameID {
		http.Error(w, `{"error":"no_session"}`, http.StatusConflict)
		return
	}

	res := ds.Game.Submit(p.Word)
	if res.Accepted() {
		err := d.store.Upsert(r.Context(), daily.Result{
			UserID: uid, Date: date, Score: res.TotalScore, Words: res.WordCount,
		})
		if err != nil {
			log.Warn().Err(err).Str("user", uid).Msg("daily upsert")
		}
	}
	_ = json.NewEncoder(w).Encode(newSubmitRes(res))
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(d.srv.now())
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("daily leaderboard")
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(lbRes{Date: date, Top: rows})
}
