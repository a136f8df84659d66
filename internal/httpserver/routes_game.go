// apps/go-server/internal/httpserver/routes_game.go
//
// Free-play game endpoints. Each call maps to one session command:
//   - POST /game/new     → start a session (first round)
//   - POST /game/shuffle → reset the session to a new board and clock
//   - POST /game/submit  → submit a word
//   - GET  /game/{id}    → read the session for rendering

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/boggle/apps/go-server/internal/board"
	"github.com/robalobadob/boggle/apps/go-server/internal/game"
	"github.com/robalobadob/boggle/apps/go-server/internal/history"
	"github.com/robalobadob/boggle/apps/go-server/internal/store"
)

// sessionTTL is how long a finished session is kept after its deadline.
const sessionTTL = time.Hour

type gameIDReq struct {
	GameID string `json:"gameId"`
}

type submitReq struct {
	GameID string `json:"gameId"`
	Word   string `json:"word"`
}

type submitRes struct {
	Outcome    game.Outcome     `json:"outcome"`
	Word       string           `json:"word"`
	Points     int              `json:"points"`
	Path       []board.Position `json:"path,omitempty"`
	Message    string           `json:"message"`
	TotalScore int              `json:"totalScore"`
}

func newSubmitRes(res game.Result) submitRes {
	return submitRes{
		Outcome:    res.Outcome,
		Word:       res.Word,
		Points:     res.Points,
		Path:       res.Path,
		Message:    res.Message(),
		TotalScore: res.TotalScore,
	}
}

// handleNewGame creates a session, records its first round and returns the
// snapshot.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	if n, err := s.store.Prune(r.Context(), s.now().Add(-sessionTTL)); err == nil && n > 0 {
		log.Debug().Int("pruned", n).Msg("pruned expired sessions")
	}

	sess := game.New(s.boards, s.dict, s.gameOptions())
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save game")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	s.recordStart(w, r, sess)
	_ = json.NewEncoder(w).Encode(sess.Snapshot())
}

// handleShuffle resets an existing session.
func (s *Server) handleShuffle(w http.ResponseWriter, r *http.Request) {
	var req gameIDReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, ok := s.lookup(w, r, req.GameID)
	if !ok {
		return
	}
	sess.Reset()
	s.recordStart(w, r, sess)
	_ = json.NewEncoder(w).Encode(sess.Snapshot())
}

// handleSubmit applies a word to a session. Rejections are 200s carrying
// the outcome; only transport problems are HTTP errors.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, ok := s.lookup(w, r, req.GameID)
	if !ok {
		return
	}
	res := sess.Submit(req.Word)
	log.Debug().Str("gameId", sess.ID).Str("word", res.Word).Str("outcome", string(res.Outcome)).Msg("submit")

	if res.Accepted() {
		if err := s.history.Record(r.Context(), sess.ID, res.Round, res.TotalScore, res.WordCount); err != nil {
			log.Warn().Err(err).Str("gameId", sess.ID).Msg("record round")
		}
	}
	_ = json.NewEncoder(w).Encode(newSubmitRes(res))
}

// handleGetGame returns the snapshot for a session.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	_ = json.NewEncoder(w).Encode(sess.Snapshot())
}

// lookup fetches a session or writes the error response.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request, id string) (*game.Session, bool) {
	if id == "" {
		http.Error(w, `{"error":"missing_game_id"}`, http.StatusBadRequest)
		return nil, false
	}
	sess, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		log.Error().Err(err).Str("gameId", id).Msg("load game")
		http.Error(w, `{"error":"load_failed"}`, http.StatusInternalServerError)
		return nil, false
	}
	return sess, true
}

// recordStart writes the history row for the session's current round.
func (s *Server) recordStart(w http.ResponseWriter, r *http.Request, sess *game.Session) {
	owner := history.Owner{}
	if me := userFrom(r); me != nil {
		owner.UserID = me.ID
	} else {
		owner.AnonymousID = s.ensureAnonID(w, r)
	}
	snap := sess.Snapshot()
	started := snap.Deadline.Add(-s.cfg.Round())
	if err := s.history.Start(r.Context(), owner, sess.ID, snap.Round, started, snap.Deadline); err != nil {
		log.Warn().Err(err).Str("gameId", sess.ID).Msg("insert round row")
	}
}
