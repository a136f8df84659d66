// apps/go-server/internal/history/history.go
//
// SQLite record of played rounds.
// One row per (game, round). Rows are owned either by a user or by an
// anonymous cookie ID; anonymous rows are claimed on login. Score and word
// count are overwritten as words are accepted, so a row always reflects
// the latest state of its round.

package history

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Owner identifies who played a round. Exactly one field is set.
type Owner struct {
	UserID      string
	AnonymousID string
}

func (o Owner) args() (any, any) {
	var u, a any
	if o.UserID != "" {
		u = o.UserID
	} else {
		a = o.AnonymousID
	}
	return u, a
}

// Round is one row of history.
type Round struct {
	GameID    string    `json:"gameId"`
	RoundNo   int       `json:"round"`
	StartedAt time.Time `json:"startedAt"`
	Deadline  time.Time `json:"deadline"`
	Score     int       `json:"score"`
	Words     int       `json:"words"`
}

// Stats aggregates a user's rounds.
type Stats struct {
	RoundsPlayed int `json:"roundsPlayed"`
	BestScore    int `json:"bestScore"`
	WordsFound   int `json:"wordsFound"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Start records a new round with zero score.
func (s *Store) Start(ctx context.Context, o Owner, gameID string, roundNo int, startedAt, deadline time.Time) error {
	if o.UserID == "" && o.AnonymousID == "" {
		return errors.New("history: round has no owner")
	}
	u, a := o.args()
	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO rounds (game_id, round_no, user_id, anonymous_id, started_at, deadline)
		VALUES (?,?,?,?,?,?)`,
		gameID, roundNo, u, a, startedAt.UTC().Format(time.RFC3339), deadline.UTC().Format(time.RFC3339),
	)
	return err
}

// Record stores the current score and word count of a round.
func (s *Store) Record(ctx context.Context, gameID string, roundNo, score, words int) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE rounds SET score=?, words=? WHERE game_id=? AND round_no=?`,
		score, words, gameID, roundNo,
	)
	return err
}

// Recent lists a user's latest rounds, newest first.
func (s *Store) Recent(ctx context.Context, userID string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT game_id, round_no, started_at, deadline, score, words
		FROM rounds WHERE user_id=?
		ORDER BY started_at DESC, round_no DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Round{}
	for rows.Next() {
		var r Round
		var started, deadline string
		if err := rows.Scan(&r.GameID, &r.RoundNo, &started, &deadline, &r.Score, &r.Words); err != nil {
			return nil, err
		}
		r.StartedAt = parseTime(started)
		r.Deadline = parseTime(deadline)
		out = append(out, r)
	}
	return out, rows.Err()
}

// StatsFor aggregates every round owned by userID.
func (s *Store) StatsFor(ctx context.Context, userID string) (Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(MAX(score),0), COALESCE(SUM(words),0)
		FROM rounds WHERE user_id=?`, userID,
	).Scan(&st.RoundsPlayed, &st.BestScore, &st.WordsFound)
	return st, err
}

// Claim moves every round of anonID to userID.
func (s *Store) Claim(ctx context.Context, anonID, userID string) (int64, error) {
	if anonID == "" || userID == "" {
		return 0, nil
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE rounds SET user_id=?, anonymous_id=NULL WHERE anonymous_id=?`, userID, anonID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// parseTime parses RFC3339 timestamps; on error returns zero time.
func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
