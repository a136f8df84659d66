package daily

import (
	"context"
	"database/sql"
)

// Result is one owner's best score on a daily board.
type Result struct {
	UserID string `json:"userId"`
	Date   string `json:"date"`
	Score  int    `json:"score"`
	Words  int    `json:"words"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// AlreadyPlayed reports whether userID has a result row for date.
func (s *Store) AlreadyPlayed(ctx context.Context, userID, date string) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM daily_results WHERE user_id=? AND date=?",
		userID, date,
	).Scan(&cnt)
	return cnt > 0, err
}

// Start records that userID began the round for date with a zero score.
// An existing row is left untouched.
func (s *Store) Start(ctx context.Context, userID, date string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO daily_results(user_id, date, score, words) VALUES(?,?,0,0)",
		userID, date,
	)
	return err
}

// Upsert stores r, keeping the higher score if a row already exists.
func (s *Store) Upsert(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO daily_results(user_id, date, score, words)
		VALUES(?,?,?,?)
		ON CONFLICT(user_id, date) DO UPDATE SET
			score = excluded.score,
			words = excluded.words,
			updated_at = strftime('%Y-%m-%dT%H:%M:%SZ', 'now')
		WHERE excluded.score >= daily_results.score`,
		r.UserID, r.Date, r.Score, r.Words,
	)
	return err
}

// Claim moves every row owned by anonID to userID. Where userID already
// has a row for the same date, the higher score wins. It returns the number
// of guest rows consumed.
func (s *Store) Claim(ctx context.Context, anonID, userID string) (int64, error) {
	if anonID == "" || anonID == userID {
		return 0, nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	// The WHERE on the SELECT is required for SQLite to parse the upsert.
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO daily_results(user_id, date, score, words, created_at, updated_at)
		SELECT ?, date, score, words, created_at, updated_at
		FROM daily_results WHERE user_id = ?
		ON CONFLICT(user_id, date) DO UPDATE SET
			score = excluded.score,
			words = excluded.words,
			updated_at = excluded.updated_at
		WHERE excluded.score > daily_results.score`,
		userID, anonID,
	); err != nil {
		return 0, err
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM daily_results WHERE user_id = ?", anonID)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, tx.Commit()
}

type LBRow struct {
	UserID string `json:"userId"`
	Score  int    `json:"score"`
	Words  int    `json:"words"`
}

// Leaderboard returns the top rows for date: highest score first, then
// most words, then earliest to reach it.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, score, words
		FROM daily_results
		WHERE date=?
		ORDER BY score DESC, words DESC, updated_at ASC
		LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []LBRow{}
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.UserID, &r.Score, &r.Words); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
