package history

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/robalobadob/boggle/apps/go-server/assets"
	"github.com/robalobadob/boggle/apps/go-server/internal/database"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenMigrated(filepath.Join(t.TempDir(), "app.db"), assets.Migrations())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if _, err := db.Exec(`INSERT INTO users (id, username, password_hash, created_at) VALUES ('u1','alice','x','2026-01-01T00:00:00Z')`); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return db
}

func TestRoundsLifecycle(t *testing.T) {
	ctx := context.Background()
	st := NewStore(openTestDB(t))
	start := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	if err := st.Start(ctx, Owner{UserID: "u1"}, "g1", 1, start, start.Add(3*time.Minute)); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := st.Start(ctx, Owner{UserID: "u1"}, "g1", 2, start.Add(time.Minute), start.Add(4*time.Minute)); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := st.Record(ctx, "g1", 1, 5, 3); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := st.Record(ctx, "g1", 2, 2, 2); err != nil {
		t.Fatalf("record: %v", err)
	}

	rounds, err := st.Recent(ctx, "u1", 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(rounds) != 2 || rounds[0].RoundNo != 2 || rounds[1].Score != 5 {
		t.Fatalf("unexpected rounds %+v", rounds)
	}
	if !rounds[1].StartedAt.Equal(start) {
		t.Fatalf("started_at round-trip: %v", rounds[1].StartedAt)
	}

	stats, err := st.StatsFor(ctx, "u1")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats != (Stats{RoundsPlayed: 2, BestScore: 5, WordsFound: 5}) {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestClaimAnonymousRounds(t *testing.T) {
	ctx := context.Background()
	st := NewStore(openTestDB(t))
	now := time.Now()

	if err := st.Start(ctx, Owner{AnonymousID: "anon"}, "g2", 1, now, now.Add(time.Minute)); err != nil {
		t.Fatalf("start: %v", err)
	}
	n, err := st.Claim(ctx, "anon", "u1")
	if err != nil || n != 1 {
		t.Fatalf("claim = %d, %v", n, err)
	}
	stats, _ := st.StatsFor(ctx, "u1")
	if stats.RoundsPlayed != 1 {
		t.Fatalf("claimed round not attributed: %+v", stats)
	}
}

func TestStartRequiresOwner(t *testing.T) {
	st := NewStore(openTestDB(t))
	if err := st.Start(context.Background(), Owner{}, "g", 1, time.Now(), time.Now()); err == nil {
		t.Fatalf("expected error for ownerless round")
	}
}
