package daily

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/robalobadob/boggle/apps/go-server/assets"
	"github.com/robalobadob/boggle/apps/go-server/internal/database"
)

func TestBoardIsDeterministicPerDay(t *testing.T) {
	morning := time.Date(2026, 10, 19, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 10, 19, 23, 0, 0, 0, time.UTC)
	if Board(morning, "salt") != Board(evening, "salt") {
		t.Fatalf("same day should give the same board")
	}
	if Board(morning, "salt") == Board(morning.AddDate(0, 0, 1), "salt") &&
		Board(morning, "salt") == Board(morning.AddDate(0, 0, 2), "salt") {
		t.Fatalf("consecutive days should not all share a board")
	}
	a1, b1 := Seed(morning, "salt")
	a2, b2 := Seed(morning, "pepper")
	if a1 == a2 && b1 == b2 {
		t.Fatalf("salt should change the seed")
	}
}

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("x", 10*3600)
	if got := DateKey(time.Date(2026, 10, 20, 5, 0, 0, 0, loc)); got != "2026-10-19" {
		t.Fatalf("DateKey should use UTC, got %s", got)
	}
}

func TestStore(t *testing.T) {
	db, err := database.OpenMigrated(filepath.Join(t.TempDir(), "app.db"), assets.Migrations())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	ctx := context.Background()
	st := NewStore(db)

	played, err := st.AlreadyPlayed(ctx, "u1", "2026-10-19")
	if err != nil || played {
		t.Fatalf("expected not played, got %v %v", played, err)
	}

	must := func(r Result) {
		t.Helper()
		if err := st.Upsert(ctx, r); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}
	must(Result{UserID: "u1", Date: "2026-10-19", Score: 3, Words: 2})
	must(Result{UserID: "u1", Date: "2026-10-19", Score: 7, Words: 4})
	must(Result{UserID: "u1", Date: "2026-10-19", Score: 1, Words: 1}) // lower, ignored
	must(Result{UserID: "u2", Date: "2026-10-19", Score: 7, Words: 5})
	must(Result{UserID: "u3", Date: "2026-10-18", Score: 99, Words: 9})

	played, _ = st.AlreadyPlayed(ctx, "u1", "2026-10-19")
	if !played {
		t.Fatalf("expected played after upsert")
	}

	rows, err := st.Leaderboard(ctx, "2026-10-19", 0)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %+v", rows)
	}
	if rows[0].UserID != "u2" || rows[1].UserID != "u1" || rows[1].Score != 7 {
		t.Fatalf("unexpected order %+v", rows)
	}
}

func TestStoreStartAndClaim(t *testing.T) {
	db, err := database.OpenMigrated(filepath.Join(t.TempDir(), "app.db"), assets.Migrations())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	ctx := context.Background()
	st := NewStore(db)

	if err := st.Start(ctx, "anon", "2026-10-18"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if played, _ := st.AlreadyPlayed(ctx, "anon", "2026-10-18"); !played {
		t.Fatalf("a started round counts as played")
	}
	if err := st.Upsert(ctx, Result{UserID: "anon", Date: "2026-10-18", Score: 4, Words: 2}); err != nil {
		t.Fatal(err)
	}
	if err := st.Start(ctx, "anon", "2026-10-18"); err != nil {
		t.Fatalf("second start: %v", err)
	}

	// Same date on both sides: the better score wins in each direction.
	for _, r := range []Result{
		{UserID: "anon", Date: "2026-10-19", Score: 9, Words: 3},
		{UserID: "user", Date: "2026-10-19", Score: 5, Words: 2},
		{UserID: "anon", Date: "2026-10-20", Score: 1, Words: 1},
		{UserID: "user", Date: "2026-10-20", Score: 6, Words: 4},
	} {
		if err := st.Upsert(ctx, r); err != nil {
			t.Fatal(err)
		}
	}

	n, err := st.Claim(ctx, "anon", "user")
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 guest rows consumed, got %d", n)
	}

	for date, want := range map[string]int{"2026-10-18": 4, "2026-10-19": 9, "2026-10-20": 6} {
		rows, err := st.Leaderboard(ctx, date, 0)
		if err != nil {
			t.Fatal(err)
		}
		if len(rows) != 1 || rows[0].UserID != "user" || rows[0].Score != want {
			t.Errorf("%s: got %+v, want user with %d", date, rows, want)
		}
	}

	if n, err := st.Claim(ctx, "anon", "user"); err != nil || n != 0 {
		t.Fatalf("second claim should be a no-op, got %d %v", n, err)
	}
}
