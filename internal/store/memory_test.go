package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/robalobadob/boggle/apps/go-server/internal/board"
	"github.com/robalobadob/boggle/apps/go-server/internal/game"
	"github.com/robalobadob/boggle/apps/go-server/internal/words"
)

func newSession(now time.Time) *game.Session {
	gen := board.NewGenerator(nil)
	return game.New(gen, words.NewSet("cat"), game.Options{Now: func() time.Time { return now }})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	s := newSession(time.Now())
	if err := st.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := st.Get(ctx, s.ID)
	if err != nil || got != s {
		t.Fatalf("get returned %v, %v", got, err)
	}
	if err := st.Delete(ctx, s.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := st.Get(ctx, s.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStorePrune(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	now := time.Now()

	old := newSession(now.Add(-2 * time.Hour))
	fresh := newSession(now)
	_ = st.Save(ctx, old)
	_ = st.Save(ctx, fresh)

	n, err := st.Prune(ctx, now.Add(-time.Hour))
	if err != nil || n != 1 {
		t.Fatalf("prune = %d, %v; want 1", n, err)
	}
	if _, err := st.Get(ctx, old.ID); err == nil {
		t.Fatalf("old session should be gone")
	}
	if _, err := st.Get(ctx, fresh.ID); err != nil {
		t.Fatalf("fresh session should remain: %v", err)
	}
}

func TestMemoryStoreConcurrent(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			s := newSession(time.Now())
			_ = st.Save(ctx, s)
			if _, err := st.Get(ctx, s.ID); err != nil {
				t.Errorf("get: %v", err)
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
