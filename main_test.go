package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/boggle/apps/go-server/internal/board"
	"github.com/robalobadob/boggle/apps/go-server/internal/game"
	"github.com/robalobadob/boggle/apps/go-server/internal/words"
)

func TestPlay(t *testing.T) {
	b, err := board.Parse(strings.Fields("C A T S Z Z Z Z Z Z Z Z Z Z Z Z")...)
	if err != nil {
		t.Fatal(err)
	}
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	sess := game.New(game.BoardSourceFunc(func() board.Board { return b }), words.NewSet("cat", "cats"),
		game.Options{Now: func() time.Time { return now }})

	in := strings.NewReader("cat\ncat\nab\n:shuffle\ncats\n:quit\nignored\n")
	var out bytes.Buffer
	if err := play(in, &out, sess); err != nil {
		t.Fatalf("play: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"'CAT' accepted! (+1 points)",
		"You already found 'CAT'.",
		"'AB' is too short.",
		"'CATS' accepted! (+1 points)",
		"Time left: 03:00",
		"Total Score: 1",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "IGNORED") {
		t.Errorf("input after :quit should be ignored")
	}
}

func TestTimeLeft(t *testing.T) {
	if got := timeLeft(95 * time.Second); got != "Time left: 01:35" {
		t.Fatalf("unexpected %q", got)
	}
	if got := timeLeft(0); got != "Time is up!" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestLoadDictionaryWarnsOnBuiltinList(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	dict, err := loadDictionary("")
	if err != nil {
		t.Fatalf("load built-in: %v", err)
	}
	if !dict.Contains("elephant") {
		t.Fatalf("built-in list missing elephant")
	}
	if !strings.Contains(buf.String(), `"level":"warn"`) || !strings.Contains(buf.String(), "WORDS_FILE not set") {
		t.Fatalf("expected a warning, got %s", buf.String())
	}

	buf.Reset()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("dew\ndin\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadDictionary(path); err != nil {
		t.Fatalf("load file: %v", err)
	}
	if strings.Contains(buf.String(), `"level":"warn"`) {
		t.Fatalf("no warning expected with WORDS_FILE, got %s", buf.String())
	}
}
