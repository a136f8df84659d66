// apps/go-server/internal/game/engine.go
//
// Game session for a single timed round.
// Responsibilities:
//   - Hold the board, accepted words, running score and deadline.
//   - Reset to a fresh board and a full round on shuffle.
//   - Validate and apply submissions in a fixed order: expired, too short,
//     not a word, duplicate, not on board, accepted.
//
// Notes:
//   - Boards and dictionary are injected, so tests can fix both.
//   - Active/expired is never scheduled; it is derived from the clock at
//     each read.
//   - A Session serialises its own mutations; distinct sessions share
//     nothing mutable.
package game

import (
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/robalobadob/boggle/apps/go-server/internal/board"
	"github.com/robalobadob/boggle/apps/go-server/internal/words"
)

const (
	// DefaultRound is the length of one round.
	DefaultRound = 180 * time.Second

	minWordLen = 3
)

// BoardSource supplies boards on session start and reset.
type BoardSource interface {
	Generate() board.Board
}

// BoardSourceFunc adapts a function to BoardSource.
type BoardSourceFunc func() board.Board

// Generate calls f.
func (f BoardSourceFunc) Generate() board.Board { return f() }

// Options tune a Session. Zero values select the defaults.
type Options struct {
	Round time.Duration    // round length; DefaultRound if zero
	Now   func() time.Time // clock; time.Now if nil

	// SkipPathCheck accepts any dictionary word without tracing it on
	// the board.
	SkipPathCheck bool
}

// Session is one player's game. Create with New.
type Session struct {
	ID string

	boards   BoardSource
	dict     words.Dictionary
	round    time.Duration
	now      func() time.Time
	skipPath bool

	mu       sync.Mutex // guards everything below
	roundNo  int
	board    board.Board
	entries  []WordEntry
	found    map[string]struct{}
	total    int
	deadline time.Time
}

// New constructs a session and starts its first round.
func New(boards BoardSource, dict words.Dictionary, opts Options) *Session {
	s := &Session{
		ID:       uuid.NewString(),
		boards:   boards,
		dict:     dict,
		round:    opts.Round,
		now:      opts.Now,
		skipPath: opts.SkipPathCheck,
	}
	if s.round <= 0 {
		s.round = DefaultRound
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.Reset()
	return s
}

// Reset draws a new board, clears found words and score, and restarts the
// clock.
func (s *Session) Reset() {
	b := s.boards.Generate()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.roundNo++
	s.board = b
	s.entries = nil
	s.found = make(map[string]struct{})
	s.total = 0
	s.deadline = s.now().Add(s.round)
}

// Submit evaluates raw and, only when accepted, records it. The round
// number and totals on the Result are read in the same critical section.
func (s *Session) Submit(raw string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.submit(strings.ToUpper(strings.TrimSpace(raw)))
	res.Round = s.roundNo
	res.TotalScore = s.total
	res.WordCount = len(s.entries)
	return res
}

// submit applies the rules in order. Caller holds s.mu.
func (s *Session) submit(word string) Result {
	res := Result{Word: word}

	switch {
	case !s.now().Before(s.deadline):
		res.Outcome = OutcomeExpired
		return res
	case utf8.RuneCountInString(word) < minWordLen:
		res.Outcome = OutcomeTooShort
		return res
	case !s.dict.Contains(word):
		res.Outcome = OutcomeNotAWord
		return res
	}
	if _, dup := s.found[word]; dup {
		res.Outcome = OutcomeDuplicate
		return res
	}
	if !s.skipPath {
		path, ok := board.FindPath(s.board, word)
		if !ok {
			res.Outcome = OutcomeNotOnBoard
			return res
		}
		res.Path = path
	}

	res.Outcome = OutcomeAccepted
	res.Points = Score(word)
	s.entries = append(s.entries, WordEntry{Word: word, Points: res.Points})
	s.found[word] = struct{}{}
	s.total += res.Points
	return res
}

// Board returns the current board.
func (s *Session) Board() board.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board
}

// Words returns accepted words in discovery order.
func (s *Session) Words() []WordEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]WordEntry(nil), s.entries...)
}

// TotalScore is the sum of all accepted word points this round.
func (s *Session) TotalScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Deadline is the instant the current round ends.
func (s *Session) Deadline() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deadline
}

// Round is the 1-based round counter, bumped by each Reset.
func (s *Session) Round() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roundNo
}

// Remaining is the time left in the round, never negative.
func (s *Session) Remaining() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining()
}

// State reports whether the round is still accepting words.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state()
}

// Snapshot copies the session for rendering.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := append([]WordEntry{}, s.entries...)
	return Snapshot{
		ID:         s.ID,
		Round:      s.roundNo,
		Board:      s.board.Rows(),
		Words:      entries,
		TotalScore: s.total,
		Deadline:   s.deadline,
		Remaining:  int(s.remaining() / time.Second),
		State:      s.state(),
	}
}

func (s *Session) remaining() time.Duration {
	if d := s.deadline.Sub(s.now()); d > 0 {
		return d
	}
	return 0
}

func (s *Session) state() State {
	if s.now().Before(s.deadline) {
		return StateActive
	}
	return StateExpired
}
