// apps/go-server/internal/game/types.go
//
// Core type definitions for a Boggle round.
// Defines:
//   - Outcome: the verdict on a submitted word.
//   - Result: outcome plus the accepted word and points, if any.
//   - WordEntry: one accepted word.
//   - State: whether the round is still running.
//   - Snapshot: read-only view of a session for rendering.

package game

import (
	"fmt"
	"time"

	"github.com/robalobadob/boggle/apps/go-server/internal/board"
)

// Outcome is the verdict for one submission. Every rejection is a value,
// never an error.
type Outcome string

const (
	OutcomeAccepted   Outcome = "accepted"
	OutcomeTooShort   Outcome = "too_short"
	OutcomeNotAWord   Outcome = "not_a_word"
	OutcomeDuplicate  Outcome = "duplicate"
	OutcomeExpired    Outcome = "expired"
	OutcomeNotOnBoard Outcome = "not_on_board"
)

// Result is returned by Session.Submit.
type Result struct {
	Outcome Outcome          `json:"outcome"`
	Word    string           `json:"word"`           // normalised (trimmed, uppercase)
	Points  int              `json:"points"`         // non-zero only when accepted
	Path    []board.Position `json:"path,omitempty"` // cells used, when the path was checked

	// Session totals as they stood when this submission was evaluated,
	// taken under the same lock.
	Round      int `json:"round"`
	TotalScore int `json:"totalScore"`
	WordCount  int `json:"wordCount"`
}

// Accepted reports whether the word was scored.
func (r Result) Accepted() bool { return r.Outcome == OutcomeAccepted }

// Message is the player-facing feedback line for r.
func (r Result) Message() string {
	switch r.Outcome {
	case OutcomeAccepted:
		return fmt.Sprintf("'%s' accepted! (+%d points)", r.Word, r.Points)
	case OutcomeTooShort:
		return fmt.Sprintf("'%s' is too short.", r.Word)
	case OutcomeNotAWord:
		return fmt.Sprintf("'%s' is not a valid English word.", r.Word)
	case OutcomeDuplicate:
		return fmt.Sprintf("You already found '%s'.", r.Word)
	case OutcomeNotOnBoard:
		return fmt.Sprintf("'%s' cannot be traced on the board.", r.Word)
	case OutcomeExpired:
		return "Time is up!"
	}
	return ""
}

// WordEntry is one accepted word and the points it earned.
type WordEntry struct {
	Word   string `json:"word"`
	Points int    `json:"points"`
}

// State is derived from the deadline on every read.
type State string

const (
	StateActive  State = "active"
	StateExpired State = "expired"
)

// Snapshot is a point-in-time copy of a session.
type Snapshot struct {
	ID         string      `json:"gameId"`
	Round      int         `json:"round"`
	Board      [][]string  `json:"board"`
	Words      []WordEntry `json:"words"`
	TotalScore int         `json:"totalScore"`
	Deadline   time.Time   `json:"deadline"`
	Remaining  int         `json:"remainingSeconds"`
	State      State       `json:"state"`
}
