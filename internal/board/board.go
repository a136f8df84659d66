// apps/go-server/internal/board/board.go
//
// Board shape and generation.
//   - Board is a fixed 4x4 grid of uppercase faces, immutable once built.
//   - Generator shakes the dice (random permutation) and rolls one face per
//     die in row-major order.
//   - The random source is injected so daily boards and tests are
//     reproducible; a Generator is safe for concurrent use.

package board

import (
	"errors"
	"math/rand/v2"
	"strings"
	"sync"
)

const (
	Size  = 4
	Cells = Size * Size
)

// Board is a 4x4 grid of faces. Each cell holds a 1 or 2 letter uppercase
// string.
type Board [Size][Size]string

// Position is a (row, col) coordinate on a Board.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InBounds reports whether p lies on the grid.
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// At returns the face at p.
func (b Board) At(p Position) string { return b[p.Row][p.Col] }

// Rows returns the board as a slice of rows, convenient for JSON.
func (b Board) Rows() [][]string {
	out := make([][]string, Size)
	for r := range b {
		out[r] = append([]string(nil), b[r][:]...)
	}
	return out
}

// String renders the board as four lines of space-separated faces, with
// "Qu" shown in its printed form.
func (b Board) String() string {
	var sb strings.Builder
	for r := range b {
		for c, face := range b[r] {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if face == "QU" {
				face = "Qu"
			}
			sb.WriteString(face)
			if len(face) == 1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse builds a Board from 16 faces in row-major order. Intended for
// tests and fixtures; faces are uppercased.
func Parse(faces ...string) (Board, error) {
	var b Board
	if len(faces) != Cells {
		return b, errors.New("board: need exactly 16 faces")
	}
	for i, f := range faces {
		f = strings.ToUpper(strings.TrimSpace(f))
		if f == "" || len(f) > 2 {
			return b, errors.New("board: faces must be 1 or 2 letters")
		}
		b[i/Size][i%Size] = f
	}
	return b, nil
}

// Generator produces random boards from Dice.
type Generator struct {
	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// NewGenerator returns a Generator drawing from rng. A nil rng gets a
// randomly seeded PCG source.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{rng: rng}
}

// Generate shakes and rolls a fresh board.
func (g *Generator) Generate() Board {
	b, _ := g.roll()
	return b
}

// roll returns the board plus, for each cell, the index into Dice of the
// die that produced it.
func (g *Generator) roll() (Board, [Cells]int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var order [Cells]int
	for i := range order {
		order[i] = i
	}
	g.rng.Shuffle(Cells, func(i, j int) { order[i], order[j] = order[j], order[i] })

	var b Board
	for i, d := range order {
		face := Dice[d][g.rng.IntN(len(Dice[d]))]
		b[i/Size][i%Size] = strings.ToUpper(face)
	}
	return b, order
}
