// apps/go-server/internal/board/path.go
//
// Path search: does a word trace a chain of adjacent, distinct cells?
//
// A path consumes whole faces only, so "QU" is matched as a unit and never
// split. Adjacency includes diagonals. The visited set lives for a single
// call and is unwound on backtrack, so a cell may appear on many candidate
// paths but at most once on any one of them.

package board

import "strings"

// Exists reports whether word can be traced on b. Matching is
// case-insensitive; the empty word never matches.
func Exists(b Board, word string) bool {
	_, ok := FindPath(b, word)
	return ok
}

// FindPath returns the first path spelling word, trying starting cells in
// row-major order and neighbours in a fixed order.
func FindPath(b Board, word string) ([]Position, bool) {
	word = strings.ToUpper(word)
	if word == "" {
		return nil, false
	}
	s := &search{board: b, word: word}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			start := Position{r, c}
			face := b.At(start)
			if face == "" || !strings.HasPrefix(word, face) {
				continue
			}
			if s.from(start, len(face)) {
				return s.path, true
			}
		}
	}
	return nil, false
}

type search struct {
	board   Board
	word    string
	visited [Size][Size]bool
	path    []Position
}

// from marks p as used, then tries to finish the word from index idx.
func (s *search) from(p Position, idx int) bool {
	s.visited[p.Row][p.Col] = true
	s.path = append(s.path, p)
	if idx == len(s.word) {
		return true
	}
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Position{p.Row + dr, p.Col + dc}
			if !n.InBounds() || s.visited[n.Row][n.Col] {
				continue
			}
			face := s.board.At(n)
			if face == "" || !strings.HasPrefix(s.word[idx:], face) {
				continue
			}
			if s.from(n, idx+len(face)) {
				return true
			}
		}
	}
	s.visited[p.Row][p.Col] = false
	s.path = s.path[:len(s.path)-1]
	return false
}
