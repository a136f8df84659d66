// apps/go-server/internal/words/words.go
//
// Dictionary lookup for the game engine.
//
// Responsibilities:
//   - Define the Dictionary interface the game session depends on.
//   - Load an English word list from a file or the embedded default.
//   - Keep the list as an in-memory set for O(1) case-insensitive lookups.
//
// Loading rules:
//   • One word per line; blank lines and "#" comments are skipped.
//   • Words are trimmed and lowercased.
//   • Entries containing anything but letters a–z are dropped.
//
// A Set is read-only after Load and safe for concurrent readers.

package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robalobadob/boggle/apps/go-server/assets"
)

// Dictionary answers membership queries for candidate words.
type Dictionary interface {
	Contains(word string) bool
}

// Set is an immutable in-memory word set.
type Set struct {
	m map[string]struct{}
}

// NewSet builds a Set from list, applying the same normalisation as Load.
func NewSet(list ...string) *Set {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		if w, ok := normalize(w); ok {
			m[w] = struct{}{}
		}
	}
	return &Set{m: m}
}

// Contains reports whether word is in the set, ignoring case and
// surrounding whitespace.
func (s *Set) Contains(word string) bool {
	_, ok := s.m[strings.ToLower(strings.TrimSpace(word))]
	return ok
}

// Len returns the number of distinct words.
func (s *Set) Len() int { return len(s.m) }

// Load reads the word list at path, or the embedded default when path is
// empty. It fails if the resulting set is empty.
func Load(path string) (*Set, error) {
	var (
		list []string
		err  error
	)
	if path == "" {
		list, err = assets.WordList()
	} else {
		list, err = readWordFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("words: load: %w", err)
	}
	s := NewSet(list...)
	if s.Len() == 0 {
		return nil, fmt.Errorf("words: list is empty")
	}
	return s, nil
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readLines(f)
}

func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}

// normalize lowercases w and rejects anything that is not purely a–z.
func normalize(w string) (string, bool) {
	w = strings.ToLower(strings.TrimSpace(w))
	if w == "" {
		return "", false
	}
	for _, r := range w {
		if r < 'a' || r > 'z' {
			return "", false
		}
	}
	return w, true
}
