package game

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"", 0},
		{"AB", 0},
		{"CAT", 1},
		{"CATS", 1},
		{"QUITE", 2},
		{"TORRID", 3},
		{"BICYCLE", 5},
		{"ELEPHANT", 11},
		{"ELEPHANTS", 11},
	}
	for _, tt := range tests {
		if got := Score(tt.word); got != tt.want {
			t.Errorf("Score(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

func TestScoreMonotonic(t *testing.T) {
	prev := 0
	word := ""
	for n := 0; n <= 16; n++ {
		got := Score(word)
		if got < prev {
			t.Fatalf("score dropped at length %d: %d < %d", n, got, prev)
		}
		prev = got
		word += "A"
	}
}
