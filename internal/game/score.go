package game

import "unicode/utf8"

// Score returns the points for a word of the given spelling. Only length
// matters; "QU" counts as two letters.
//
//	<3 → 0, 3–4 → 1, 5 → 2, 6 → 3, 7 → 5, ≥8 → 11
func Score(word string) int {
	switch n := utf8.RuneCountInString(word); {
	case n < 3:
		return 0
	case n <= 4:
		return 1
	case n == 5:
		return 2
	case n == 6:
		return 3
	case n == 7:
		return 5
	default:
		return 11
	}
}
