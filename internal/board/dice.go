// apps/go-server/internal/board/dice.go
//
// The fixed set of sixteen letter dice used to populate a board.
// Faces are stored as printed on the physical cube ("Qu" keeps its
// lowercase u); Board cells are uppercased when rolled.

package board

import "strings"

// Die is one six-faced letter cube.
type Die [6]string

// Dice is the classic 4x4 set. Exactly one face across the set is the
// two-letter "Qu".
var Dice = [Cells]Die{
	{"A", "A", "E", "E", "G", "N"},
	{"E", "L", "R", "T", "T", "Y"},
	{"A", "O", "O", "T", "T", "W"},
	{"A", "B", "B", "J", "O", "O"},
	{"E", "H", "R", "T", "V", "W"},
	{"C", "I", "M", "O", "T", "U"},
	{"D", "I", "S", "T", "T", "Y"},
	{"E", "I", "O", "S", "S", "T"},
	{"D", "E", "L", "R", "V", "Y"},
	{"A", "C", "H", "O", "P", "S"},
	{"H", "I", "M", "N", "Qu", "U"},
	{"E", "E", "I", "N", "S", "U"},
	{"E", "E", "G", "H", "N", "W"},
	{"A", "F", "F", "K", "P", "S"},
	{"H", "L", "N", "N", "R", "Z"},
	{"D", "E", "I", "L", "R", "X"},
}

// Has reports whether face (any case) is printed on d.
func (d Die) Has(face string) bool {
	for _, f := range d {
		if strings.EqualFold(f, face) {
			return true
		}
	}
	return false
}
