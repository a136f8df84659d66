package board

import (
	"math/rand/v2"
	"strings"
	"testing"
)

func TestDiceHaveOneQu(t *testing.T) {
	qu := 0
	for _, d := range Dice {
		for _, f := range d {
			if f == "" || len(f) > 2 {
				t.Fatalf("bad face %q", f)
			}
			if len(f) == 2 {
				if f != "Qu" {
					t.Fatalf("unexpected two-letter face %q", f)
				}
				qu++
			}
		}
	}
	if qu != 1 {
		t.Fatalf("expected exactly one Qu face, got %d", qu)
	}
}

func TestGenerate_FaceProvenance(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewPCG(1, 2)))
	for n := 0; n < 200; n++ {
		b, order := g.roll()

		var seen [Cells]bool
		for i, d := range order {
			if seen[d] {
				t.Fatalf("die %d used twice", d)
			}
			seen[d] = true

			face := b[i/Size][i%Size]
			if face != strings.ToUpper(face) {
				t.Fatalf("cell %d not uppercase: %q", i, face)
			}
			if !Dice[d].Has(face) {
				t.Fatalf("cell %d face %q not on die %d %v", i, face, d, Dice[d])
			}
		}
	}
}

func TestGenerate_SeededIsDeterministic(t *testing.T) {
	a := NewGenerator(rand.New(rand.NewPCG(42, 7))).Generate()
	b := NewGenerator(rand.New(rand.NewPCG(42, 7))).Generate()
	if a != b {
		t.Fatalf("same seed produced different boards:\n%s\n%s", a, b)
	}
}

func TestGenerate_NilSource(t *testing.T) {
	b := NewGenerator(nil).Generate()
	for r := range b {
		for c := range b[r] {
			if b[r][c] == "" {
				t.Fatalf("empty cell at %d,%d", r, c)
			}
		}
	}
}

func TestParse(t *testing.T) {
	if _, err := Parse("a", "b"); err == nil {
		t.Fatalf("expected error for short input")
	}
	faces := strings.Fields("c a t s o g Qu e e e e e e e e e")
	b, err := Parse(faces...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b[1][2] != "QU" {
		t.Fatalf("expected QU at 1,2, got %q", b[1][2])
	}
	if !strings.Contains(b.String(), "Qu") {
		t.Fatalf("String should print Qu, got\n%s", b)
	}
}
