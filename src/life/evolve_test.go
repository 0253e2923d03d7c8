package life

import (
	"errors"
	"testing"
)

func gridOf(rows ...[]Cell) Grid {
	return Grid(rows)
}

func gridsEqual(a, b Grid) bool {
	if len(a) != len(b) {
		return false
	}
	for y := range a {
		if len(a[y]) != len(b[y]) {
			return false
		}
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				return false
			}
		}
	}
	return true
}

func TestBlinkerOscillation(t *testing.T) {
	e := NewEngine(nil)
	vertical := gridOf(
		[]Cell{0, 1, 0},
		[]Cell{0, 1, 0},
		[]Cell{0, 1, 0},
	)
	horizontal := gridOf(
		[]Cell{0, 0, 0},
		[]Cell{1, 1, 1},
		[]Cell{0, 0, 0},
	)

	step1, err := e.Evolve(vertical, "conway")
	if err != nil {
		t.Fatalf("evolve failed: %v", err)
	}
	if !gridsEqual(step1, horizontal) {
		t.Fatalf("after one step got %v, expected %v", step1, horizontal)
	}

	step2, err := e.Evolve(step1, "conway")
	if err != nil {
		t.Fatalf("evolve failed: %v", err)
	}
	//period-2 oscillator: two steps return to the original orientation
	if !gridsEqual(step2, vertical) {
		t.Fatalf("after two steps got %v, expected %v", step2, vertical)
	}
}

func TestDeadGridStaysDead(t *testing.T) {
	e := NewEngine(nil)
	for _, size := range [][2]int{{1, 1}, {4, 6}, {10, 3}} {
		g := NewGrid(size[0], size[1])
		next, err := e.Evolve(g, "conway")
		if err != nil {
			t.Fatalf("evolve failed: %v", err)
		}
		for y := range next {
			for x := range next[y] {
				if next[y][x] != Dead {
					t.Fatalf("spontaneous birth at (%d,%d) on a %dx%d grid", y, x, size[0], size[1])
				}
			}
		}
	}
}

func TestEvolveDoesNotMutateInput(t *testing.T) {
	e := NewEngine(nil)
	g := gridOf(
		[]Cell{0, 1, 0},
		[]Cell{0, 1, 0},
		[]Cell{0, 1, 0},
	)
	snapshot := gridOf(
		[]Cell{0, 1, 0},
		[]Cell{0, 1, 0},
		[]Cell{0, 1, 0},
	)

	next, err := e.Evolve(g, "conway")
	if err != nil {
		t.Fatalf("evolve failed: %v", err)
	}
	if !gridsEqual(g, snapshot) {
		t.Fatal("evolve mutated its input grid")
	}
	if &next[0][0] == &g[0][0] {
		t.Fatal("output aliases the input grid")
	}
}

func TestEvolveEmptyGrid(t *testing.T) {
	e := NewEngine(nil)
	next, err := e.Evolve(Grid{}, "conway")
	if err != nil {
		t.Fatalf("empty grid must not fail: %v", err)
	}
	if len(next) != 0 {
		t.Fatalf("empty grid evolved to %v", next)
	}
}

func TestEvolveUnknownRule(t *testing.T) {
	e := NewEngine(nil)
	_, err := e.Evolve(NewGrid(2, 2), "nonexistent")
	if !errors.Is(err, ErrUnknownRule) {
		t.Fatalf("expected unknown rule error, got %v", err)
	}
}

func TestEvolveBoundaryClipping(t *testing.T) {
	e := NewEngine(nil)
	//a corner block: every cell has exactly 3 neighbors, so it is stable.
	//With wraparound the count would differ, so this pins the clipped
	//topology.
	g := gridOf(
		[]Cell{1, 1, 0},
		[]Cell{1, 1, 0},
		[]Cell{0, 0, 0},
	)
	next, err := e.Evolve(g, "conway")
	if err != nil {
		t.Fatalf("evolve failed: %v", err)
	}
	if !gridsEqual(next, g) {
		t.Fatalf("corner block not stable: %v", next)
	}
}

func TestCountLiveNeighbors(t *testing.T) {
	g := gridOf(
		[]Cell{1, 1, 1},
		[]Cell{1, 1, 1},
		[]Cell{1, 1, 1},
	)
	cases := []struct {
		row, col, expected int
	}{
		{0, 0, 3}, //corner
		{0, 1, 5}, //edge
		{1, 1, 8}, //center
	}
	for _, c := range cases {
		if got := countLiveNeighbors(g, c.row, c.col); got != c.expected {
			t.Fatalf("neighbors(%d,%d) = %d, expected %d", c.row, c.col, got, c.expected)
		}
	}
}
