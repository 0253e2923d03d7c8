package life

import "testing"

var benchCells = []Coord{
	{Row: 1, Col: 1}, {Row: 1, Col: 2},
	{Row: 2, Col: 1}, {Row: 2, Col: 2},
	{Row: 3, Col: 3},
	{Row: 4, Col: 2},
	{Row: 4, Col: 3},
	{Row: 5, Col: 3},
}

func benchBoard(b *testing.B, rows, cols int) *Board {
	board, err := NewBoard(rows, cols)
	if err != nil {
		b.Fatalf("board: %v", err)
	}
	if err = board.Apply(PatternSpec{Rows: 6, Cols: 4, Live: benchCells}); err != nil {
		b.Fatalf("settle: %v", err)
	}
	return board
}

func benchmarkEvolve(b *testing.B, rows, cols int) {
	board := benchBoard(b, rows, cols)
	e := NewEngine(nil)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		next, err := e.Evolve(board.Grid, DefaultRule)
		if err != nil {
			b.Fatalf("evolve: %v", err)
		}
		board.Grid = next
	}
}

func BenchmarkEvolve40x15(b *testing.B)   { benchmarkEvolve(b, 15, 40) }
func BenchmarkEvolve200x100(b *testing.B) { benchmarkEvolve(b, 100, 200) }
