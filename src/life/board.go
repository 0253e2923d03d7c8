package life

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

//Cell is the binary state of one grid position
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

//Grid is a rectangular field of cells, rows * cols, row-major
type Grid [][]Cell

//NewGrid allocates an all-dead grid backed by a single slice
func NewGrid(rows int, cols int) Grid {
	g := make(Grid, rows)
	b := make([]Cell, rows*cols)
	for i := range g {
		start := cols * i
		g[i] = b[start : start+cols : start+cols]
	}
	return g
}

//Dims returns the grid dimensions; an empty grid is 0x0
func (g Grid) Dims() (rows int, cols int) {
	rows = len(g)
	if rows > 0 {
		cols = len(g[0])
	}
	return
}

//Board owns a Grid with fixed declared dimensions.
//The grid is replaced wholesale each generation, never resized.
type Board struct {
	Rows int
	Cols int
	Grid Grid
}

//NewBoard creates a board of the given size with every cell dead
func NewBoard(rows int, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrGridSize, "invalid grid size: %dx%d", rows, cols)
	}
	return &Board{Rows: rows, Cols: cols, Grid: NewGrid(rows, cols)}, nil
}

//LoadPattern parses the pattern file and settles its live cells on the board.
//The load is all-or-nothing: the grid is untouched when the pattern does not
//fit or the file fails to parse.
func (b *Board) LoadPattern(path string) error {
	spec, err := ParsePatternFile(path)
	if err != nil {
		return err
	}
	return b.Apply(spec)
}

//Apply clears the board and settles the live cells of a parsed pattern.
//Fails before mutating anything when the pattern's inferred size exceeds the
//board's declared size. There is no truncation or resize.
func (b *Board) Apply(spec PatternSpec) error {
	if spec.Rows > b.Rows || spec.Cols > b.Cols {
		return errors.Wrapf(ErrGridSize,
			"pattern (%dx%d) does not fit into board %dx%d",
			spec.Rows, spec.Cols, b.Rows, b.Cols)
	}
	b.Clear()
	for _, c := range spec.Live {
		b.Grid[c.Row][c.Col] = Alive
	}
	return nil
}

//Clear kills every cell
func (b *Board) Clear() {
	for y := range b.Grid {
		for x := range b.Grid[y] {
			b.Grid[y][x] = Dead
		}
	}
}

//LiveCells calculates the count of live cells
func (b *Board) LiveCells() int {
	live := 0
	for y := range b.Grid {
		for x := range b.Grid[y] {
			if b.Grid[y][x] == Alive {
				live++
			}
		}
	}
	return live
}

//SaveSnapshot writes the grid as text to path, one row per line, '*' for
//alive and '.' for dead. Missing parent directories are created; an existing
//file is overwritten.
func (b *Board) SaveSnapshot(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = b.WriteSnapshot(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

//WriteSnapshot writes the snapshot text representation to w
func (b *Board) WriteSnapshot(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for y := range b.Grid {
		for x := range b.Grid[y] {
			sym := byte('.')
			if b.Grid[y][x] == Alive {
				sym = '*'
			}
			if err := bw.WriteByte(sym); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
