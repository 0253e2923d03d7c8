package life

//DefaultRule is the rule used when a caller does not pick one
const DefaultRule = "conway"

//Engine computes generation transitions using rules from a registry
type Engine struct {
	rules *Registry
}

//NewEngine creates an engine backed by the given registry.
//A nil registry gets a fresh default one (built-ins only).
func NewEngine(rules *Registry) *Engine {
	if rules == nil {
		rules = NewRegistry()
	}
	return &Engine{rules: rules}
}

//Rules returns the engine's registry
func (e *Engine) Rules() *Registry {
	return e.rules
}

//Evolve computes the next generation of g under the named rule.
//The input grid is never mutated; the result is a freshly allocated grid of
//identical dimensions, so every cell is evaluated against the same input
//snapshot (synchronous update). An empty grid evolves to an empty grid.
func (e *Engine) Evolve(g Grid, ruleName string) (Grid, error) {
	rule, err := e.rules.Get(ruleName)
	if err != nil {
		return nil, err
	}

	rows, cols := g.Dims()
	next := NewGrid(rows, cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			next[y][x] = rule.Apply(g[y][x], countLiveNeighbors(g, y, x))
		}
	}
	return next, nil
}

//countLiveNeighbors counts live cells in the 8-connected Moore neighborhood
//of (row, col). Coordinates outside the grid do not exist and do not count:
//the field is clipped at its boundaries, not toroidal.
func countLiveNeighbors(g Grid, row int, col int) int {
	rows, cols := g.Dims()
	live := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			//skip my position
			if dy == 0 && dx == 0 {
				continue
			}
			ny := row + dy
			nx := col + dx
			if ny < 0 || nx < 0 || ny >= rows || nx >= cols {
				continue
			}
			if g[ny][nx] == Alive {
				live++
			}
		}
	}
	return live
}
