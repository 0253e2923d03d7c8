package sim

import (
	"github.com/pkg/errors"

	"gamelife/src/life"
)

//Session is the single-stepping facade the interactive terminal UI drives.
//It owns the board and tracks the generation counter; the UI serializes all
//access, the session itself holds no locks.
type Session struct {
	Board      *life.Board
	Rule       string
	engine     *life.Engine
	seed       life.PatternSpec
	generation int
}

//NewSession builds a session from the run config and a populated registry
func NewSession(config Config, rules *life.Registry) (*Session, error) {
	board, err := life.NewBoard(config.Rows, config.Cols)
	if err != nil {
		return nil, err
	}

	var seed life.PatternSpec
	if config.Pattern != "" {
		if seed, err = life.ParsePatternFile(config.Pattern); err != nil {
			return nil, err
		}
	} else {
		tmpl, ok := Templates[config.Template]
		if !ok {
			return nil, errors.Wrapf(life.ErrPatternParse, "unknown template: %s", config.Template)
		}
		seed = tmpl.Spec()
	}
	if err = board.Apply(seed); err != nil {
		return nil, err
	}

	return &Session{
		Board:  board,
		Rule:   config.Rule,
		engine: life.NewEngine(rules),
		seed:   seed,
	}, nil
}

//Step replaces the board's grid with the next generation
func (s *Session) Step() error {
	next, err := s.engine.Evolve(s.Board.Grid, s.Rule)
	if err != nil {
		return err
	}
	s.Board.Grid = next
	s.generation++
	return nil
}

//Reseed clears the board, settles the original pattern again and resets the
//generation counter
func (s *Session) Reseed() error {
	s.generation = 0
	return s.Board.Apply(s.seed)
}

//Clear kills all cells and resets the generation counter
func (s *Session) Clear() {
	s.Board.Clear()
	s.generation = 0
}

//Generation returns the number of steps taken since the last (re)seed
func (s *Session) Generation() int {
	return s.generation
}

//LiveCells returns the current live-cell count
func (s *Session) LiveCells() int {
	return s.Board.LiveCells()
}
