package sim

import (
	"time"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"gamelife/src/life"
)

//MaxGenerations is the safety ceiling for one run, boundary-inclusive:
//requesting exactly MaxGenerations succeeds
const MaxGenerations = 10000

//Runner drives a batch simulation: board construction, pattern load and the
//generation loop, fanning each captured state out to the emitters
type Runner struct {
	config Config
	engine *life.Engine
}

//NewRunner creates a runner around a caller-owned rule registry.
//The registry must be fully populated before Run is called.
func NewRunner(config Config, rules *life.Registry) *Runner {
	return &Runner{config: config, engine: life.NewEngine(rules)}
}

//Seed loads the configured pattern file, or a built-in template when no
//pattern file is given, onto the board
func (r *Runner) Seed(b *life.Board) error {
	if r.config.Pattern != "" {
		return b.LoadPattern(r.config.Pattern)
	}
	tmpl, ok := Templates[r.config.Template]
	if !ok {
		return errors.Wrapf(life.ErrPatternParse, "unknown template: %s", r.config.Template)
	}
	return b.Apply(tmpl.Spec())
}

//Run executes the simulation: generations+1 captures in total, generation 0
//being the loaded pattern itself. The board's grid is replaced with the
//engine's output between captures, never after the final one.
func (r *Runner) Run(emitters ...Emitter) error {
	if r.config.Generations > MaxGenerations {
		return errors.Wrapf(life.ErrSimulationOverflow,
			"too many generations: %d (max %d)", r.config.Generations, MaxGenerations)
	}

	board, err := life.NewBoard(r.config.Rows, r.config.Cols)
	if err != nil {
		return err
	}
	if err = r.Seed(board); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"rule":        r.config.Rule,
		"generations": r.config.Generations,
		"size":        board.Rows * board.Cols,
	}).Info("simulation started")
	start := time.Now()

	for gen := 0; gen <= r.config.Generations; gen++ {
		for _, e := range emitters {
			if err = e.Emit(gen, board); err != nil {
				return err
			}
		}
		if gen == r.config.Generations {
			break
		}
		next, err := r.engine.Evolve(board.Grid, r.config.Rule)
		if err != nil {
			return err
		}
		board.Grid = next
		if r.config.Interval > 0 {
			time.Sleep(r.config.Interval)
		}
	}

	log.WithFields(log.Fields{
		"generations": r.config.Generations,
		"live":        board.LiveCells(),
		"elapsed":     time.Since(start).Round(time.Millisecond).String(),
	}).Info("simulation finished")
	return nil
}
