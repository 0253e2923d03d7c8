package sim

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"

	"gamelife/src/life"
)

//Emitter receives the board once per captured generation.
//Generation 0 is the initial state, before any evolution.
type Emitter interface {
	Emit(generation int, b *life.Board) error
}

//SnapshotEmitter writes one snapshot file per generation into a log
//directory. File names carry the pattern base name, the rule and a run
//timestamp so consecutive runs never collide.
type SnapshotEmitter struct {
	LogDir    string
	BaseName  string
	Rule      string
	timestamp string
}

//NewSnapshotEmitter creates a snapshot emitter for one run.
//source is the pattern file path or template name the run was seeded from.
func NewSnapshotEmitter(logDir string, source string, rule string) *SnapshotEmitter {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return &SnapshotEmitter{
		LogDir:    logDir,
		BaseName:  base,
		Rule:      rule,
		timestamp: time.Now().Format("20060102_150405"),
	}
}

func (e *SnapshotEmitter) Emit(generation int, b *life.Board) error {
	name := fmt.Sprintf("%s_%s_gen%04d_%s.txt", e.BaseName, e.Rule, generation, e.timestamp)
	return b.SaveSnapshot(filepath.Join(e.LogDir, name))
}

//ConsoleEmitter prints each generation to stdout with colored cells,
//plus a progress line every tenth generation
type ConsoleEmitter struct {
	Quiet      bool //suppress the frames, keep the progress lines
	liveFiller string
	deadFiller string
}

func NewConsoleEmitter() *ConsoleEmitter {
	return &ConsoleEmitter{
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
	}
}

func (e *ConsoleEmitter) Emit(generation int, b *life.Board) error {
	if e.Quiet {
		if generation%10 == 0 {
			fmt.Printf("  generations done: %v, live cells: %v\n", generation, b.LiveCells())
		}
		return nil
	}

	var out strings.Builder
	out.WriteString(fmt.Sprintf("%s %d | %s %d\n",
		aurora.Colorize("Generation:", aurora.GreenFg).String(), generation,
		aurora.Colorize("Live cells:", aurora.GreenFg).String(), b.LiveCells()))
	for y := range b.Grid {
		for x := range b.Grid[y] {
			if b.Grid[y][x] == life.Alive {
				out.WriteString(e.liveFiller)
			} else {
				out.WriteString(e.deadFiller)
			}
		}
		out.WriteByte('\n')
	}
	fmt.Print(out.String())
	fmt.Println()
	return nil
}
