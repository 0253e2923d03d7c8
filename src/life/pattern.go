package life

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

//Coord is a 0-indexed (row, col) grid position
type Coord struct {
	Row int
	Col int
}

//PatternSpec is the parser's output: the tight bounding box of the live
//cells plus the live cells themselves, in file order. Duplicates are
//permitted and harmless. It is consumed immediately by Board.Apply.
type PatternSpec struct {
	Rows int
	Cols int
	Live []Coord
}

//Accepted coordinate lines look like: (1,2) *   or   ( 0 , 4 ) .
var coordLineRE = regexp.MustCompile(`^\(\s*(\d+)\s*,\s*(\d+)\s*\)\s+([*.])$`)

//ParsePatternFile parses the pattern file at path
func ParsePatternFile(path string) (PatternSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return PatternSpec{}, errors.Wrapf(ErrPatternParse, "pattern file not found: %s", path)
	}
	defer f.Close()
	return ParsePattern(f, path)
}

//ParsePattern reads coordinate lines from r and infers the pattern size.
//name identifies the source in error messages.
//
//Blank lines and lines starting with '#' are skipped. Every other line must
//match the coordinate grammar; '.' lines are validated but contribute no
//cell and never affect size inference.
func ParsePattern(r io.Reader, name string) (PatternSpec, error) {
	var (
		live   []Coord
		maxRow int
		maxCol int
	)

	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		m := coordLineRE.FindStringSubmatch(line)
		if m == nil {
			return PatternSpec{}, errors.Wrapf(ErrPatternParse,
				"malformed line %d in %s: %q", lineNo, name, line)
		}

		//digits only by the grammar, so Atoi cannot fail
		row, _ := strconv.Atoi(m[1])
		col, _ := strconv.Atoi(m[2])
		if m[3] == "*" {
			live = append(live, Coord{Row: row, Col: col})
			if row > maxRow {
				maxRow = row
			}
			if col > maxCol {
				maxCol = col
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return PatternSpec{}, err
	}

	//inferred size is the live-cell bounding box, 1x1 when there are none
	return PatternSpec{Rows: maxRow + 1, Cols: maxCol + 1, Live: live}, nil
}
