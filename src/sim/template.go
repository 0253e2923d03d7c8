package sim

import (
	"sort"

	"gamelife/src/life"
)

//Template is a named built-in seeding pattern, an alternative to loading a
//pattern file
type Template struct {
	Name        string
	Descr       string
	Coordinates []life.Coord
}

//Spec converts the template to a parsed-pattern equivalent, inferring the
//bounding box the same way the file parser does
func (t Template) Spec() life.PatternSpec {
	maxRow, maxCol := 0, 0
	for _, c := range t.Coordinates {
		if c.Row > maxRow {
			maxRow = c.Row
		}
		if c.Col > maxCol {
			maxCol = c.Col
		}
	}
	return life.PatternSpec{Rows: maxRow + 1, Cols: maxCol + 1, Live: t.Coordinates}
}

//Templates holds the built-in seeding templates, keyed by name
var Templates = map[string]Template{
	"blinker": {
		Name:  "blinker",
		Descr: "period-2 oscillator, vertical bar of three",
		Coordinates: []life.Coord{
			{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1},
		},
	},
	"toad": {
		Name:  "toad",
		Descr: "period-2 oscillator of six cells",
		Coordinates: []life.Coord{
			{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3},
			{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
		},
	},
	"block": {
		Name:  "block",
		Descr: "stable 2x2 still life",
		Coordinates: []life.Coord{
			{Row: 0, Col: 0}, {Row: 0, Col: 1},
			{Row: 1, Col: 0}, {Row: 1, Col: 1},
		},
	},
	"glider": {
		Name:  "glider",
		Descr: "the smallest spaceship, travels diagonally",
		Coordinates: []life.Coord{
			{Row: 0, Col: 1},
			{Row: 1, Col: 2},
			{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
		},
	},
}

//TemplateNames returns the built-in template names, sorted
func TemplateNames() []string {
	names := make([]string, 0, len(Templates))
	for name := range Templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
