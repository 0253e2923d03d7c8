package life

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

//Rule decides the next state of a cell from its current state and the
//number of live cells in its Moore neighborhood (0..8)
type Rule interface {
	Apply(state Cell, liveNeighbors int) Cell
}

//RuleFunc adapts a plain function to the Rule interface
type RuleFunc func(state Cell, liveNeighbors int) Cell

func (f RuleFunc) Apply(state Cell, liveNeighbors int) Cell {
	return f(state, liveNeighbors)
}

//ConwayRule is the classic B3/S23 automaton: a dead cell with exactly 3
//live neighbors is born, a live cell with 2 or 3 survives
type ConwayRule struct{}

func (ConwayRule) Apply(state Cell, liveNeighbors int) Cell {
	if state == Alive {
		if liveNeighbors == 2 || liveNeighbors == 3 {
			return Alive
		}
		return Dead
	}
	if liveNeighbors == 3 {
		return Alive
	}
	return Dead
}

//HighLifeRule is the B36/S23 variant: same as Conway plus birth on 6
type HighLifeRule struct{}

func (HighLifeRule) Apply(state Cell, liveNeighbors int) Cell {
	if state == Alive {
		if liveNeighbors == 2 || liveNeighbors == 3 {
			return Alive
		}
		return Dead
	}
	if liveNeighbors == 3 || liveNeighbors == 6 {
		return Alive
	}
	return Dead
}

//the built-in rule set merged into every new registry
var builtinRules = map[string]Rule{
	"conway": ConwayRule{},
}

//Registry maps rule names to Rule implementations. It is an explicit value
//owned by the caller rather than process-wide state: the driver builds one,
//registers any extra rules and hands it to the engine before the simulation
//starts. There is no removal operation.
type Registry struct {
	rules map[string]Rule
}

//NewRegistry creates a registry populated with the built-in rules
func NewRegistry() *Registry {
	r := &Registry{rules: make(map[string]Rule, len(builtinRules))}
	for name, rule := range builtinRules {
		r.rules[name] = rule
	}
	return r
}

//Register inserts or replaces the rule under name.
//The engine never re-registers built-ins behind the caller's back, so an
//explicit override of "conway" sticks.
func (r *Registry) Register(name string, rule Rule) {
	r.rules[name] = rule
}

//Get returns the rule registered under name
func (r *Registry) Get(name string) (Rule, error) {
	rule, ok := r.rules[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownRule,
			"unknown rule set: %s, registered: %s", name, strings.Join(r.Names(), ", "))
	}
	return rule, nil
}

//Names returns the registered rule names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
