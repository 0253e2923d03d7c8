package life

import "github.com/pkg/errors"

//The domain error family. Every failure the engine can produce wraps one of
//these sentinels, so callers check with errors.Is and report a single line.
var (
	//ErrGridSize - non-positive board dimensions, or a pattern that does not fit the board
	ErrGridSize = errors.New("grid size error")
	//ErrPatternParse - missing pattern file or a malformed non-comment line
	ErrPatternParse = errors.New("pattern parse error")
	//ErrSimulationOverflow - requested generation count above the safety ceiling
	ErrSimulationOverflow = errors.New("simulation overflow")
	//ErrUnknownRule - rule name absent from the registry
	ErrUnknownRule = errors.New("unknown rule")
)

//IsGameError reports whether err belongs to the domain error family
func IsGameError(err error) bool {
	return errors.Is(err, ErrGridSize) ||
		errors.Is(err, ErrPatternParse) ||
		errors.Is(err, ErrSimulationOverflow) ||
		errors.Is(err, ErrUnknownRule)
}
