package ljson

import "strconv"

// A LineCol describes a 1-based line and column position in source text,
// matching the diagnostic format the parser emits ("line <n>, col <n>").
type LineCol struct {
	Line   int
	Column int
}

func (lc LineCol) String() string {
	return "line " + strconv.Itoa(lc.Line) + ", col " + strconv.Itoa(lc.Column)
}
