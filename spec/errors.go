package spec

import "errors"

var (
	errMissingHeader   = errors.New("a table section must start with a header row")
	errWrongHeader     = errors.New("a header row doesn't match the grammar's symbols")
	errWrongRowCount   = errors.New("a table section has a wrong number of rows")
	errWrongCellCount  = errors.New("a row has a wrong number of cells")
	errWrongRowLabel   = errors.New("a row label must be the row's state number")
	errInvalidAction   = errors.New("an action cell must be s<N>, r<N>, acc, err, or empty")
	errInvalidGoTo     = errors.New("a goto cell must be a state number or empty")
	errStateOutOfRange = errors.New("a transition points at a state that doesn't exist")
	errRuleOutOfRange  = errors.New("a reduce action points at a rule that doesn't exist")
)
