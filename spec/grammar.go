package spec

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	verr "github.com/dclee/mousecat/error"
)

// Terminal identifies a terminal symbol of the MOUSEYCAT grammar. The
// constant order matches the column order of the parse table resource.
type Terminal int

const (
	TermSize Terminal = iota
	TermInteger
	TermBegin
	TermHalt
	TermSemicolon
	TermCat
	TermVariable
	TermMouse
	TermHole
	TermMove
	TermClockwise
	TermRepeat
	TermEnd
	TermNorth
	TermSouth
	TermEast
	TermWest
	TermEOF
)

// TerminalCount is the number of terminal symbols, including EOF.
const TerminalCount = 18

var terminalNames = []string{
	"SIZE",
	"INTEGER",
	"BEGIN",
	"HALT",
	"SEMICOLON",
	"CAT",
	"VARIABLE",
	"MOUSE",
	"HOLE",
	"MOVE",
	"CLOCKWISE",
	"REPEAT",
	"END",
	"NORTH",
	"SOUTH",
	"EAST",
	"WEST",
	"EOF",
}

func (t Terminal) String() string {
	if t < 0 || int(t) >= len(terminalNames) {
		return fmt.Sprintf("terminal(%d)", int(t))
	}
	return terminalNames[t]
}

// NonTerminal identifies a nonterminal symbol. The constant order matches
// the column order of the goto section of the parse table resource.
type NonTerminal int

const (
	NTProgram NonTerminal = iota
	NTList
	NTStatement
	NTDirection
)

// NonTerminalCount is the number of nonterminal symbols.
const NonTerminalCount = 4

var nonTerminalNames = []string{
	"_PROGRAM",
	"_LIST",
	"_STATEMENT",
	"_DIRECTION",
}

func (n NonTerminal) String() string {
	if n < 0 || int(n) >= len(nonTerminalNames) {
		return fmt.Sprintf("nonterminal(%d)", int(n))
	}
	return nonTerminalNames[n]
}

type ActionType int

const (
	// ActionTypeError is the zero value so that absent cells decode to it.
	ActionTypeError ActionType = iota
	ActionTypeShift
	ActionTypeReduce
	ActionTypeAccept
)

// Action is a decoded parse table cell. Num is the target state of a shift
// or the rule number of a reduce, and 0 otherwise.
type Action struct {
	Type ActionType
	Num  int
}

// Rule describes one production of the grammar. Production is spelled out
// only for diagnostic output.
type Rule struct {
	RHSLen     int
	LHS        NonTerminal
	Production string
}

// NumRules is the number of productions, not counting the augmented start
// production. Rules are numbered 1..NumRules.
const NumRules = 14

// ruleTable is indexed by rule number; entry 0 is unused.
var ruleTable = [NumRules + 1]Rule{
	1:  {6, NTProgram, "_PROGRAM -> SIZE INTEGER INTEGER BEGIN _LIST HALT"},
	2:  {2, NTList, "_LIST -> _STATEMENT SEMICOLON"},
	3:  {3, NTList, "_LIST -> _LIST _STATEMENT SEMICOLON"},
	4:  {5, NTStatement, "_STATEMENT -> CAT VARIABLE INTEGER INTEGER _DIRECTION"},
	5:  {5, NTStatement, "_STATEMENT -> MOUSE VARIABLE INTEGER INTEGER _DIRECTION"},
	6:  {3, NTStatement, "_STATEMENT -> HOLE INTEGER INTEGER"},
	7:  {2, NTStatement, "_STATEMENT -> MOVE VARIABLE"},
	8:  {3, NTStatement, "_STATEMENT -> MOVE VARIABLE INTEGER"},
	9:  {2, NTStatement, "_STATEMENT -> CLOCKWISE VARIABLE"},
	10: {4, NTStatement, "_STATEMENT -> REPEAT INTEGER _LIST END"},
	11: {1, NTDirection, "_DIRECTION -> NORTH"},
	12: {1, NTDirection, "_DIRECTION -> SOUTH"},
	13: {1, NTDirection, "_DIRECTION -> EAST"},
	14: {1, NTDirection, "_DIRECTION -> WEST"},
}

// GrammarTables holds the decoded parse table and the rule table. A value
// is immutable after LoadGrammar returns it, so any number of parsers may
// share one without locking.
type GrammarTables struct {
	action     []Action
	goTo       []int
	stateCount int
}

//go:embed parsedata.txt
var parsedata string

const parsedataName = "parsedata.txt"

// LoadGrammar decodes the embedded parse table resource. The resource is
// trusted but still fully validated; a malformed resource is a fatal
// condition for the caller, never a per-parse error.
func LoadGrammar() (*GrammarTables, error) {
	return loadGrammar(parsedataName, parsedata)
}

func loadGrammar(name, data string) (*GrammarTables, error) {
	lines := strings.Split(strings.TrimRight(data, "\n"), "\n")

	// The resource is two sections of equal height: terminal action rows,
	// then goto rows. Each section is preceded by a header row naming its
	// columns. The split point is found by locating the second header.
	if len(lines) == 0 || !isHeader(lines[0]) {
		return nil, &verr.SpecError{Cause: errMissingHeader, Resource: name, Row: 1}
	}
	second := -1
	for i := 1; i < len(lines); i++ {
		if isHeader(lines[i]) {
			second = i
			break
		}
	}
	if second < 0 {
		return nil, &verr.SpecError{Cause: errMissingHeader, Resource: name, Row: len(lines)}
	}

	if err := checkHeader(name, lines[0], 1, terminalNames); err != nil {
		return nil, err
	}
	if err := checkHeader(name, lines[second], second+1, nonTerminalNames); err != nil {
		return nil, err
	}

	stateCount := second - 1
	gotoRows := lines[second+1:]
	if stateCount == 0 || len(gotoRows) != stateCount {
		return nil, &verr.SpecError{
			Cause:    errWrongRowCount,
			Resource: name,
			Detail:   fmt.Sprintf("%v action rows, %v goto rows", stateCount, len(gotoRows)),
			Row:      len(lines),
		}
	}

	g := &GrammarTables{
		action:     make([]Action, stateCount*TerminalCount),
		goTo:       make([]int, stateCount*NonTerminalCount),
		stateCount: stateCount,
	}

	for state, line := range lines[1:second] {
		row := state + 2
		cells, err := splitRow(name, line, row, state, TerminalCount)
		if err != nil {
			return nil, err
		}
		for col, cell := range cells {
			act, err := decodeAction(cell)
			if err != nil {
				return nil, &verr.SpecError{Cause: err, Resource: name, Detail: cell, Row: row}
			}
			g.action[state*TerminalCount+col] = act
		}
	}

	for state, line := range gotoRows {
		row := second + state + 2
		cells, err := splitRow(name, line, row, state, NonTerminalCount)
		if err != nil {
			return nil, err
		}
		for col, cell := range cells {
			target := -1
			if cell != "" {
				var err error
				target, err = strconv.Atoi(cell)
				if err != nil || target < 0 {
					return nil, &verr.SpecError{Cause: errInvalidGoTo, Resource: name, Detail: cell, Row: row}
				}
			}
			g.goTo[state*NonTerminalCount+col] = target
		}
	}

	if err := g.checkTargets(name); err != nil {
		return nil, err
	}
	for num := 1; num <= NumRules; num++ {
		if r := ruleTable[num]; r.RHSLen < 1 || r.Production == "" {
			return nil, fmt.Errorf("rule %v is malformed: %+v", num, r)
		}
	}

	return g, nil
}

func isHeader(line string) bool {
	return strings.HasPrefix(line, "state&")
}

func checkHeader(name, line string, row int, want []string) error {
	got := strings.Split(line, "&")[1:]
	if len(got) != len(want) {
		return &verr.SpecError{Cause: errWrongHeader, Resource: name, Detail: line, Row: row}
	}
	for i, s := range got {
		if s != want[i] {
			return &verr.SpecError{Cause: errWrongHeader, Resource: name, Detail: s, Row: row}
		}
	}
	return nil
}

func splitRow(name, line string, row, state, wantCells int) ([]string, error) {
	cells := strings.Split(line, "&")
	if len(cells) != wantCells+1 {
		return nil, &verr.SpecError{
			Cause:    errWrongCellCount,
			Resource: name,
			Detail:   fmt.Sprintf("%v cells", len(cells)-1),
			Row:      row,
		}
	}
	if label, err := strconv.Atoi(cells[0]); err != nil || label != state {
		return nil, &verr.SpecError{Cause: errWrongRowLabel, Resource: name, Detail: cells[0], Row: row}
	}
	return cells[1:], nil
}

// decodeAction turns a resource cell into a tagged Action. Decoding happens
// once at load time so lookups during a parse never touch the cell text.
func decodeAction(cell string) (Action, error) {
	switch {
	case cell == "" || cell == "err":
		return Action{Type: ActionTypeError}, nil
	case cell == "acc":
		return Action{Type: ActionTypeAccept}, nil
	case cell[0] == 's':
		n, err := strconv.Atoi(cell[1:])
		if err != nil || n < 0 {
			return Action{}, errInvalidAction
		}
		return Action{Type: ActionTypeShift, Num: n}, nil
	case cell[0] == 'r':
		n, err := strconv.Atoi(cell[1:])
		if err != nil || n < 0 {
			return Action{}, errInvalidAction
		}
		return Action{Type: ActionTypeReduce, Num: n}, nil
	default:
		return Action{}, errInvalidAction
	}
}

func (g *GrammarTables) checkTargets(name string) error {
	for _, act := range g.action {
		switch act.Type {
		case ActionTypeShift:
			if act.Num >= g.stateCount {
				return &verr.SpecError{Cause: errStateOutOfRange, Resource: name, Detail: fmt.Sprintf("s%v", act.Num)}
			}
		case ActionTypeReduce:
			if act.Num < 1 || act.Num > NumRules {
				return &verr.SpecError{Cause: errRuleOutOfRange, Resource: name, Detail: fmt.Sprintf("r%v", act.Num)}
			}
		}
	}
	for _, target := range g.goTo {
		if target >= g.stateCount {
			return &verr.SpecError{Cause: errStateOutOfRange, Resource: name, Detail: strconv.Itoa(target)}
		}
	}
	return nil
}

// InitialState is the automaton's start state.
func (g *GrammarTables) InitialState() int {
	return 0
}

func (g *GrammarTables) StateCount() int {
	return g.stateCount
}

// Action looks up the decoded action for a state and lookahead terminal.
func (g *GrammarTables) Action(state int, term Terminal) Action {
	return g.action[state*TerminalCount+int(term)]
}

// GoTo looks up the state entered after reducing to nt with the given state
// exposed at the top of the stack. ok is false for an empty goto cell.
func (g *GrammarTables) GoTo(state int, nt NonTerminal) (int, bool) {
	target := g.goTo[state*NonTerminalCount+int(nt)]
	if target < 0 {
		return 0, false
	}
	return target, true
}

// Rule returns the rule table entry for a rule number in 1..NumRules.
func (g *GrammarTables) Rule(num int) Rule {
	return ruleTable[num]
}
