package spec

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	verr "github.com/dclee/mousecat/error"
)

func TestLoadGrammar(t *testing.T) {
	g, err := LoadGrammar()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.StateCount() != 38 {
		t.Fatalf("unexpected state count: want: 38, got: %v", g.StateCount())
	}
	if g.InitialState() != 0 {
		t.Fatalf("unexpected initial state: want: 0, got: %v", g.InitialState())
	}

	// A program can only start with SIZE.
	if act := g.Action(g.InitialState(), TermSize); act.Type != ActionTypeShift {
		t.Fatalf("the initial state must shift on SIZE; got: %v", act)
	}
	for term := Terminal(0); term < TerminalCount; term++ {
		if term == TermSize {
			continue
		}
		if act := g.Action(g.InitialState(), term); act.Type != ActionTypeError {
			t.Fatalf("the initial state must error on %v; got: %v", term, act)
		}
	}

	// Exactly one cell accepts, and it accepts on EOF.
	accs := 0
	for state := 0; state < g.StateCount(); state++ {
		for term := Terminal(0); term < TerminalCount; term++ {
			if g.Action(state, term).Type != ActionTypeAccept {
				continue
			}
			accs++
			if term != TermEOF {
				t.Fatalf("state %v accepts on %v, not EOF", state, term)
			}
		}
	}
	if accs != 1 {
		t.Fatalf("unexpected number of accept cells: want: 1, got: %v", accs)
	}

	// The goto for the start symbol leads to the accepting state.
	target, ok := g.GoTo(g.InitialState(), NTProgram)
	if !ok {
		t.Fatalf("missing goto on %v from the initial state", NTProgram)
	}
	if act := g.Action(target, TermEOF); act.Type != ActionTypeAccept {
		t.Fatalf("state %v must accept on EOF; got: %v", target, act)
	}
}

func TestLoadGrammar_ruleTable(t *testing.T) {
	g, err := LoadGrammar()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for num := 1; num <= NumRules; num++ {
		r := g.Rule(num)
		if r.RHSLen < 1 {
			t.Fatalf("rule %v has no RHS", num)
		}
		// The production text spells out exactly RHSLen symbols.
		lhsAndRHS := strings.Split(r.Production, " -> ")
		if len(lhsAndRHS) != 2 {
			t.Fatalf("rule %v has a malformed production: %v", num, r.Production)
		}
		if lhsAndRHS[0] != r.LHS.String() {
			t.Fatalf("rule %v: unexpected LHS: want: %v, got: %v", num, r.LHS, lhsAndRHS[0])
		}
		if rhs := strings.Fields(lhsAndRHS[1]); len(rhs) != r.RHSLen {
			t.Fatalf("rule %v: RHS length %v doesn't match its production %v", num, r.RHSLen, r.Production)
		}
	}
}

func TestLoadGrammar_malformedResource(t *testing.T) {
	termHeader := "state&" + strings.Join(terminalNames, "&")
	ntHeader := "state&" + strings.Join(nonTerminalNames, "&")
	actionRow := func(label string, cells ...string) string {
		row := make([]string, TerminalCount)
		copy(row, cells)
		return label + "&" + strings.Join(row, "&")
	}
	gotoRow := func(label string, cells ...string) string {
		row := make([]string, NonTerminalCount)
		copy(row, cells)
		return label + "&" + strings.Join(row, "&")
	}

	tests := []struct {
		caption string
		lines   []string
		wantErr error
	}{
		{
			caption: "well-formed single state",
			lines:   []string{termHeader, actionRow("0", "acc"), ntHeader, gotoRow("0")},
		},
		{
			caption: "missing first header",
			lines:   []string{actionRow("0", "acc"), ntHeader, gotoRow("0")},
			wantErr: errMissingHeader,
		},
		{
			caption: "missing goto section",
			lines:   []string{termHeader, actionRow("0", "acc")},
			wantErr: errMissingHeader,
		},
		{
			caption: "header with an unknown symbol",
			lines:   []string{strings.Replace(termHeader, "SIZE", "WIDTH", 1), actionRow("0", "acc"), ntHeader, gotoRow("0")},
			wantErr: errWrongHeader,
		},
		{
			caption: "mismatched section heights",
			lines:   []string{termHeader, actionRow("0", "acc"), ntHeader, gotoRow("0"), gotoRow("1")},
			wantErr: errWrongRowCount,
		},
		{
			caption: "row with too few cells",
			lines:   []string{termHeader, "0&acc", ntHeader, gotoRow("0")},
			wantErr: errWrongCellCount,
		},
		{
			caption: "row label out of order",
			lines:   []string{termHeader, actionRow("7", "acc"), ntHeader, gotoRow("0")},
			wantErr: errWrongRowLabel,
		},
		{
			caption: "unparsable action code",
			lines:   []string{termHeader, actionRow("0", "x1"), ntHeader, gotoRow("0")},
			wantErr: errInvalidAction,
		},
		{
			caption: "shift without a state number",
			lines:   []string{termHeader, actionRow("0", "s"), ntHeader, gotoRow("0")},
			wantErr: errInvalidAction,
		},
		{
			caption: "shift to a state that doesn't exist",
			lines:   []string{termHeader, actionRow("0", "s9"), ntHeader, gotoRow("0")},
			wantErr: errStateOutOfRange,
		},
		{
			caption: "reduce by a rule that doesn't exist",
			lines:   []string{termHeader, actionRow("0", "r99"), ntHeader, gotoRow("0")},
			wantErr: errRuleOutOfRange,
		},
		{
			caption: "goto cell that isn't a number",
			lines:   []string{termHeader, actionRow("0", "acc"), ntHeader, gotoRow("0", "s1")},
			wantErr: errInvalidGoTo,
		},
		{
			caption: "goto to a state that doesn't exist",
			lines:   []string{termHeader, actionRow("0", "acc"), ntHeader, gotoRow("0", "9")},
			wantErr: errStateOutOfRange,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			_, err := loadGrammar("test", strings.Join(tt.lines, "\n")+"\n")
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("an error must occur")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("unexpected error: want: %v, got: %v", tt.wantErr, err)
			}
			var specErr *verr.SpecError
			if !errors.As(err, &specErr) {
				t.Fatalf("an error must be a SpecError: %v", err)
			}
		})
	}
}

func TestDecodeAction(t *testing.T) {
	tests := []struct {
		cell    string
		want    Action
		wantErr bool
	}{
		{cell: "", want: Action{Type: ActionTypeError}},
		{cell: "err", want: Action{Type: ActionTypeError}},
		{cell: "acc", want: Action{Type: ActionTypeAccept}},
		{cell: "s12", want: Action{Type: ActionTypeShift, Num: 12}},
		{cell: "r4", want: Action{Type: ActionTypeReduce, Num: 4}},
		{cell: "s-1", wantErr: true},
		{cell: "r", wantErr: true},
		{cell: "accept", wantErr: true},
		{cell: "12", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%#v", tt.cell), func(t *testing.T) {
			act, err := decodeAction(tt.cell)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("an error must occur")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if act != tt.want {
				t.Fatalf("unexpected action: want: %v, got: %v", tt.want, act)
			}
		})
	}
}
