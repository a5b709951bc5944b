package driver

import (
	"fmt"
	"io"

	"github.com/dclee/mousecat/ast"
	"github.com/dclee/mousecat/spec"
)

type ParserOption func(p *Parser) error

// DumpStacks makes the parser write its symbol stack to w after every shift
// and reduction. This is a debugging aid for the grammar tables.
func DumpStacks(w io.Writer) ParserOption {
	return func(p *Parser) error {
		p.debug = w
		return nil
	}
}

// frame is one symbol/state pair of the symbol stack. The bottom frame
// holds the initial state and no symbol.
type frame struct {
	symbol string
	state  int
}

// Parser drives the LR automaton over one token stream. A Parser may be
// reused for sequential parses, but a single instance must not run
// concurrent parses; the grammar tables it reads are safe to share.
type Parser struct {
	gram  *spec.GrammarTables
	ts    TokenStream
	stack []frame
	sem   semStack
	trace []int
	debug io.Writer
}

func NewParser(gram *spec.GrammarTables, ts TokenStream, opts ...ParserOption) (*Parser, error) {
	p := &Parser{
		gram: gram,
		ts:   ts,
	}
	for _, opt := range opts {
		err := opt(p)
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Parse consumes the token stream and returns the program's syntax tree.
// It fails with a ParseError when the stream is not a sentence of the
// grammar; no partial tree is returned.
func (p *Parser) Parse() (*ast.Program, error) {
	p.reset()
	p.push("", p.gram.InitialState())
	p.dumpStack()

	tok, err := p.nextToken()
	if err != nil {
		return nil, err
	}

	for {
		act := p.gram.Action(p.top(), tok.Term)
		switch act.Type {
		case spec.ActionTypeShift:
			p.push(tok.Term.String(), act.Num)
			p.dumpStack()

			tok, err = p.nextToken()
			if err != nil {
				return nil, err
			}
		case spec.ActionTypeReduce:
			err := p.reduce(act.Num)
			if err != nil {
				return nil, err
			}
		case spec.ActionTypeAccept:
			// The table only accepts on end of input, but a mismatched
			// table could accept a truncated prefix; re-check here.
			if tok.Term != spec.TermEOF {
				return nil, &ParseError{
					Row:     tok.Row,
					Col:     tok.Col,
					Lexeme:  tok.Text,
					Message: "input continues past the program",
				}
			}
			return p.accept()
		default:
			perr := &ParseError{
				Row:     tok.Row,
				Col:     tok.Col,
				Lexeme:  tok.Text,
				Message: "unexpected token",
			}
			if tok.Term == spec.TermEOF {
				perr.Message = "unexpected end of input"
			}
			return nil, perr
		}
	}
}

// reduce applies one reduction: the semantic action first, then the stack
// bookkeeping and the goto transition.
func (p *Parser) reduce(rule int) error {
	applyReduction(rule, &p.sem)
	p.trace = append(p.trace, rule)

	r := p.gram.Rule(rule)
	p.pop(r.RHSLen)

	target, ok := p.gram.GoTo(p.top(), r.LHS)
	if !ok {
		// The grammar guarantees a goto entry for every reachable
		// reduction, so a miss means the tables are corrupt rather than
		// the input being invalid.
		return fmt.Errorf("grammar tables are corrupt: no goto from state %v on %v", p.top(), r.LHS)
	}
	p.push(r.LHS.String(), target)

	if p.debug != nil {
		fmt.Fprintf(p.debug, "REDUCE OP %v APPLIED\n", rule)
		p.dumpStack()
	}
	return nil
}

func (p *Parser) accept() (*ast.Program, error) {
	if p.sem.depth() != 1 {
		return nil, fmt.Errorf("grammar tables are corrupt: %v fragments left after accepting", p.sem.depth())
	}
	root, ok := p.sem.pop().(*ast.Program)
	if !ok {
		return nil, fmt.Errorf("grammar tables are corrupt: the parse result is not a program")
	}
	return root, nil
}

// nextToken pulls the next token and pushes a leaf fragment when the token
// carries a semantic value. Keywords and punctuation only drive transitions
// and never reach the fragment stack.
func (p *Parser) nextToken() (*Token, error) {
	tok, err := p.ts.Next()
	if err != nil {
		return nil, err
	}
	err = p.sem.pushLeaf(tok)
	if err != nil {
		return nil, err
	}
	return tok, nil
}

// Derivation returns the productions applied by the last successful parse
// in reverse application order, which reads as the rightmost derivation of
// the program. It is a diagnostic aid only.
func (p *Parser) Derivation() []string {
	prods := make([]string, len(p.trace))
	for i, rule := range p.trace {
		prods[len(p.trace)-1-i] = p.gram.Rule(rule).Production
	}
	return prods
}

func (p *Parser) reset() {
	p.stack = p.stack[:0]
	p.sem.reset()
	p.trace = p.trace[:0]
}

func (p *Parser) top() int {
	return p.stack[len(p.stack)-1].state
}

func (p *Parser) push(symbol string, state int) {
	p.stack = append(p.stack, frame{
		symbol: symbol,
		state:  state,
	})
}

func (p *Parser) pop(n int) {
	p.stack = p.stack[:len(p.stack)-n]
}

func (p *Parser) dumpStack() {
	if p.debug == nil {
		return
	}
	for _, f := range p.stack {
		if f.symbol != "" {
			fmt.Fprintf(p.debug, "%v ", f.symbol)
		}
		fmt.Fprintf(p.debug, "%v ", f.state)
	}
	fmt.Fprintln(p.debug)
}
