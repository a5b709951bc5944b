package driver

import (
	"strconv"

	"github.com/dclee/mousecat/ast"
	"github.com/dclee/mousecat/spec"
)

// semStack holds the partially built tree fragments. Each valued token
// pushes one leaf, and each reduction rewrites the top of the stack.
type semStack struct {
	frames []ast.Node
}

func (s *semStack) push(n ast.Node) {
	s.frames = append(s.frames, n)
}

func (s *semStack) pop() ast.Node {
	n := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return n
}

func (s *semStack) popInt() *ast.IntLit {
	return s.pop().(*ast.IntLit)
}

func (s *semStack) popVar() *ast.Var {
	return s.pop().(*ast.Var)
}

func (s *semStack) popDir() *ast.Dir {
	return s.pop().(*ast.Dir)
}

func (s *semStack) depth() int {
	return len(s.frames)
}

func (s *semStack) reset() {
	s.frames = s.frames[:0]
}

// pushLeaf pushes a leaf fragment for a valued token and does nothing for
// keywords, punctuation, and EOF.
func (s *semStack) pushLeaf(tok *Token) error {
	switch tok.Term {
	case spec.TermInteger:
		v, err := strconv.Atoi(tok.Text)
		if err != nil {
			return &ParseError{
				Row:     tok.Row,
				Col:     tok.Col,
				Lexeme:  tok.Text,
				Message: "integer literal out of range",
			}
		}
		s.push(&ast.IntLit{
			Value: v,
			Row:   tok.Row,
		})
	case spec.TermVariable:
		s.push(&ast.Var{
			Name: tok.Text,
			Row:  tok.Row,
		})
	case spec.TermNorth:
		s.push(&ast.Dir{Heading: ast.North, Row: tok.Row})
	case spec.TermSouth:
		s.push(&ast.Dir{Heading: ast.South, Row: tok.Row})
	case spec.TermEast:
		s.push(&ast.Dir{Heading: ast.East, Row: tok.Row})
	case spec.TermWest:
		s.push(&ast.Dir{Heading: ast.West, Row: tok.Row})
	}
	return nil
}

// applyReduction runs the semantic action for a rule against the fragment
// stack. Fragments pop in reverse of their order in the production, and
// only the RHS positions that pushed a leaf or a composite are consumed;
// keyword and punctuation positions were never pushed. Rules whose action
// is the identity (a direction or a list closing with its semicolon) leave
// the stack untouched.
func applyReduction(rule int, s *semStack) {
	switch rule {
	case 1: // _PROGRAM -> SIZE INTEGER INTEGER BEGIN _LIST HALT
		list := s.pop()
		h := s.popInt()
		w := s.popInt()
		s.push(&ast.Program{
			Width:      w,
			Height:     h,
			Statements: list,
		})
	case 3: // _LIST -> _LIST _STATEMENT SEMICOLON
		right := s.pop()
		left := s.pop()
		s.push(&ast.Sequence{
			Left:  left,
			Right: right,
		})
	case 4: // _STATEMENT -> CAT VARIABLE INTEGER INTEGER _DIRECTION
		dir := s.popDir()
		y := s.popInt()
		x := s.popInt()
		name := s.popVar()
		s.push(&ast.Cat{
			Name:   name,
			X:      x,
			Y:      y,
			Facing: dir,
		})
	case 5: // _STATEMENT -> MOUSE VARIABLE INTEGER INTEGER _DIRECTION
		dir := s.popDir()
		y := s.popInt()
		x := s.popInt()
		name := s.popVar()
		s.push(&ast.Mouse{
			Name:   name,
			X:      x,
			Y:      y,
			Facing: dir,
		})
	case 6: // _STATEMENT -> HOLE INTEGER INTEGER
		y := s.popInt()
		x := s.popInt()
		s.push(&ast.Hole{
			X: x,
			Y: y,
		})
	case 7: // _STATEMENT -> MOVE VARIABLE
		name := s.popVar()
		// The omitted distance defaults to 1. The default is substituted
		// here, not by the lexer.
		s.push(&ast.Move{
			Name:     name,
			Distance: &ast.IntLit{Value: 1},
		})
	case 8: // _STATEMENT -> MOVE VARIABLE INTEGER
		dist := s.popInt()
		name := s.popVar()
		s.push(&ast.Move{
			Name:     name,
			Distance: dist,
		})
	case 9: // _STATEMENT -> CLOCKWISE VARIABLE
		name := s.popVar()
		s.push(&ast.Clockwise{
			Name: name,
		})
	case 10: // _STATEMENT -> REPEAT INTEGER _LIST END
		body := s.pop()
		count := s.popInt()
		s.push(&ast.Repeat{
			Count: count,
			Body:  body,
		})
	}
}
