// Package ast defines the syntax tree for MOUSEYCAT programs. The node set
// is closed: nothing outside this package can satisfy Node. Nodes are built
// bottom-up by the parser and never mutated afterwards.
package ast

import "fmt"

type Node interface {
	node()
}

// Heading is a compass direction a cat or mouse faces.
type Heading int

const (
	North Heading = iota
	South
	East
	West
)

func (h Heading) String() string {
	switch h {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return fmt.Sprintf("heading(%d)", int(h))
}

// IntLit is an integer literal leaf. Row is 0 for literals the parser
// synthesizes, such as a defaulted move distance.
type IntLit struct {
	Value int
	Row   int
}

// Var is a variable name leaf naming a cat or a mouse.
type Var struct {
	Name string
	Row  int
}

// Dir is a direction leaf.
type Dir struct {
	Heading Heading
	Row     int
}

// Program is the root node: the grid dimensions and the statement list.
type Program struct {
	Width      *IntLit
	Height     *IntLit
	Statements Node
}

// Sequence chains two statement fragments; a statement list reduces to a
// left-leaning chain of Sequence nodes.
type Sequence struct {
	Left  Node
	Right Node
}

// Cat places a named cat on the grid.
type Cat struct {
	Name   *Var
	X      *IntLit
	Y      *IntLit
	Facing *Dir
}

// Mouse places a named mouse on the grid.
type Mouse struct {
	Name   *Var
	X      *IntLit
	Y      *IntLit
	Facing *Dir
}

// Hole places a hole on the grid.
type Hole struct {
	X *IntLit
	Y *IntLit
}

// Move advances a named animal. Distance is 1 when the source omits it.
type Move struct {
	Name     *Var
	Distance *IntLit
}

// Clockwise turns a named animal a quarter turn.
type Clockwise struct {
	Name *Var
}

// Repeat runs its body Count times.
type Repeat struct {
	Count *IntLit
	Body  Node
}

func (*IntLit) node() {}
func (*Var) node() {}
func (*Dir) node() {}
func (*Program) node() {}
func (*Sequence) node() {}
func (*Cat) node() {}
func (*Mouse) node() {}
func (*Hole) node() {}
func (*Move) node() {}
func (*Clockwise) node() {}
func (*Repeat) node() {}
