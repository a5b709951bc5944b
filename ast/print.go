package ast

import (
	"fmt"
	"io"
)

// PrintTree writes a tree representation of node to w.
func PrintTree(w io.Writer, node Node) {
	printTree(w, node, "", "")
}

func printTree(w io.Writer, node Node, ruledLine string, childRuledLinePrefix string) {
	if node == nil {
		return
	}

	label, text, children := describe(node)
	if text != "" {
		fmt.Fprintf(w, "%v%v %#v\n", ruledLine, label, text)
	} else {
		fmt.Fprintf(w, "%v%v\n", ruledLine, label)
	}

	num := len(children)
	for i, child := range children {
		var line string
		if num > 1 && i < num-1 {
			line = "├─ "
		} else {
			line = "└─ "
		}

		var prefix string
		if i >= num-1 {
			prefix = "   "
		} else {
			prefix = "│  "
		}

		printTree(w, child, childRuledLinePrefix+line, childRuledLinePrefix+prefix)
	}
}

func describe(node Node) (label string, text string, children []Node) {
	switch n := node.(type) {
	case *IntLit:
		return "int", fmt.Sprintf("%v", n.Value), nil
	case *Var:
		return "var", n.Name, nil
	case *Dir:
		return "dir", n.Heading.String(), nil
	case *Program:
		return "program", "", []Node{n.Width, n.Height, n.Statements}
	case *Sequence:
		return "seq", "", []Node{n.Left, n.Right}
	case *Cat:
		return "cat", "", []Node{n.Name, n.X, n.Y, n.Facing}
	case *Mouse:
		return "mouse", "", []Node{n.Name, n.X, n.Y, n.Facing}
	case *Hole:
		return "hole", "", []Node{n.X, n.Y}
	case *Move:
		return "move", "", []Node{n.Name, n.Distance}
	case *Clockwise:
		return "clockwise", "", []Node{n.Name}
	case *Repeat:
		return "repeat", "", []Node{n.Count, n.Body}
	}
	return fmt.Sprintf("%T", node), "", nil
}
