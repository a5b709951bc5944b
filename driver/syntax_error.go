package driver

import (
	"fmt"
	"strings"
)

// ParseError reports that the input is not a MOUSEYCAT program. It carries
// the position of the offending lexeme; Lexeme is empty when the error was
// detected at the end of the input.
type ParseError struct {
	Row     int
	Col     int
	Lexeme  string
	Message string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if e.Row != 0 {
		fmt.Fprintf(&b, "%v:%v: ", e.Row, e.Col)
	}
	b.WriteString("this is not a valid MOUSEYCAT program")
	if e.Message != "" {
		fmt.Fprintf(&b, ": %v", e.Message)
	}
	if e.Lexeme != "" {
		fmt.Fprintf(&b, ": '%v'", e.Lexeme)
	}
	return b.String()
}
