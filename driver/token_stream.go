package driver

import "github.com/dclee/mousecat/spec"

// Token is one lexical unit of a MOUSEYCAT program. Row and Col are 1-based.
type Token struct {
	Term spec.Terminal
	Text string
	Row  int
	Col  int
}

// TokenStream supplies tokens one at a time. The stream must end with a
// token whose Term is spec.TermEOF; the parser pulls at most one token
// beyond the input it has consumed.
type TokenStream interface {
	Next() (*Token, error)
}
