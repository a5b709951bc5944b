package driver

import (
	"fmt"
	"io"
	"sync"

	mlcompiler "github.com/nihei9/maleeni/compiler"
	mldriver "github.com/nihei9/maleeni/driver"
	mlspec "github.com/nihei9/maleeni/spec"

	"github.com/dclee/mousecat/spec"
)

const skipKindName = "white_space"

// lexSpec describes the MOUSEYCAT lexemes. The keyword entries must precede
// the variable entry: when a lexeme matches both, the kind defined first
// wins. Maximal munch still makes a name like "moves" a variable.
var lexSpec = &mlspec.LexSpec{
	Name: "mousecat",
	Entries: []*mlspec.LexEntry{
		{Kind: skipKindName, Pattern: `[\u{0009}\u{000a}\u{000d}\u{0020}]+`},
		{Kind: "size", Pattern: `size`},
		{Kind: "begin", Pattern: `begin`},
		{Kind: "halt", Pattern: `halt`},
		{Kind: "cat", Pattern: `cat`},
		{Kind: "mouse", Pattern: `mouse`},
		{Kind: "hole", Pattern: `hole`},
		{Kind: "move", Pattern: `move`},
		{Kind: "clockwise", Pattern: `clockwise`},
		{Kind: "repeat", Pattern: `repeat`},
		{Kind: "end", Pattern: `end`},
		{Kind: "north", Pattern: `north`},
		{Kind: "south", Pattern: `south`},
		{Kind: "east", Pattern: `east`},
		{Kind: "west", Pattern: `west`},
		{Kind: "integer", Pattern: `[0-9]+`},
		{Kind: "variable", Pattern: `[A-Za-z][0-9A-Za-z]*`},
		{Kind: "semicolon", Pattern: `;`},
	},
}

var kindToTerm = map[string]spec.Terminal{
	"size":      spec.TermSize,
	"begin":     spec.TermBegin,
	"halt":      spec.TermHalt,
	"cat":       spec.TermCat,
	"mouse":     spec.TermMouse,
	"hole":      spec.TermHole,
	"move":      spec.TermMove,
	"clockwise": spec.TermClockwise,
	"repeat":    spec.TermRepeat,
	"end":       spec.TermEnd,
	"north":     spec.TermNorth,
	"south":     spec.TermSouth,
	"east":      spec.TermEast,
	"west":      spec.TermWest,
	"integer":   spec.TermInteger,
	"variable":  spec.TermVariable,
	"semicolon": spec.TermSemicolon,
}

var (
	compileOnce sync.Once
	compiled    *mlspec.CompiledLexSpec
	compileErr  error
)

// compiledLexSpec compiles the lexical specification on first use. The
// specification is fixed, so one compilation serves the whole process.
func compiledLexSpec() (*mlspec.CompiledLexSpec, error) {
	compileOnce.Do(func() {
		c, err, cErrs := mlcompiler.Compile(lexSpec, mlcompiler.CompressionLevel(mlcompiler.CompressionLevelMax))
		if err != nil {
			if len(cErrs) > 0 {
				compileErr = fmt.Errorf("lexical specification is broken: %v: %v", cErrs[0].Kind, cErrs[0].Cause)
			} else {
				compileErr = fmt.Errorf("lexical specification is broken: %w", err)
			}
			return
		}
		compiled = c
	})
	return compiled, compileErr
}

// Lexer tokenizes a MOUSEYCAT source. It implements TokenStream.
type Lexer struct {
	d     *mldriver.Lexer
	terms []spec.Terminal
}

var _ TokenStream = &Lexer{}

func NewLexer(src io.Reader) (*Lexer, error) {
	cspec, err := compiledLexSpec()
	if err != nil {
		return nil, err
	}
	d, err := mldriver.NewLexer(mldriver.NewLexSpec(cspec), src)
	if err != nil {
		return nil, err
	}

	// Map the compiled spec's kind IDs onto grammar terminals; -1 marks a
	// kind the parser never sees.
	terms := make([]spec.Terminal, len(cspec.KindNames))
	for id, kind := range cspec.KindNames {
		if kind == mlspec.LexKindNameNil || kind.String() == skipKindName {
			terms[id] = -1
			continue
		}
		term, ok := kindToTerm[kind.String()]
		if !ok {
			return nil, fmt.Errorf("lexical kind '%v' has no terminal symbol", kind)
		}
		terms[id] = term
	}

	return &Lexer{
		d:     d,
		terms: terms,
	}, nil
}

func (l *Lexer) Next() (*Token, error) {
	for {
		tok, err := l.d.Next()
		if err != nil {
			return nil, err
		}
		if tok.EOF {
			return &Token{
				Term: spec.TermEOF,
				Row:  tok.Row + 1,
				Col:  tok.Col + 1,
			}, nil
		}
		if tok.Invalid {
			return nil, &ParseError{
				Row:     tok.Row + 1,
				Col:     tok.Col + 1,
				Lexeme:  string(tok.Lexeme),
				Message: "invalid token",
			}
		}
		term := l.terms[int(tok.KindID)]
		if term < 0 {
			continue
		}
		return &Token{
			Term: term,
			Text: string(tok.Lexeme),
			Row:  tok.Row + 1,
			Col:  tok.Col + 1,
		}, nil
	}
}
