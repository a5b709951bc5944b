package main

import (
	"fmt"
	"os"

	"github.com/dclee/mousecat/driver"
	"github.com/dclee/mousecat/spec"
	"github.com/spf13/cobra"
)

var lexFlags = struct {
	source *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "lex",
		Short:   "Tokenize a MOUSEYCAT program",
		Example: `  cat prog.mc | mousecat lex`,
		Args:    cobra.NoArgs,
		RunE:    runLex,
	}
	lexFlags.source = cmd.Flags().StringP("source", "s", "", "source file path (default stdin)")
	rootCmd.AddCommand(cmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	src := os.Stdin
	if *lexFlags.source != "" {
		f, err := os.Open(*lexFlags.source)
		if err != nil {
			return fmt.Errorf("Cannot open the source file %s: %w", *lexFlags.source, err)
		}
		defer f.Close()
		src = f
	}

	lex, err := driver.NewLexer(src)
	if err != nil {
		return err
	}

	for {
		tok, err := lex.Next()
		if err != nil {
			return err
		}
		if tok.Term == spec.TermEOF {
			break
		}
		fmt.Fprintf(os.Stdout, "%v:%v: %v '%v'\n", tok.Row, tok.Col, tok.Term, tok.Text)
	}

	return nil
}
