package main

import (
	"fmt"
	"os"

	"github.com/dclee/mousecat/ast"
	"github.com/dclee/mousecat/driver"
	"github.com/dclee/mousecat/spec"
	"github.com/spf13/cobra"
)

var parseFlags = struct {
	source *string
	tree   *bool
	quiet  *bool
	stacks *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "parse",
		Short:   "Parse a MOUSEYCAT program",
		Example: `  cat prog.mc | mousecat parse`,
		Args:    cobra.NoArgs,
		RunE:    runParse,
	}
	parseFlags.source = cmd.Flags().StringP("source", "s", "", "source file path (default stdin)")
	parseFlags.tree = cmd.Flags().Bool("tree", false, "print the syntax tree")
	parseFlags.quiet = cmd.Flags().Bool("quiet", false, "suppress the derivation output")
	parseFlags.stacks = cmd.Flags().Bool("dump-stacks", false, "write the symbol stack to stderr at each step")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	gram, err := spec.LoadGrammar()
	if err != nil {
		return err
	}

	src := os.Stdin
	if *parseFlags.source != "" {
		f, err := os.Open(*parseFlags.source)
		if err != nil {
			return fmt.Errorf("Cannot open the source file %s: %w", *parseFlags.source, err)
		}
		defer f.Close()
		src = f
	}

	lex, err := driver.NewLexer(src)
	if err != nil {
		return err
	}

	var opts []driver.ParserOption
	if *parseFlags.stacks {
		opts = append(opts, driver.DumpStacks(os.Stderr))
	}
	p, err := driver.NewParser(gram, lex, opts...)
	if err != nil {
		return err
	}

	root, err := p.Parse()
	if err != nil {
		return err
	}

	if !*parseFlags.quiet {
		for _, prod := range p.Derivation() {
			fmt.Fprintln(os.Stdout, prod)
		}
	}
	fmt.Fprintln(os.Stdout, "Parsed successfully!")

	if *parseFlags.tree {
		ast.PrintTree(os.Stdout, root)
	}

	return nil
}
