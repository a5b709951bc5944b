package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mousecat",
	Short: "Parse MOUSEYCAT programs",
	Long: `mousecat provides two features:
- Parses a MOUSEYCAT program and prints its rightmost derivation and syntax tree.
- Tokenizes a program without parsing it.
  This feature is primarily aimed at debugging the lexical specification.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	return rootCmd.Execute()
}
