package main

import (
	"fmt"

	"github.com/dhamidi/combi/calc"
	"github.com/dhamidi/combi/ebnflex"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <expr>",
		Short: "Print the tokens of an expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(ebnflex.Describe(calc.Tokenize(args[0])))
			return nil
		},
	}
}
