package main

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/dhamidi/combi/calc"
	"github.com/dhamidi/combi/ebnflex"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "grammar",
		Short:         "EBNF grammar tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newGrammarCheckCmd())
	cmd.AddCommand(newGrammarShowCmd())

	return cmd
}

func newGrammarCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:           "check [file]",
		Short:         "Parse and verify an EBNF grammar file (default: the token grammar)",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if len(args) == 0 {
				start := startProduction
				if start == "" {
					start = calc.TokenGrammarStart
				}
				_, err = ebnflex.ParseGrammar("calc.ebnf", strings.NewReader(calc.TokenGrammar), start)
			} else {
				_, err = ebnflex.LoadGrammar(args[0], startProduction)
			}
			if err != nil {
				printErrors(err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production for verification (if empty, only checks syntax)")

	return cmd
}

func newGrammarShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the token grammar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(strings.TrimPrefix(calc.TokenGrammar, "\n"))
			return nil
		},
	}
}

func printErrors(err error) {
	v := reflect.ValueOf(errors.Cause(err))
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Println(v.Index(i).Interface())
		}
	} else {
		fmt.Println(err)
	}
}
