package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/combi/calc"
	"github.com/dhamidi/combi/format"
	"github.com/spf13/cobra"
)

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Evaluate the built-in sample expressions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := format.NewEncoder(conf.GetString("format"), os.Stdout)
			if err != nil {
				return fmt.Errorf("demo: %w", err)
			}
			for _, expr := range calc.Samples {
				if err := enc.Encode(calc.Evaluate(expr, mode())); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			}
			return nil
		},
	}

	addModeFlag(cmd)
	addFormatFlag(cmd)

	return cmd
}
