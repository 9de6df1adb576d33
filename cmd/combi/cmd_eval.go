package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/combi/calc"
	"github.com/dhamidi/combi/format"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "eval <expr>...",
		Short:        "Evaluate arithmetic expressions",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := format.NewEncoder(conf.GetString("format"), os.Stdout)
			if err != nil {
				return fmt.Errorf("eval: %w", err)
			}

			failed := 0
			for _, expr := range args {
				ev := calc.Evaluate(expr, mode())
				if !ev.OK() {
					failed++
				}
				if err := enc.Encode(ev); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			}

			if failed > 0 {
				return fmt.Errorf("eval: %d of %d expressions failed", failed, len(args))
			}
			return nil
		},
	}

	addModeFlag(cmd)
	addFormatFlag(cmd)

	return cmd
}
