package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/dhamidi/combi/calc"
	"github.com/dhamidi/combi/format"
	"github.com/spf13/cobra"
)

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file.yaml>",
		Short: "Evaluate the expressions of a YAML batch file and check expectations",
		Long: `Evaluate the expressions of a YAML batch file:

  expressions:
    - expr: 2*3
      want: 6
    - expr: 2*3-7))
      error: Unparsed input remains

A case passes when it matches its want or error, or, without either,
when it evaluates successfully.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := format.NewEncoder(conf.GetString("format"), os.Stdout)
			if err != nil {
				return fmt.Errorf("batch: %w", err)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open batch: %w", err)
			}
			defer f.Close()

			batch, err := calc.LoadBatch(f)
			if err != nil {
				return fmt.Errorf("load %s: %w", args[0], err)
			}

			outcomes, err := calc.RunBatch(cmd.Context(), batch, mode(), conf.GetInt("workers"))
			if err != nil {
				return err
			}

			failed := 0
			for _, o := range outcomes {
				if err := enc.Encode(o.Evaluation); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
				if !o.Pass {
					failed++
					fmt.Fprintf(os.Stderr, "FAIL %s\n", o.Evaluation)
				}
			}

			if failed > 0 {
				return fmt.Errorf("batch: %d of %d cases failed", failed, len(outcomes))
			}
			return nil
		},
	}

	addModeFlag(cmd)
	addFormatFlag(cmd)
	cmd.Flags().IntP("workers", "w", runtime.NumCPU(), "number of expressions evaluated concurrently")

	return cmd
}
