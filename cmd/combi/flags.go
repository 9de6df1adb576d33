package main

import (
	"strings"

	"github.com/dhamidi/combi/calc"
	"github.com/dhamidi/combi/format"
	"github.com/spf13/cobra"
)

func addModeFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("tokens", false, "tokenize first and parse the token stream")
}

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "text", "output format ("+strings.Join(format.Names, ", ")+")")
}

func mode() calc.Mode {
	if conf.GetBool("tokens") {
		return calc.ModeTokens
	}
	return calc.ModeString
}
