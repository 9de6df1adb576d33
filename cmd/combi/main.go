package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

// conf holds flag values overridable by COMBI_* environment variables,
// e.g. COMBI_FORMAT=json or COMBI_LOG_FILE=/tmp/combi.log.
var conf = viper.New()

func main() {
	rootCmd := &cobra.Command{
		Use:   "combi",
		Short: "Parser combinators and an arithmetic expression evaluator",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(cmd.Flags()); err != nil {
				return err
			}
			configureLogging()
			return nil
		},
	}

	rootCmd.PersistentFlags().CountP("verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to this file instead of stderr")

	conf.SetEnvPrefix("COMBI")
	conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	conf.AutomaticEnv()

	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newBatchCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newUICmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// bindFlags binds the flags of the running command, including inherited
// persistent flags. Binding happens per run because subcommands share
// flag names such as --format.
func bindFlags(flags *pflag.FlagSet) error {
	return conf.BindPFlags(flags)
}

func configureLogging() {
	var path *string
	if p := conf.GetString("log-file"); p != "" {
		path = &p
	}
	commonlog.Configure(conf.GetInt("verbose"), path)
}
