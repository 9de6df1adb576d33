package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dhamidi/combi/ui"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

func newUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Start the web UI server",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector())

			server, err := ui.NewServer(mode(), reg)
			if err != nil {
				return fmt.Errorf("create server: %w", err)
			}
			addr := conf.GetString("addr")
			displayAddr := addr
			if strings.HasPrefix(addr, ":") {
				displayAddr = "localhost" + addr
			}
			fmt.Printf("Starting server at http://%s\n", displayAddr)
			return http.ListenAndServe(addr, server)
		},
	}

	addModeFlag(cmd)
	cmd.Flags().StringP("addr", "a", ":8080", "address to listen on")

	return cmd
}
