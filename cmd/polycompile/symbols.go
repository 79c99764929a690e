package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSymbolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "symbols",
		Short: "List the global symbols the binding registers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			handler, err := newLogHandler("")
			if err != nil {
				return err
			}
			reg, err := newRegistry(&checkConfig{}, handler)
			if err != nil {
				return err
			}
			for _, name := range reg.Names() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
