package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/client9/matchcore/core"
	"github.com/client9/matchcore/internal/oplib"
	"github.com/client9/matchcore/internal/parse"
)

func newCanonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "canon <expr>",
		Short: "Parse an expression and print it fully canonicalised",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib := oplib.New(cfg.Operators)
			a, err := parse.Parse(args[0], lib)
			if err != nil {
				return err
			}
			canon := core.Canon(a, core.DefaultComparator{})
			fmt.Fprintln(cmd.OutOrStdout(), canon.String())
			return nil
		},
	}
	return cmd
}
