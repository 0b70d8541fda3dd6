package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/client9/matchcore/core"
	"github.com/client9/matchcore/internal/guard"
	"github.com/client9/matchcore/internal/oplib"
	"github.com/client9/matchcore/internal/parse"
	"github.com/client9/matchcore/match"
)

func newMatchCmd() *cobra.Command {
	var maxResults int
	cmd := &cobra.Command{
		Use:   "match <pattern> <subject>",
		Short: "Match one pattern against one subject and print every binding found",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tlog, traceID := newTraceLogger()
			lib := oplib.New(cfg.Operators)

			pattern, err := parse.Parse(args[0], lib)
			if err != nil {
				return fmt.Errorf("pattern: %w", err)
			}
			subject, err := parse.Parse(args[1], lib)
			if err != nil {
				return fmt.Errorf("subject: %w", err)
			}

			ctx := match.Context{
				Settings:   match.Settings{AggressiveFail: cfg.AggressiveFail},
				Operators:  lib,
				Guards:     guard.New(),
				Comparator: core.DefaultComparator{},
			}
			if d := cfg.Timeout(); d > 0 {
				ctx = ctx.WithDeadline(d)
			}

			tlog.Info("matching", zap.String("pattern", pattern.String()), zap.String("subject", subject.String()))

			outcome := match.MatchAtom(ctx, pattern, subject, core.EmptyBindings())
			printOutcome(cmd, ctx, traceID, outcome, maxResults)
			return nil
		},
	}
	cmd.Flags().IntVar(&maxResults, "max-results", 20, "maximum number of bindings to print for a Many outcome")
	return cmd
}
