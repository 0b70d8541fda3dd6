package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/client9/matchcore/match"
)

// printOutcome renders a match.Outcome to cmd's stdout: Fail prints the
// failure reason, Match prints the single binding, and Many enumerates
// up to maxResults bindings from the Iterator and then reports whether at
// least one more binding exists (without counting how many).
func printOutcome(cmd *cobra.Command, ctx match.Context, traceID string, outcome match.Outcome, maxResults int) {
	out := cmd.OutOrStdout()
	switch outcome.Kind() {
	case match.OutcomeFail:
		fmt.Fprintf(out, "[%s] no match: %s\n", traceID, outcome.FailInfo())
	case match.OutcomeMatch:
		b, _ := outcome.Bindings()
		fmt.Fprintf(out, "[%s] match: %s\n", traceID, b.String())
	case match.OutcomeMany:
		it, _ := outcome.Iterator()
		count := 0
		for count < maxResults && it.Next(ctx) {
			fmt.Fprintf(out, "[%s] match %d: %s\n", traceID, count+1, it.Bindings().String())
			count++
		}
		if count == 0 {
			fmt.Fprintf(out, "[%s] no match\n", traceID)
			return
		}
		if it.Next(ctx) {
			fmt.Fprintf(out, "[%s] ... more matches exist beyond --max-results=%d\n", traceID, maxResults)
		}
	}
}
