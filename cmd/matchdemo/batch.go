package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/client9/matchcore/core"
	"github.com/client9/matchcore/internal/guard"
	"github.com/client9/matchcore/internal/oplib"
	"github.com/client9/matchcore/internal/parse"
	"github.com/client9/matchcore/match"
)

// batchLine is one "pattern ; subject" pair read from the input file.
type batchLine struct {
	lineNo  int
	pattern string
	subject string
}

func newBatchCmd() *cobra.Command {
	var maxResults int
	var concurrency int
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Match every \"pattern ; subject\" line of a file concurrently",
		Long: "Each line of <file> is a \"pattern ; subject\" pair. Every pair is matched " +
			"independently and concurrently, which is safe because every atom reachable from " +
			"a parsed expression is immutable once built.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := readBatchFile(args[0])
			if err != nil {
				return err
			}

			lib := oplib.New(cfg.Operators)
			results := make([]string, len(lines))

			g := new(errgroup.Group)
			g.SetLimit(concurrency)
			for i, line := range lines {
				i, line := i, line
				g.Go(func() error {
					results[i] = runBatchLine(line, lib, maxResults)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				fmt.Fprintln(out, r)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&maxResults, "max-results", 5, "maximum number of bindings to print per line")
	cmd.Flags().IntVar(&concurrency, "concurrency", 8, "maximum concurrently running matches")
	return cmd
}

func readBatchFile(path string) ([]batchLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	defer f.Close()

	var lines []batchLine
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		parts := strings.SplitN(text, ";", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("batch: line %d: expected \"pattern ; subject\"", lineNo)
		}
		lines = append(lines, batchLine{
			lineNo:  lineNo,
			pattern: strings.TrimSpace(parts[0]),
			subject: strings.TrimSpace(parts[1]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	return lines, nil
}

func runBatchLine(line batchLine, lib *oplib.Library, maxResults int) string {
	tlog, traceID := newTraceLogger()
	tlog.Info("batch line", zap.Int("line", line.lineNo))

	pattern, err := parse.Parse(line.pattern, lib)
	if err != nil {
		return fmt.Sprintf("[%s] line %d: bad pattern: %v", traceID, line.lineNo, err)
	}
	subject, err := parse.Parse(line.subject, lib)
	if err != nil {
		return fmt.Sprintf("[%s] line %d: bad subject: %v", traceID, line.lineNo, err)
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

	outcome := match.MatchAtom(ctx, pattern, subject, core.EmptyBindings())
	return fmt.Sprintf("[%s] line %d: %s", traceID, line.lineNo, describeOutcome(ctx, outcome, maxResults))
}

func describeOutcome(ctx match.Context, outcome match.Outcome, maxResults int) string {
	switch outcome.Kind() {
	case match.OutcomeFail:
		return "no match: " + outcome.FailInfo()
	case match.OutcomeMatch:
		b, _ := outcome.Bindings()
		return "match: " + b.String()
	case match.OutcomeMany:
		it, _ := outcome.Iterator()
		var found []string
		for len(found) < maxResults && it.Next(ctx) {
			found = append(found, it.Bindings().String())
		}
		if len(found) == 0 {
			return "no match"
		}
		return fmt.Sprintf("%d match(es): %s", len(found), strings.Join(found, ", "))
	default:
		return "unknown outcome"
	}
}
