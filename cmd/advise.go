package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/mkraev/kopilka"
	"github.com/mkraev/kopilka/advisor"
	"github.com/mkraev/kopilka/renderer"
	"google.golang.org/genai"
)

type adviseCmd struct {
	rangeFlags
}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "get an AI commentary on the period's finances" }
func (*adviseCmd) Usage() string {
	return `kpk advise [-p <period> | -from <date>] [-to <date>] [question]

  Builds the net worth and category reports for the range and asks Gemini
  for a short commentary. Any remaining arguments form the question.
`
}

func (c *adviseCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
}

func (c *adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rng, err := c.Range()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	rates, err := DecodeRates()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	today := kopilka.Today()
	var reports []string

	if networth, err := kopilka.NewNetWorthReport(ledger, rates, rng, today); err == nil {
		reports = append(reports, renderer.NetWorthMarkdown(networth))
	}
	for _, dir := range []kopilka.Direction{kopilka.Expense, kopilka.Income} {
		if breakdown, err := kopilka.NewBreakdownReport(ledger, dir, rng, today); err == nil {
			reports = append(reports, renderer.BreakdownMarkdown(breakdown))
		}
	}
	if len(reports) == 0 {
		fmt.Fprintln(os.Stderr, "Error: nothing to review, the ledger is empty.")
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a, err := advisor.New(ctx, client)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	commentary, err := a.Review(ctx, strings.Join(f.Args(), " "), reports...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(commentary)
	return subcommands.ExitSuccess
}
