package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mkraev/kopilka"
	"github.com/mkraev/kopilka/renderer"
)

type breakdownCmd struct {
	rangeFlags
	dir string
}

func (*breakdownCmd) Name() string     { return "breakdown" }
func (*breakdownCmd) Synopsis() string { return "show spending or income by category" }
func (*breakdownCmd) Usage() string {
	return `kpk breakdown [-dir income|expense] [-p <period> | -from <date>] [-to <date>]

  Sums realized transactions of one direction by top-level category over
  the window. Small categories fold into Other. Each category also shows
  its move against the previous window and against its trailing monthly
  average.
`
}

func (c *breakdownCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.StringVar(&c.dir, "dir", "expense", "Direction to break down: income or expense.")
}

func (c *breakdownCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dir, err := kopilka.ParseDirection(c.dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	window, err := c.Range()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report, err := kopilka.NewBreakdownReport(ledger, dir, window, kopilka.Today())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.BreakdownMarkdown(report))
	return subcommands.ExitSuccess
}
