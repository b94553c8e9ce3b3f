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

type netWorthCmd struct {
	rangeFlags
}

func (*netWorthCmd) Name() string     { return "networth" }
func (*netWorthCmd) Synopsis() string { return "show the net worth series over a range" }
func (*netWorthCmd) Usage() string {
	return `kpk networth [-p <period> | -from <date>] [-to <date>]

  Computes the daily net worth over the range, in rubles. Days after today
  are projections built from planned transactions. Days with a missing
  exchange rate are reported as unknown.
`
}

func (c *netWorthCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
}

func (c *netWorthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if gaps := kopilka.MissingRates(ledger, rates, rng, today); len(gaps) > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d missing exchange rates, run 'kpk fetch-rates' to fill them.\n", len(gaps))
	}

	report, err := kopilka.NewNetWorthReport(ledger, rates, rng, today)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.NetWorthMarkdown(report))
	return subcommands.ExitSuccess
}
