package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/google/subcommands"
	"github.com/mkraev/kopilka"
)

type fetchRatesCmd struct {
	rangeFlags
}

func (*fetchRatesCmd) Name() string     { return "fetch-rates" }
func (*fetchRatesCmd) Synopsis() string { return "fetch missing exchange rates from the Bank of Russia" }
func (*fetchRatesCmd) Usage() string {
	return `kpk fetch-rates [-p <period> | -from <date>] [-to <date>]

  Looks up the (day, currency) pairs the rate table is missing over the
  range and fetches them from the Bank of Russia daily archive. Responses
  are cached locally for a day.
`
}

func (c *fetchRatesCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
}

func (c *fetchRatesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	currencies := slices.Collect(ledger.ForeignCurrencies())
	if len(currencies) == 0 {
		fmt.Println("All items are in rubles, nothing to fetch.")
		return subcommands.ExitSuccess
	}

	rates, err := DecodeRates()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	added, err := rates.FillGaps(kopilka.DailyClient(), rng, currencies, kopilka.Today())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := SaveRates(rates); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %d rates for %v over %s\n", added, currencies, rng)
	return subcommands.ExitSuccess
}
