package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mkraev/kopilka"
)

type newItemCmd struct {
	name     string
	kind     string
	currency string
	initial  string
	start    string
}

func (*newItemCmd) Name() string     { return "new-item" }
func (*newItemCmd) Synopsis() string { return "register a new asset or liability" }
func (*newItemCmd) Usage() string {
	return `kpk new-item -name <name> [-kind asset|liability] [-currency <code>] [-initial <amount>] [-start <date>]

  Registers a new item in the ledger. The initial amount is the item's value
  on its start date, in major units of its currency.
`
}

func (c *newItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the item.")
	f.StringVar(&c.kind, "kind", "asset", "Kind of item: asset or liability.")
	f.StringVar(&c.currency, "currency", kopilka.ReportingCurrency, "Currency the item is denominated in.")
	f.StringVar(&c.initial, "initial", "0", "Value of the item on its start date.")
	f.StringVar(&c.start, "start", "", "Date tracking starts. Defaults to today.")
}

func (c *newItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}

	kind, err := kopilka.ParseItemKind(c.kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	initial, err := kopilka.ParseAmount(c.initial, c.currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	var start kopilka.Date
	if c.start != "" {
		if start, err = kopilka.ParseDate(c.start); err != nil {
			fmt.Fprintln(os.Stderr, "Error parsing start date:", err)
			return subcommands.ExitUsageError
		}
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if _, exists := ledger.FindItem(c.name); exists {
		fmt.Fprintf(os.Stderr, "Error: an item named %q already exists.\n", c.name)
		return subcommands.ExitFailure
	}

	item := kopilka.NewItem(c.name, kind, c.currency, initial, start)
	ledger.AddItems(item)

	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created %s %q (%s) with id %s\n", item.Kind, item.Name, item.Currency, item.ID)
	return subcommands.ExitSuccess
}
