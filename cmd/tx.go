package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mkraev/kopilka"
)

type txCmd struct {
	date         string
	dir          string
	item         string
	amount       string
	counterparty string
	cpAmount     string
	category     string
	comment      string
	planned      bool
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "record a transaction" }
func (*txCmd) Usage() string {
	return `kpk tx -dir income|expense|transfer -item <item> -amount <amount> [-date <date>] [-counterparty <item>] [-counterparty-amount <amount>] [-category <path>] [-comment <text>] [-planned]

  Records a transaction on an item. Transfers also name the counterparty
  item; when the two items use different currencies, give the amount the
  counterparty leg should carry with -counterparty-amount.

  A transaction dated in the future, or flagged -planned, is a plan and only
  affects projections until realized.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Date of the transaction. Defaults to today.")
	f.StringVar(&c.dir, "dir", "expense", "Direction: income, expense or transfer.")
	f.StringVar(&c.item, "item", "", "Item the money moves on, by name or id.")
	f.StringVar(&c.amount, "amount", "", "Amount in major units of the item's currency.")
	f.StringVar(&c.counterparty, "counterparty", "", "Counterparty item of a transfer, by name or id.")
	f.StringVar(&c.cpAmount, "counterparty-amount", "", "Amount for the counterparty leg, in its currency.")
	f.StringVar(&c.category, "category", "", "Category path, levels separated by '/'.")
	f.StringVar(&c.comment, "comment", "", "Free-form comment.")
	f.BoolVar(&c.planned, "planned", false, "Record the transaction as a plan.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dir, err := kopilka.ParseDirection(c.dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	var on kopilka.Date
	if c.date != "" {
		if on, err = kopilka.ParseDate(c.date); err != nil {
			fmt.Fprintln(os.Stderr, "Error parsing date:", err)
			return subcommands.ExitUsageError
		}
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	item, ok := ledger.FindItem(c.item)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no item %q in the ledger.\n", c.item)
		return subcommands.ExitFailure
	}

	amount, err := kopilka.ParseAmount(c.amount, item.Currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	tx := kopilka.NewTransaction(on, dir, item.ID, amount, kopilka.ParseCategoryPath(c.category))
	tx.Comment = c.comment
	if c.planned {
		tx.Type = kopilka.Planned
	}

	if dir == kopilka.Transfer {
		cp, ok := ledger.FindItem(c.counterparty)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: no counterparty item %q in the ledger.\n", c.counterparty)
			return subcommands.ExitFailure
		}
		tx.CounterpartyID = cp.ID
		if c.cpAmount != "" {
			if tx.CounterpartyAmount, err = kopilka.ParseAmount(c.cpAmount, cp.Currency); err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				return subcommands.ExitUsageError
			}
		}
	}

	if err := tx.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	ledger.Append(tx)
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s of %s on %q (%s) with id %s\n", tx.Direction, kopilka.M(amount, item.Currency), item.Name, tx.Date, tx.ID)
	return subcommands.ExitSuccess
}
