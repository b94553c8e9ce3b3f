// Package cmd implements the CLI application to manage a personal ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/mkraev/kopilka"
	"github.com/mkraev/kopilka/store"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&newItemCmd{}, "ledger")
	c.Register(&txCmd{}, "ledger")
	c.Register(&realizeCmd{}, "ledger")
	c.Register(&deleteCmd{}, "ledger")

	c.Register(&netWorthCmd{}, "reports")
	c.Register(&breakdownCmd{}, "reports")
	c.Register(&categoriesCmd{}, "reports")
	c.Register(&adviseCmd{}, "reports")

	c.Register(&fetchRatesCmd{}, "rates")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "ledger.jsonl", "Path to the ledger file containing items and transactions (JSONL format)")
var ratesFile = flag.String("rates-file", "rates.jsonl", "Path to the exchange rate file (JSONL format)")
var dbFile = flag.String("db-file", "kopilka.db", "Path to the category database")

// DecodeLedger decodes the ledger from the app ledger file. A missing file
// is an empty ledger.
func DecodeLedger() (*kopilka.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return kopilka.NewLedger(), nil
		}
		return nil, fmt.Errorf("could not open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()

	ledger, err := kopilka.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", *ledgerFile, err)
	}
	return ledger, nil
}

// SaveLedger writes the whole ledger back to the app ledger file.
func SaveLedger(ledger *kopilka.Ledger) error {
	f, err := os.Create(*ledgerFile)
	if err != nil {
		return fmt.Errorf("could not create ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	if err := kopilka.EncodeLedger(f, ledger); err != nil {
		return fmt.Errorf("could not write ledger file %q: %w", *ledgerFile, err)
	}
	return nil
}

// DecodeRates decodes the rate table from the app rates file. A missing
// file is an empty table.
func DecodeRates() (*kopilka.RateTable, error) {
	f, err := os.Open(*ratesFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return kopilka.NewRateTable(), nil
		}
		return nil, fmt.Errorf("could not open rates file %q: %w", *ratesFile, err)
	}
	defer f.Close()

	rates, err := kopilka.DecodeRates(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode rates file %q: %w", *ratesFile, err)
	}
	return rates, nil
}

// SaveRates writes the rate table back to the app rates file.
func SaveRates(rates *kopilka.RateTable) error {
	f, err := os.Create(*ratesFile)
	if err != nil {
		return fmt.Errorf("could not create rates file %q: %w", *ratesFile, err)
	}
	defer f.Close()
	if err := kopilka.EncodeRates(f, rates); err != nil {
		return fmt.Errorf("could not write rates file %q: %w", *ratesFile, err)
	}
	return nil
}

// OpenStore opens the app category database.
func OpenStore() (*store.SQLiteRepository, error) {
	return store.Open(*dbFile)
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}

// rangeFlags is the date range flag triple shared by report commands.
type rangeFlags struct {
	period string
	start  string
	end    string
}

func (r *rangeFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.period, "p", "month", "Predefined period (day, month, year).")
	f.StringVar(&r.start, "from", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&r.end, "to", "", "The end date for the range. Defaults to today.")
}

// Range resolves the flags into a concrete range ending at the given day.
func (r *rangeFlags) Range() (kopilka.Range, error) {
	end := kopilka.Today()
	if r.end != "" {
		var err error
		if end, err = kopilka.ParseDate(r.end); err != nil {
			return kopilka.Range{}, fmt.Errorf("invalid end date: %w", err)
		}
	}
	if r.start != "" {
		start, err := kopilka.ParseDate(r.start)
		if err != nil {
			return kopilka.Range{}, fmt.Errorf("invalid start date: %w", err)
		}
		return kopilka.NewRange(start, end), nil
	}
	period, err := kopilka.ParsePeriod(r.period)
	if err != nil {
		return kopilka.Range{}, err
	}
	return period.Range(end), nil
}
