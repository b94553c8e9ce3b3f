package kopilka

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Record kinds used as the per-line discriminator in the ledger JSONL file.
const (
	recItem        = "item"
	recTransaction = "transaction"
)

type itemRecord struct {
	Record string `json:"record"`
	Item
}

type transactionRecord struct {
	Record string `json:"record"`
	Transaction
}

// DecodeLedger reads a ledger from a stream of JSONL data. Each line is an
// object whose "record" field tells whether it is an item or a transaction.
// Transactions are returned sorted by date.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Record string `json:"record"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(lineBytes), err)
		}

		switch identifier.Record {
		case recItem:
			var rec itemRecord
			if err := json.Unmarshal(lineBytes, &rec); err != nil {
				return nil, fmt.Errorf("invalid item record: %w", err)
			}
			ledger.AddItems(rec.Item)
		case recTransaction:
			var rec transactionRecord
			if err := json.Unmarshal(lineBytes, &rec); err != nil {
				return nil, fmt.Errorf("invalid transaction record: %w", err)
			}
			ledger.Append(rec.Transaction)
		default:
			return nil, fmt.Errorf("unknown record kind: %q", identifier.Record)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	ledger.stableSort()
	return ledger, nil
}

// EncodeLedger persists a ledger to an io.Writer in JSONL format: items
// first, sorted by name, then transactions in stable date order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	ledger.stableSort()

	for _, it := range ledger.Items() {
		if err := encodeLine(w, itemRecord{Record: recItem, Item: it}); err != nil {
			return err
		}
	}
	for _, tx := range ledger.transactions {
		if err := encodeLine(w, transactionRecord{Record: recTransaction, Transaction: tx}); err != nil {
			return err
		}
	}
	return nil
}

func encodeLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

type rateRecord struct {
	Date     Date            `json:"date"`
	Currency string          `json:"currency"`
	Rate     decimal.Decimal `json:"rate"`
}

// DecodeRates reads an exchange rate table from a stream of JSONL data.
// Duplicate (date, currency) lines keep the last value read.
func DecodeRates(r io.Reader) (*RateTable, error) {
	table := NewRateTable()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}
		var rec rateRecord
		if err := json.Unmarshal(lineBytes, &rec); err != nil {
			return nil, fmt.Errorf("invalid rate record %q: %w", string(lineBytes), err)
		}
		table.Add(rec.Date, rec.Currency, rec.Rate)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return table, nil
}

// EncodeRates persists a rate table to an io.Writer in JSONL format,
// ordered by currency then date.
func EncodeRates(w io.Writer, table *RateTable) error {
	for currency := range table.Currencies() {
		for _, e := range table.entries[currency] {
			rec := rateRecord{Date: e.on, Currency: currency, Rate: e.rate}
			if err := encodeLine(w, rec); err != nil {
				return err
			}
		}
	}
	return nil
}
