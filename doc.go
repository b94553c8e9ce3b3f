// Package kopilka provides a comprehensive set of functions and types for
// tracking a household's assets, liabilities and money flows. It is designed
// to be local-first, auditable, and extensible, ensuring users have full
// control and transparency over their financial data.
//
// The core functionalities include:
//   - Ledger Management: Recording items (assets and liabilities) and the
//     income, expense and transfer transactions that move money between them,
//     in an immutable, chronological record.
//   - Valuation: A stateless engine that replays each item's history from its
//     initial value and aggregates a daily net worth series in rubles, split
//     into the realized past and the projected future.
//   - Exchange Rates: Storing Bank of Russia daily quotes and filling gaps
//     from the public archive, with strict per-day lookups for the past and
//     carry-forward only for projections.
//   - Category Analytics: Rolling transactions up by category with an Other
//     bucket, period-over-period deltas, and a user-maintained category tree
//     kept in sync with the history.
//   - Data Persistence: Handling the encoding and decoding of financial data
//     to and from human-readable, version-controllable formats (e.g., JSONL).
//
// This package serves as the foundational logic for the `kpk` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package kopilka
