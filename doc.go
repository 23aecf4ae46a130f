// Package budget keeps personal spending ledgers, one per category, and
// renders them as fixed-width text.
//
// The core functionalities include:
//   - Categories: named, append-only ledgers of deposits and withdrawals.
//     Withdrawals and transfers between categories are only recorded when
//     the balance covers them.
//   - Statements: a 30 columns wide listing of a category's ledger and its
//     total.
//   - Spend chart: an ASCII bar chart of each category's share of all
//     withdrawals.
//   - Operations: a JSONL script format to replay a Book of categories.
//
// This package serves as the foundational logic for the `bgt` command-line
// tool. It holds no global state and is not safe for concurrent use.
package budget
