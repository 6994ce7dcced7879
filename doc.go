// Package finances implements a personal finance tracker: a ledger of
// income and expense transactions, together with the financial products
// they can be linked to (loans, deposits, debts, budgets and savings
// goals).
//
// The package is the engine only. It computes loan and deposit
// amortization schedules, keeps product balances consistent with the
// set of linked transactions (including correct reversal when a linking
// transaction is edited or deleted), and derives period aggregates for
// reporting. It performs no I/O of its own: callers load and store the
// ledger through the JSONL codec and operate on it in memory.
package finances
