package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finances"
	"github.com/etnz/finances/renderer"
	"github.com/google/subcommands"
)

// txFlags are the transaction fields shared by the add and edit commands.
type txFlags struct {
	txType      string
	amount      string
	category    string
	account     string
	date        string
	description string
	kind        string
	item        string
}

func (c *txFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.txType, "type", string(finances.Expense), "Transaction type: income or expense.")
	f.StringVar(&c.amount, "amount", "", "Amount, like \"42.50 EUR\".")
	f.StringVar(&c.category, "category", "", "Category of the transaction.")
	f.StringVar(&c.account, "account", "main", "Account of the transaction.")
	f.StringVar(&c.date, "date", finances.Today().String(), "Date of the transaction.")
	f.StringVar(&c.description, "desc", "", "Free-form description.")
	f.StringVar(&c.kind, "kind", "", "Link kind: loan-repayment, deposit-top-up, deposit-withdrawal, goal-contribution or goal-withdrawal.")
	f.StringVar(&c.item, "item", "", "Id of the linked loan, deposit or goal.")
}

// transaction builds the transaction from the flags.
func (c *txFlags) transaction() (finances.Transaction, error) {
	txType, err := finances.ParseTxType(c.txType)
	if err != nil {
		return finances.Transaction{}, err
	}
	amount, err := finances.ParseMoney(c.amount)
	if err != nil {
		return finances.Transaction{}, err
	}
	on, err := finances.ParseDate(c.date)
	if err != nil {
		return finances.Transaction{}, err
	}
	tx := finances.NewTransaction(txType, amount, c.category, c.account, on, c.description)
	if c.kind != "" {
		kind, err := finances.ParseLinkKind(c.kind)
		if err != nil {
			return finances.Transaction{}, err
		}
		tx = tx.WithLink(kind, c.item)
	}
	return tx, nil
}

type addCmd struct {
	txFlags
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a transaction" }
func (*addCmd) Usage() string {
	return `fin add -amount <amount> -category <category> [-type income|expense] [-account <account>] [-date <date>] [-desc <text>] [-kind <kind> -item <id>]

  Records a transaction. A link kind ties it to a product: repaying a
  loan, topping up a deposit or contributing to a goal in one command.
`
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, err := c.transaction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := ledger.Append(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println(renderer.Transaction(tx))
	return subcommands.ExitSuccess
}

type editCmd struct {
	txFlags
	id string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "replace a transaction" }
func (*editCmd) Usage() string {
	return `fin edit -id <id> [same flags as add]

  Replaces a transaction. The old record's effect on its linked product
  is reversed first, then the new record's effect is applied, so
  balances stay consistent even when the edit moves the transaction to
  another product.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	c.txFlags.SetFlags(f)
	f.StringVar(&c.id, "id", "", "Id of the transaction to edit.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	replacement, err := c.transaction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := ledger.Edit(c.id, replacement); err != nil {
		fmt.Fprintf(os.Stderr, "Error editing transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	edited, _ := ledger.Transaction(c.id)
	fmt.Println(renderer.Transaction(edited))
	return subcommands.ExitSuccess
}

type delCmd struct {
	id string
}

func (*delCmd) Name() string     { return "del" }
func (*delCmd) Synopsis() string { return "delete a transaction" }
func (*delCmd) Usage() string {
	return `fin del -id <id>

  Deletes a transaction, reversing its effect on the linked product.
`
}

func (c *delCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the transaction to delete.")
}

func (c *delCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := ledger.Delete(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted transaction %s\n", c.id)
	return subcommands.ExitSuccess
}

type txCmd struct {
	period   string
	from     string
	to       string
	category string
	txType   string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions" }
func (*txCmd) Usage() string {
	return `fin tx [-p <period> | -from <date> [-to <date>]] [-category <category>] [-type income|expense]

  Lists transactions, filtered by period, category and type.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Predefined period ending today (day, week, month, quarter, year).")
	f.StringVar(&c.from, "from", "", "Start date of a custom range. Overrides -p.")
	f.StringVar(&c.to, "to", "", "End date of the range. Defaults to today.")
	f.StringVar(&c.category, "category", "", "Keep only this category.")
	f.StringVar(&c.txType, "type", "", "Keep only this transaction type.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := parseRange(c.period, c.from, c.to)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	accept := func(tx finances.Transaction) bool {
		if c.category != "" && tx.Category != c.category {
			return false
		}
		if c.txType != "" && string(tx.Type) != c.txType {
			return false
		}
		return true
	}
	transactions := finances.FilterByPeriod(ledger.Transactions(accept), r)

	printMarkdown(renderer.TransactionsMarkdown("Transactions", transactions))
	return subcommands.ExitSuccess
}

// parseRange turns the period/from/to flags into a date range. All
// empty means the full ledger (a zero range).
func parseRange(period, from, to string) (finances.Range, error) {
	if period == "" && from == "" && to == "" {
		return finances.Range{}, nil
	}
	end := finances.Today()
	if to != "" {
		var err error
		end, err = finances.ParseDate(to)
		if err != nil {
			return finances.Range{}, err
		}
	}
	if from != "" {
		start, err := finances.ParseDate(from)
		if err != nil {
			return finances.Range{}, err
		}
		return finances.NewRange(start, end), nil
	}
	p, err := finances.ParsePeriod(period)
	if err != nil {
		return finances.Range{}, err
	}
	return p.Since(end), nil
}
