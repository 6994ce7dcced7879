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

type debtCmd struct {
	direction   string
	amount      string
	person      string
	description string
	date        string
}

func (*debtCmd) Name() string     { return "debt" }
func (*debtCmd) Synopsis() string { return "record an informal debt" }
func (*debtCmd) Usage() string {
	return `fin debt -direction i-owe|owed-to-me -amount <amount> -person <name> [-desc <text>] [-date <date>]

  Records an informal debt. Debts stay outside the transaction stream
  until settled.
`
}

func (c *debtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.direction, "direction", string(finances.IOwe), "Direction: i-owe or owed-to-me.")
	f.StringVar(&c.amount, "amount", "", "Amount of the debt.")
	f.StringVar(&c.person, "person", "", "The other party.")
	f.StringVar(&c.description, "desc", "", "Free-form description.")
	f.StringVar(&c.date, "date", finances.Today().String(), "Date the debt was taken.")
}

func (c *debtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	direction, err := finances.ParseDebtDirection(c.direction)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	amount, err := finances.ParseMoney(c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	on, err := finances.ParseDate(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	debt, err := ledger.AddDebt(direction, amount, c.person, c.description, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording debt: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded debt %s: %s %s %s\n", debt.ID, debt.Direction, debt.Amount, debt.Person)
	return subcommands.ExitSuccess
}

type settleCmd struct {
	id      string
	account string
	date    string
}

func (*settleCmd) Name() string     { return "settle" }
func (*settleCmd) Synopsis() string { return "settle a debt in full" }
func (*settleCmd) Usage() string {
	return `fin settle -id <id> [-account <account>] [-date <date>]

  Settles a debt in full: records exactly one transaction for the full
  amount and removes the debt.
`
}

func (c *settleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the debt to settle.")
	f.StringVar(&c.account, "account", "main", "Account the settlement goes through.")
	f.StringVar(&c.date, "date", finances.Today().String(), "Settlement date.")
}

func (c *settleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := finances.ParseDate(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	tx, err := ledger.SettleDebt(c.id, c.account, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error settling debt: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println(renderer.Transaction(tx))
	return subcommands.ExitSuccess
}

type debtsCmd struct{}

func (*debtsCmd) Name() string     { return "debts" }
func (*debtsCmd) Synopsis() string { return "list open debts" }
func (*debtsCmd) Usage() string {
	return `fin debts

  Lists the open informal debts.
`
}

func (*debtsCmd) SetFlags(f *flag.FlagSet) {}

func (c *debtsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.DebtsMarkdown(ledger.Debts()))
	return subcommands.ExitSuccess
}
