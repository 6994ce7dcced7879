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

type budgetCmd struct {
	category string
	limit    string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "set a monthly budget for a category" }
func (*budgetCmd) Usage() string {
	return `fin budget -category <category> -limit <amount>

  Creates or replaces the budget for a category.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Category the budget covers.")
	f.StringVar(&c.limit, "limit", "", "Spending limit, like \"500 EUR\".")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	limit, err := finances.ParseMoney(c.limit)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	b, err := ledger.SetBudget(c.category, limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting budget: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Budget for %q set to %s\n", b.Category, b.Limit)
	return subcommands.ExitSuccess
}

type budgetsCmd struct {
	period string
	from   string
	to     string
}

func (*budgetsCmd) Name() string     { return "budgets" }
func (*budgetsCmd) Synopsis() string { return "report spending against budgets" }
func (*budgetsCmd) Usage() string {
	return `fin budgets [-p <period> | -from <date> [-to <date>]]

  Reports, for each budget, the spending of its category over the
  period and what remains. Defaults to the current month.
`
}

func (c *budgetsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "month", "Predefined period ending today (day, week, month, quarter, year).")
	f.StringVar(&c.from, "from", "", "Start date of a custom range. Overrides -p.")
	f.StringVar(&c.to, "to", "", "End date of the range. Defaults to today.")
}

func (c *budgetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.BudgetMarkdown(finances.NewBudgetReport(ledger, r)))
	return subcommands.ExitSuccess
}
