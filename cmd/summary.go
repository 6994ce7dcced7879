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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	period string
	from   string
	to     string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display income and expense totals for a period" }
func (*summaryCmd) Usage() string {
	return `fin summary [-p <period> | -from <date> [-to <date>]]

  Displays total income, total expenses and the remaining budget over
  the period. Defaults to the current month.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "month", "Predefined period ending today (day, week, month, quarter, year).")
	f.StringVar(&c.from, "from", "", "Start date of a custom range. Overrides -p.")
	f.StringVar(&c.to, "to", "", "End date of the range. Defaults to today.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.SummaryMarkdown(finances.NewSummary(ledger, r)))
	return subcommands.ExitSuccess
}
