package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finances/renderer"
	"github.com/google/subcommands"
)

type scheduleCmd struct {
	id string
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "display a loan's repayment schedule" }
func (*scheduleCmd) Usage() string {
	return `fin schedule -id <loan-id>

  Displays the month-by-month repayment schedule of a loan.
`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the loan. The loan name works too.")
}

func (c *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	loan, ok := ledger.Loan(c.id)
	if !ok {
		// Fall back to matching by name.
		for _, l := range ledger.Loans() {
			if l.Name == c.id {
				loan, ok = l, true
				break
			}
		}
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no loan %q\n", c.id)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ScheduleMarkdown(loan))
	return subcommands.ExitSuccess
}
