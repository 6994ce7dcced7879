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

type addLoanCmd struct {
	name        string
	principal   string
	rate        float64
	term        int
	paymentType string
	start       string
}

func (*addLoanCmd) Name() string     { return "add-loan" }
func (*addLoanCmd) Synopsis() string { return "create a loan and compute its repayment schedule" }
func (*addLoanCmd) Usage() string {
	return `fin add-loan -name <name> -principal <amount> -rate <percent> -term <months> [-type annuity|differentiated] [-start <date>]

  Creates a loan, computes its monthly payment and full repayment
  schedule, and prints the schedule.
`
}

func (c *addLoanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the loan.")
	f.StringVar(&c.principal, "principal", "", "Principal amount, like \"120000 EUR\".")
	f.Float64Var(&c.rate, "rate", 0, "Annual interest rate in percent.")
	f.IntVar(&c.term, "term", 0, "Term in months.")
	f.StringVar(&c.paymentType, "type", string(finances.Annuity), "Payment type: annuity or differentiated.")
	f.StringVar(&c.start, "start", finances.Today().String(), "Start date of the loan.")
}

func (c *addLoanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	principal, err := finances.ParseMoney(c.principal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing principal: %v\n", err)
		return subcommands.ExitUsageError
	}
	paymentType, err := finances.ParsePaymentType(c.paymentType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing payment type: %v\n", err)
		return subcommands.ExitUsageError
	}
	start, err := finances.ParseDate(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	loan, err := ledger.AddLoan(c.name, principal, c.rate, c.term, paymentType, start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating loan: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ScheduleMarkdown(loan))
	return subcommands.ExitSuccess
}
