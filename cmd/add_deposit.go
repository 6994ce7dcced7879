package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finances"
	"github.com/google/subcommands"
)

type addDepositCmd struct {
	name           string
	principal      string
	rate           float64
	term           int
	depositType    string
	capitalization string
	start          string
}

func (*addDepositCmd) Name() string     { return "add-deposit" }
func (*addDepositCmd) Synopsis() string { return "create a term deposit and compute its maturity" }
func (*addDepositCmd) Usage() string {
	return `fin add-deposit -name <name> -principal <amount> -rate <percent> -term <months> [-type simple|compound] [-cap daily|monthly|quarterly] [-start <date>]

  Creates a term deposit and computes its value at maturity. Compound
  deposits require a capitalization frequency.
`
}

func (c *addDepositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the deposit.")
	f.StringVar(&c.principal, "principal", "", "Principal amount, like \"100000 EUR\".")
	f.Float64Var(&c.rate, "rate", 0, "Annual interest rate in percent.")
	f.IntVar(&c.term, "term", 0, "Term in months.")
	f.StringVar(&c.depositType, "type", string(finances.Simple), "Interest type: simple or compound.")
	f.StringVar(&c.capitalization, "cap", "", "Capitalization frequency for compound deposits.")
	f.StringVar(&c.start, "start", finances.Today().String(), "Start date of the deposit.")
}

func (c *addDepositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	principal, err := finances.ParseMoney(c.principal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing principal: %v\n", err)
		return subcommands.ExitUsageError
	}
	depositType, err := finances.ParseDepositType(c.depositType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing deposit type: %v\n", err)
		return subcommands.ExitUsageError
	}
	var capitalization finances.Capitalization
	if c.capitalization != "" {
		capitalization, err = finances.ParseCapitalization(c.capitalization)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing capitalization: %v\n", err)
			return subcommands.ExitUsageError
		}
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
	d, err := ledger.AddDeposit(c.name, principal, c.rate, c.term, depositType, capitalization, start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating deposit: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created deposit %q: %.2f at maturity (%.2f interest)\n", d.Name, d.TotalAtMaturity, d.TotalInterest)
	return subcommands.ExitSuccess
}
